// Package config provides configuration loading and management for Semstore.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/semstore/convergence"
	"github.com/c360studio/semstore/embed"
	"github.com/c360studio/semstore/extract"
)

// Config represents the complete Semstore configuration
type Config struct {
	Store       StoreConfig        `yaml:"store"`
	Extraction  extract.Config     `yaml:"extraction"`
	Convergence convergence.Config `yaml:"convergence"`
	Embedding   embed.Config       `yaml:"embedding"`
	NATS        NATSConfig         `yaml:"nats"`
}

// StoreConfig configures the triple store service
type StoreConfig struct {
	// Validation enables schema validation of extracted triples
	Validation bool `yaml:"validation"`
	// BatchSize is the default document batch size for ingestion
	BatchSize int `yaml:"batch_size"`
}

// NATSConfig configures the NATS persistence connection
type NATSConfig struct {
	// URL is the NATS server URL (empty = no persistence)
	URL string `yaml:"url"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Validation: false,
			BatchSize:  10,
		},
		Extraction:  extract.DefaultConfig(),
		Convergence: convergence.DefaultConfig(),
		Embedding: embed.Config{
			Provider: embed.ProviderOllama,
			Model:    embed.DefaultOllamaEmbeddingModel,
			BaseURL:  embed.DefaultOllamaURL,
		},
		NATS: NATSConfig{
			URL: "", // In-memory only
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Store.BatchSize < 0 {
		return fmt.Errorf("store.batch_size must be non-negative")
	}
	if err := c.Extraction.Validate(); err != nil {
		return fmt.Errorf("extraction: %w", err)
	}
	if err := c.Convergence.Validate(); err != nil {
		return fmt.Errorf("convergence: %w", err)
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Store
	if other.Store.Validation {
		c.Store.Validation = true
	}
	if other.Store.BatchSize != 0 {
		c.Store.BatchSize = other.Store.BatchSize
	}

	// Extraction
	if len(other.Extraction.Keywords) > 0 {
		c.Extraction.Keywords = other.Extraction.Keywords
	}
	if len(other.Extraction.PathRules) > 0 {
		c.Extraction.PathRules = other.Extraction.PathRules
	}
	if other.Extraction.Confidence.Floor != 0 {
		c.Extraction.Confidence.Floor = other.Extraction.Confidence.Floor
	}
	if other.Extraction.Confidence.Cap != 0 {
		c.Extraction.Confidence.Cap = other.Extraction.Confidence.Cap
	}
	if other.Extraction.Confidence.DensityWeight != 0 {
		c.Extraction.Confidence.DensityWeight = other.Extraction.Confidence.DensityWeight
	}
	if other.Extraction.Cooccurrence.WindowChars != 0 {
		c.Extraction.Cooccurrence.WindowChars = other.Extraction.Cooccurrence.WindowChars
	}
	if other.Extraction.Cooccurrence.MinDiversity != 0 {
		c.Extraction.Cooccurrence.MinDiversity = other.Extraction.Cooccurrence.MinDiversity
	}
	if other.Extraction.Cooccurrence.BaseConfidence != 0 {
		c.Extraction.Cooccurrence.BaseConfidence = other.Extraction.Cooccurrence.BaseConfidence
	}
	if other.Extraction.Cooccurrence.DiversityBonus != 0 {
		c.Extraction.Cooccurrence.DiversityBonus = other.Extraction.Cooccurrence.DiversityBonus
	}
	if other.Extraction.Cooccurrence.MaxConfidence != 0 {
		c.Extraction.Cooccurrence.MaxConfidence = other.Extraction.Cooccurrence.MaxConfidence
	}
	if other.Extraction.Relevance.HighThreshold != 0 {
		c.Extraction.Relevance.HighThreshold = other.Extraction.Relevance.HighThreshold
	}
	if other.Extraction.Relevance.MediumThreshold != 0 {
		c.Extraction.Relevance.MediumThreshold = other.Extraction.Relevance.MediumThreshold
	}

	// Convergence
	if other.Convergence.HalfLifeDays != 0 {
		c.Convergence.HalfLifeDays = other.Convergence.HalfLifeDays
	}
	if other.Convergence.Weights != (convergence.Weights{}) {
		c.Convergence.Weights = other.Convergence.Weights
	}

	// Embedding
	if other.Embedding.Provider != "" {
		c.Embedding.Provider = other.Embedding.Provider
	}
	if other.Embedding.Model != "" {
		c.Embedding.Model = other.Embedding.Model
	}
	if other.Embedding.APIKey != "" {
		c.Embedding.APIKey = other.Embedding.APIKey
	}
	if other.Embedding.BaseURL != "" {
		c.Embedding.BaseURL = other.Embedding.BaseURL
	}

	// NATS
	if other.NATS.URL != "" {
		c.NATS.URL = other.NATS.URL
	}
}
