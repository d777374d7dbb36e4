// Package embed provides the embedding provider collaborator using CloudWeGo
// Eino. The graph treats vectors as opaque fixed-length arrays; this package
// only guarantees non-emptiness, never dimensionality.
package embed

import (
	"context"
	"errors"
	"fmt"

	ollamaEmbed "github.com/cloudwego/eino-ext/components/embedding/ollama"
	openaiEmbed "github.com/cloudwego/eino-ext/components/embedding/openai"
	"github.com/cloudwego/eino/components/embedding"

	"github.com/c360studio/semstore/source"
)

// Provider identifies the embedding backend.
type Provider string

const (
	ProviderOllama Provider = "ollama"
	ProviderOpenAI Provider = "openai"
)

const (
	DefaultOllamaURL            = "http://localhost:11434"
	DefaultOllamaEmbeddingModel = "nomic-embed-text"
)

// ErrEmptyEmbedding is returned when the backend answers with no vector or a
// zero-length vector.
var ErrEmptyEmbedding = errors.New("embedding provider returned an empty vector")

// Config holds configuration for creating an embedder.
type Config struct {
	Provider Provider `yaml:"provider" json:"provider"`
	Model    string   `yaml:"model" json:"model"`
	APIKey   string   `yaml:"api_key" json:"api_key"` // Required for OpenAI
	BaseURL  string   `yaml:"base_url" json:"base_url"`
}

// NewEmbedder creates an Eino embedder for the configured provider.
func NewEmbedder(ctx context.Context, cfg Config) (embedding.Embedder, error) {
	switch cfg.Provider {
	case ProviderOpenAI:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return openaiEmbed.NewEmbedder(ctx, &openaiEmbed.EmbeddingConfig{
			Model:  cfg.Model,
			APIKey: cfg.APIKey,
		})

	case ProviderOllama:
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = DefaultOllamaURL
		}
		modelName := cfg.Model
		if modelName == "" {
			modelName = DefaultOllamaEmbeddingModel
		}
		return ollamaEmbed.NewEmbedder(ctx, &ollamaEmbed.EmbeddingConfig{
			BaseURL: baseURL,
			Model:   modelName,
		})

	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", cfg.Provider)
	}
}

// Service wraps an Eino embedder with the document-level call the
// consolidator needs.
type Service struct {
	embedder embedding.Embedder
}

// NewService wraps an embedder.
func NewService(embedder embedding.Embedder) *Service {
	return &Service{embedder: embedder}
}

// EmbedDocument returns the embedding vector for a document's text. Empty
// text and empty backend responses are errors; callers degrade to an
// unenriched convergence record rather than aborting.
func (s *Service) EmbedDocument(ctx context.Context, doc *source.Document) ([]float64, error) {
	text := doc.Text()
	if text == "" {
		return nil, fmt.Errorf("document %s has no text to embed", doc.ID)
	}

	vectors, err := s.embedder.EmbedStrings(ctx, []string{text})
	if err != nil {
		return nil, fmt.Errorf("embed document %s: %w", doc.ID, err)
	}
	if len(vectors) == 0 || len(vectors[0]) == 0 {
		return nil, ErrEmptyEmbedding
	}
	return vectors[0], nil
}
