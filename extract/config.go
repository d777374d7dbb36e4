package extract

import "fmt"

// Config holds the tunable extraction heuristics. Everything here is data:
// dictionaries and thresholds load from configuration files and can be
// swapped without touching strategy code.
type Config struct {
	// Keywords maps a keyword category (the triple object) to the match
	// terms that count as a mention of it. Terms are matched
	// case-insensitively.
	Keywords map[string][]string `yaml:"keywords"`

	// Confidence tunes the keyword-mention confidence curve.
	Confidence ConfidenceConfig `yaml:"confidence"`

	// Cooccurrence tunes the convergence-theme windowing.
	Cooccurrence CooccurrenceConfig `yaml:"cooccurrence"`

	// Relevance sets the bucket thresholds for hasRelevance triples.
	Relevance RelevanceConfig `yaml:"relevance"`

	// PathRules assign extra categories by document path glob.
	PathRules []PathRule `yaml:"path_rules"`
}

// ConfidenceConfig tunes keyword-mention confidence.
type ConfidenceConfig struct {
	// Floor is the confidence of a single mention in a long document.
	Floor float64 `yaml:"floor"`

	// Cap bounds heuristic confidence strictly below 1.0 (1.0 is reserved
	// for manual curation).
	Cap float64 `yaml:"cap"`

	// DensityWeight is the confidence added per occurrence per 100 words.
	DensityWeight float64 `yaml:"density_weight"`
}

// CooccurrenceConfig tunes convergence-theme extraction. The source
// system's exact thresholds looked incidental, so all of them are tunable.
type CooccurrenceConfig struct {
	// WindowChars is the sliding text window size in characters.
	WindowChars int `yaml:"window_chars"`

	// MinDiversity is the minimum number of distinct keyword categories
	// that must co-occur within one window.
	MinDiversity int `yaml:"min_diversity"`

	// BaseConfidence is the confidence at exactly MinDiversity categories.
	BaseConfidence float64 `yaml:"base_confidence"`

	// DiversityBonus is added per category beyond MinDiversity.
	DiversityBonus float64 `yaml:"diversity_bonus"`

	// MaxConfidence saturates the curve below 1.0.
	MaxConfidence float64 `yaml:"max_confidence"`
}

// RelevanceConfig sets hasRelevance bucket thresholds on the 0-100 scale.
type RelevanceConfig struct {
	HighThreshold   float64 `yaml:"high_threshold"`
	MediumThreshold float64 `yaml:"medium_threshold"`
}

// PathRule assigns a category to documents whose path matches a doublestar
// glob pattern.
type PathRule struct {
	Pattern  string `yaml:"pattern"`
	Category string `yaml:"category"`
}

// DefaultConfig returns the curated default dictionary and tuning.
func DefaultConfig() Config {
	return Config{
		Keywords: map[string][]string{
			"machine-learning":   {"machine learning", "deep learning", "neural network", "ml model"},
			"python":             {"python", "pandas", "numpy"},
			"golang":             {"golang", "goroutine", "go module"},
			"database":           {"database", "postgres", "vector database", "qdrant"},
			"api-design":         {"api", "endpoint", "rest", "grpc"},
			"architecture":       {"architecture", "microservice", "design pattern"},
			"decision":           {"decision", "decided", "we chose", "approved", "trade-off"},
			"insight":            {"insight", "realized", "discovered", "breakthrough", "turning point"},
			"learning":           {"learned", "lesson", "retrospective", "postmortem"},
			"project-management": {"roadmap", "milestone", "sprint", "deadline"},
		},
		Confidence: ConfidenceConfig{
			Floor:         0.3,
			Cap:           0.95,
			DensityWeight: 0.015,
		},
		Cooccurrence: CooccurrenceConfig{
			WindowChars:    240,
			MinDiversity:   2,
			BaseConfidence: 0.5,
			DiversityBonus: 0.1,
			MaxConfidence:  0.9,
		},
		Relevance: RelevanceConfig{
			HighThreshold:   70,
			MediumThreshold: 40,
		},
		PathRules: nil,
	}
}

// Validate checks the configuration for values that would break extraction.
func (c Config) Validate() error {
	if c.Confidence.Cap <= 0 || c.Confidence.Cap > 1 {
		return fmt.Errorf("confidence.cap must be in (0,1], got %v", c.Confidence.Cap)
	}
	if c.Confidence.Floor < 0 || c.Confidence.Floor > c.Confidence.Cap {
		return fmt.Errorf("confidence.floor must be in [0, cap], got %v", c.Confidence.Floor)
	}
	if c.Cooccurrence.WindowChars <= 0 {
		return fmt.Errorf("cooccurrence.window_chars must be positive, got %d", c.Cooccurrence.WindowChars)
	}
	if c.Cooccurrence.MinDiversity < 2 {
		return fmt.Errorf("cooccurrence.min_diversity must be at least 2, got %d", c.Cooccurrence.MinDiversity)
	}
	if c.Cooccurrence.MaxConfidence >= 1 {
		return fmt.Errorf("cooccurrence.max_confidence must stay below 1.0, got %v", c.Cooccurrence.MaxConfidence)
	}
	if c.Relevance.MediumThreshold > c.Relevance.HighThreshold {
		return fmt.Errorf("relevance.medium_threshold %v exceeds high_threshold %v",
			c.Relevance.MediumThreshold, c.Relevance.HighThreshold)
	}
	return nil
}
