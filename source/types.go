// Package source provides the read-only document model consumed by the
// extraction pipeline, plus content normalization for HTML inputs.
package source

import "time"

// Document is the external Document collaborator's view of a curated file.
// The core never mutates it, only reads.
type Document struct {
	// ID is the unique document identifier.
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Path is the document's location in the owning system.
	Path string `json:"path"`

	// Content is the full document content. May be empty when only a
	// preview was captured.
	Content string `json:"content,omitempty"`

	// Preview is a truncated excerpt used when Content is absent.
	Preview string `json:"preview,omitempty"`

	// Categories are the human-assigned labels, in assignment order.
	Categories []string `json:"categories,omitempty"`

	// RelevanceScore is the curator's relevance estimate on a 0-100 scale.
	RelevanceScore float64 `json:"relevance_score"`

	// Analyzed reports whether the upstream AI analysis ran.
	Analyzed bool `json:"analyzed"`

	// Analysis holds the upstream AI analysis output, if any.
	Analysis *Analysis `json:"analysis,omitempty"`

	// ModifiedAt is the last-modified timestamp.
	ModifiedAt time.Time `json:"modified_at"`
}

// Text returns the best available document text: full content when present,
// otherwise the preview.
func (d *Document) Text() string {
	if d.Content != "" {
		return d.Content
	}
	return d.Preview
}

// Analysis is the externally-produced AI analysis attached to a document.
type Analysis struct {
	// Type classifies the analysis outcome (e.g. "technical-breakthrough",
	// "conceptual-evolution").
	Type string `json:"type,omitempty"`

	// Score is the upstream confidence. May arrive out of [0,1]; consumers
	// clamp it.
	Score float64 `json:"score"`

	// Entities are the entities the analyzer surfaced.
	Entities []AnalysisEntity `json:"entities,omitempty"`

	// Recommendations are suggested follow-up actions.
	Recommendations []Recommendation `json:"recommendations,omitempty"`
}

// AnalysisEntity is one entity surfaced by the upstream analyzer.
type AnalysisEntity struct {
	// Value is the entity text.
	Value string `json:"value"`

	// Kind is the analyzer's entity class (person, technology, concept).
	Kind string `json:"kind,omitempty"`

	// Score is the per-entity confidence; falls back to the analysis score
	// when zero.
	Score float64 `json:"score,omitempty"`
}

// Recommendation is one follow-up action suggested by the analyzer.
type Recommendation struct {
	// Action is the recommended action text.
	Action string `json:"action"`

	// Score is the per-recommendation confidence; falls back to the
	// analysis score when zero.
	Score float64 `json:"score,omitempty"`
}
