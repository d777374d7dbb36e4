package export

import (
	"github.com/c360studio/semstore/convergence"
	"github.com/c360studio/semstore/source"
)

// Payload is the per-point metadata shipped alongside the vector.
type Payload struct {
	// SourceFile is the document path, or its name when no path is known.
	SourceFile string `json:"sourceFile"`

	// Categories are the document's human labels.
	Categories []string `json:"categories,omitempty"`

	// RelevanceScore is the document relevance on the 0-100 scale.
	RelevanceScore float64 `json:"relevanceScore"`

	// IntelligenceType is the upstream analysis type, when analyzed.
	IntelligenceType string `json:"intelligenceType,omitempty"`

	// Convergence is the derived convergence record at export time.
	Convergence *convergence.Record `json:"convergence,omitempty"`

	// EnrichmentLevel is "semantic" when an embedding backed the record,
	// "structural" otherwise.
	EnrichmentLevel string `json:"enrichmentLevel"`
}

// Point is one vector-index upsert unit: one point per document.
type Point struct {
	ID      string    `json:"id"`
	Vector  []float64 `json:"vector,omitempty"`
	Payload Payload   `json:"payload"`
}

// BuildPoint shapes a document, its embedding, and its convergence record
// into an upsert-ready point. Vector may be nil; the point is still valid
// and the payload marks it unenriched.
func BuildPoint(doc *source.Document, vector []float64, rec *convergence.Record) Point {
	p := Point{
		ID:     doc.ID,
		Vector: vector,
		Payload: Payload{
			SourceFile:     doc.Path,
			Categories:     doc.Categories,
			RelevanceScore: doc.RelevanceScore,
			Convergence:    rec,
		},
	}
	if p.Payload.SourceFile == "" {
		p.Payload.SourceFile = doc.Name
	}
	if doc.Analyzed && doc.Analysis != nil {
		p.Payload.IntelligenceType = doc.Analysis.Type
	}
	p.Payload.EnrichmentLevel = "structural"
	if rec != nil && rec.Enriched {
		p.Payload.EnrichmentLevel = "semantic"
	}
	return p
}
