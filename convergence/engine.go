package convergence

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/c360studio/semstore/graph"
	"github.com/c360studio/semstore/source"
	"github.com/c360studio/semstore/vocabulary"
)

// aiBonusThreshold is the confidence an ai-analysis triple needs before it
// boosts the importance dimension.
const aiBonusThreshold = 0.8

// aiBonusFactor is the multiplicative importance bonus for documents backed
// by high-confidence analysis.
const aiBonusFactor = 1.2

// neutralTemporal is used when a document carries no modification timestamp.
const neutralTemporal = 0.5

// Dimensions holds the three component scores, each in [0,1].
type Dimensions struct {
	// Temporal decays from 1.0 toward 0.0 with document age. It never
	// reaches 0.
	Temporal float64 `json:"temporal"`

	// Category measures category richness relative to the richest
	// assignment in the corpus at computation time.
	Category float64 `json:"category"`

	// Importance rescales the document relevance score, boosted when
	// high-confidence analysis triples exist.
	Importance float64 `json:"importance"`
}

// Record is the derived convergence output for one document.
type Record struct {
	// TotalScore is the weighted average of the dimensions.
	TotalScore float64 `json:"totalScore"`

	Dimensions Dimensions `json:"dimensions"`

	// SemanticClusters lists the co-occurrence theme labels attached to the
	// document, sorted.
	SemanticClusters []string `json:"semanticClusters"`

	// RelatedConcepts lists the distinct keyword categories the document
	// mentions, sorted.
	RelatedConcepts []string `json:"relatedConcepts"`

	// Enriched reports whether an embedding vector was present.
	Enriched bool `json:"enriched"`

	// ComputedAt is the timestamp the caller supplied as "now".
	ComputedAt time.Time `json:"computedAt"`
}

// Weights controls how the dimensions combine into the total score.
type Weights struct {
	Temporal   float64 `yaml:"temporal" json:"temporal"`
	Category   float64 `yaml:"category" json:"category"`
	Importance float64 `yaml:"importance" json:"importance"`
}

// Config tunes the scoring curves.
type Config struct {
	// HalfLifeDays is the exponential half-life of the temporal dimension.
	HalfLifeDays float64 `yaml:"half_life_days" json:"half_life_days"`

	Weights Weights `yaml:"weights" json:"weights"`
}

// DefaultConfig returns the standard tuning: a 90-day temporal half-life and
// equal-thirds weighting.
func DefaultConfig() Config {
	return Config{
		HalfLifeDays: 90,
		Weights:      Weights{Temporal: 1, Category: 1, Importance: 1},
	}
}

// Validate checks the configuration for values the engine cannot score with.
func (c Config) Validate() error {
	if c.HalfLifeDays <= 0 {
		return fmt.Errorf("half_life_days must be positive, got %v", c.HalfLifeDays)
	}
	if c.Weights.Temporal < 0 || c.Weights.Category < 0 || c.Weights.Importance < 0 {
		return fmt.Errorf("weights must be non-negative, got %+v", c.Weights)
	}
	if c.Weights.Temporal+c.Weights.Category+c.Weights.Importance == 0 {
		return fmt.Errorf("at least one weight must be positive")
	}
	return nil
}

// TripleView is the read-only slice of the store the engine needs. The
// engine never mutates the graph.
type TripleView interface {
	Query(p graph.Pattern) []*graph.Triple
}

// Engine computes convergence records. It is stateless beyond its
// configuration; Compute is pure given its inputs.
type Engine struct {
	cfg Config
}

// NewEngine creates an engine with the given tuning. Invalid configurations
// fall back to defaults field by field rather than failing.
func NewEngine(cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.HalfLifeDays <= 0 {
		cfg.HalfLifeDays = def.HalfLifeDays
	}
	if cfg.Weights.Temporal+cfg.Weights.Category+cfg.Weights.Importance <= 0 {
		cfg.Weights = def.Weights
	}
	return &Engine{cfg: cfg}
}

// Compute derives the convergence record for a document from the triples in
// view, the (possibly absent) embedding, and the supplied clock reading. It
// never touches the network and never fails; an absent embedding yields a
// valid record with Enriched false.
func (e *Engine) Compute(doc *source.Document, view TripleView, embedding []float64, now time.Time) Record {
	rec := Record{ComputedAt: now, Enriched: len(embedding) > 0}
	if doc == nil {
		return rec
	}

	rec.Dimensions = Dimensions{
		Temporal:   e.temporalScore(doc, now),
		Category:   e.categoryScore(doc, view),
		Importance: e.importanceScore(doc, view),
	}
	rec.TotalScore = e.weightedTotal(rec.Dimensions)
	rec.SemanticClusters = distinctObjects(view, doc.ID, vocabulary.PredConvergenceTheme)
	rec.RelatedConcepts = distinctObjects(view, doc.ID, vocabulary.PredMentionsKeyword)
	return rec
}

// temporalScore applies exponential decay to document age. Documents without
// a timestamp get a neutral score rather than counting as ancient.
func (e *Engine) temporalScore(doc *source.Document, now time.Time) float64 {
	if doc.ModifiedAt.IsZero() {
		return neutralTemporal
	}
	age := now.Sub(doc.ModifiedAt)
	if age <= 0 {
		return 1
	}
	ageDays := age.Hours() / 24
	return math.Exp(-math.Ln2 * ageDays / e.cfg.HalfLifeDays)
}

// categoryScore normalizes the document's distinct category count against
// the richest assignment in the corpus. Corpus-relative: the same document
// scores differently as the store grows.
func (e *Engine) categoryScore(doc *source.Document, view TripleView) float64 {
	if view == nil {
		return 0
	}
	perSubject := make(map[string]map[string]struct{})
	for _, t := range view.Query(graph.Pattern{Predicate: vocabulary.PredHasCategory}) {
		set := perSubject[t.Subject.Value]
		if set == nil {
			set = make(map[string]struct{})
			perSubject[t.Subject.Value] = set
		}
		set[t.Object.Value] = struct{}{}
	}

	richest := 0
	for _, set := range perSubject {
		if len(set) > richest {
			richest = len(set)
		}
	}
	if richest == 0 {
		return 0
	}
	return float64(len(perSubject[doc.ID])) / float64(richest)
}

// importanceScore rescales relevance to [0,1] and applies the analysis bonus
// when at least one high-confidence ai-analysis triple exists.
func (e *Engine) importanceScore(doc *source.Document, view TripleView) float64 {
	score := graph.ClampConfidence(doc.RelevanceScore / 100)
	if view == nil {
		return score
	}
	for _, t := range view.Query(graph.Pattern{Subject: doc.ID}) {
		if t.Metadata.Source == "ai-analysis" && t.Metadata.Confidence >= aiBonusThreshold {
			score = math.Min(1, score*aiBonusFactor)
			break
		}
	}
	return score
}

func (e *Engine) weightedTotal(d Dimensions) float64 {
	w := e.cfg.Weights
	sum := w.Temporal + w.Category + w.Importance
	if sum == 0 {
		return 0
	}
	return (d.Temporal*w.Temporal + d.Category*w.Category + d.Importance*w.Importance) / sum
}

// distinctObjects collects the sorted distinct object values of the
// document's triples under one predicate.
func distinctObjects(view TripleView, docID, predicate string) []string {
	if view == nil {
		return nil
	}
	seen := make(map[string]struct{})
	for _, t := range view.Query(graph.Pattern{Subject: docID, Predicate: predicate}) {
		seen[t.Object.Value] = struct{}{}
	}
	if len(seen) == 0 {
		return nil
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
