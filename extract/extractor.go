package extract

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/c360studio/semstore/graph"
	"github.com/c360studio/semstore/source"
)

// Input is the per-document context shared by all strategies: the document
// itself plus its normalized plain text, computed once.
type Input struct {
	// Doc is the document under extraction.
	Doc *source.Document

	// Text is the normalized (markup-free, lowercased) document text.
	Text string

	// Words is the word count of Text, used for density normalization.
	Words int
}

// Strategy is one independent method for deriving candidate triples from a
// document. Strategies emit triples without IDs; the store assigns IDs at
// insertion.
type Strategy interface {
	// Name identifies the strategy; it becomes the Metadata.Source of the
	// triples it emits.
	Name() string

	// Extract derives candidate triples. Returning an error (or panicking)
	// skips this strategy only.
	Extract(in Input) ([]graph.Triple, error)
}

// Extractor runs the configured strategies in fixed order and concatenates
// their outputs. Strategy failures are isolated and logged, never
// propagated.
type Extractor struct {
	strategies []Strategy
	normalizer *source.Normalizer
	logger     *slog.Logger
}

// New creates an extractor with the standard four strategies built from the
// given configuration.
func New(cfg Config, logger *slog.Logger) *Extractor {
	return NewWithStrategies(logger,
		newStructuralStrategy(cfg),
		newKeywordStrategy(cfg),
		newCooccurrenceStrategy(cfg),
		newAnalysisStrategy(),
	)
}

// NewWithStrategies creates an extractor with an explicit strategy list.
// Used by tests and by callers composing custom pipelines.
func NewWithStrategies(logger *slog.Logger, strategies ...Strategy) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{
		strategies: strategies,
		normalizer: source.NewNormalizer(),
		logger:     logger,
	}
}

// ExtractFromDocument runs every strategy against the document and returns
// the concatenated triples in strategy order. A strategy that fails is
// skipped; an empty document yields structural triples only. Confidence
// values are clamped to [0,1] on the way out.
func (e *Extractor) ExtractFromDocument(doc *source.Document) []graph.Triple {
	if doc == nil {
		return nil
	}

	in := Input{
		Doc:  doc,
		Text: strings.ToLower(e.normalizer.Normalize(doc)),
	}
	in.Words = len(strings.Fields(in.Text))

	var out []graph.Triple
	for _, strategy := range e.strategies {
		triples, err := e.runStrategy(strategy, in)
		if err != nil {
			e.logger.Warn("extraction strategy failed",
				slog.String("strategy", strategy.Name()),
				slog.String("document", doc.ID),
				slog.String("error", err.Error()))
			continue
		}
		for i := range triples {
			triples[i].Metadata.Confidence = graph.ClampConfidence(triples[i].Metadata.Confidence)
		}
		out = append(out, triples...)
	}
	return out
}

// runStrategy isolates a single strategy call, converting panics into
// errors so one malformed input cannot take down the whole extraction.
func (e *Extractor) runStrategy(s Strategy, in Input) (triples []graph.Triple, err error) {
	defer func() {
		if r := recover(); r != nil {
			triples = nil
			err = fmt.Errorf("strategy panic: %v", r)
		}
	}()
	return s.Extract(in)
}
