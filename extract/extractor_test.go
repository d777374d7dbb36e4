package extract

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/c360studio/semstore/graph"
	"github.com/c360studio/semstore/source"
	"github.com/c360studio/semstore/vocabulary"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubStrategy lets tests inject failures and fixed outputs.
type stubStrategy struct {
	name    string
	triples []graph.Triple
	err     error
	panics  bool
}

func (s *stubStrategy) Name() string { return s.name }

func (s *stubStrategy) Extract(in Input) ([]graph.Triple, error) {
	if s.panics {
		panic("malformed input")
	}
	return s.triples, s.err
}

func TestExtractorIsolatesFailures(t *testing.T) {
	ok := graph.Triple{
		Subject:   graph.Subject("doc-1"),
		Predicate: graph.Predicate(vocabulary.PredHasName),
		Object:    graph.Object("notes"),
		Metadata:  graph.Metadata{Source: "good", Confidence: 1},
	}

	e := NewWithStrategies(quietLogger(),
		&stubStrategy{name: "erroring", err: errors.New("boom")},
		&stubStrategy{name: "panicking", panics: true},
		&stubStrategy{name: "good", triples: []graph.Triple{ok}},
	)

	triples := e.ExtractFromDocument(&source.Document{ID: "doc-1"})
	if len(triples) != 1 {
		t.Fatalf("triples = %d, want 1 (failures isolated)", len(triples))
	}
	if triples[0].Metadata.Source != "good" {
		t.Errorf("surviving triple from %q, want good", triples[0].Metadata.Source)
	}
}

func TestExtractorClampsConfidence(t *testing.T) {
	e := NewWithStrategies(quietLogger(), &stubStrategy{
		name: "wild",
		triples: []graph.Triple{
			{Metadata: graph.Metadata{Source: "wild", Confidence: 3.5}},
			{Metadata: graph.Metadata{Source: "wild", Confidence: -0.2}},
		},
	})

	triples := e.ExtractFromDocument(&source.Document{ID: "doc-2"})
	if len(triples) != 2 {
		t.Fatalf("triples = %d, want 2", len(triples))
	}
	if triples[0].Metadata.Confidence != 1 {
		t.Errorf("over-range confidence = %v, want clamped to 1", triples[0].Metadata.Confidence)
	}
	if triples[1].Metadata.Confidence != 0 {
		t.Errorf("under-range confidence = %v, want clamped to 0", triples[1].Metadata.Confidence)
	}
}

func TestExtractorNilDocument(t *testing.T) {
	e := New(DefaultConfig(), quietLogger())
	if got := e.ExtractFromDocument(nil); got != nil {
		t.Errorf("ExtractFromDocument(nil) = %+v, want nil", got)
	}
}

func TestExtractorEmptyDocumentStructuralOnly(t *testing.T) {
	e := New(DefaultConfig(), quietLogger())

	doc := &source.Document{ID: "doc-empty", Name: "empty note"}
	triples := e.ExtractFromDocument(doc)

	if len(triples) != 1 {
		t.Fatalf("triples = %d, want only the hasName structural fact", len(triples))
	}
	if triples[0].Predicate.Value != vocabulary.PredHasName {
		t.Errorf("predicate = %q, want %q", triples[0].Predicate.Value, vocabulary.PredHasName)
	}
	for _, tr := range triples {
		if tr.Metadata.Source == "keyword-pattern" || tr.Metadata.Source == "co-occurrence" {
			t.Errorf("empty document produced content triple: %+v", tr)
		}
	}
}

func TestExtractorFullPipelineOrdering(t *testing.T) {
	e := New(DefaultConfig(), quietLogger())

	doc := &source.Document{
		ID:             "doc-full",
		Name:           "ML pipeline notes",
		Categories:     []string{"Tech"},
		RelevanceScore: 60,
		Analyzed:       true,
		Analysis: &source.Analysis{
			Type:  "technical-breakthrough",
			Score: 0.8,
			Entities: []source.AnalysisEntity{
				{Value: "transformer", Kind: "technology"},
			},
		},
		Content: "We took the decision to rebuild the machine learning pipeline in python.",
	}

	triples := e.ExtractFromDocument(doc)
	if len(triples) == 0 {
		t.Fatal("no triples extracted")
	}

	// Strategy order is fixed: structural first, ai-analysis last.
	if triples[0].Metadata.Source != "structural" {
		t.Errorf("first triple from %q, want structural", triples[0].Metadata.Source)
	}
	if last := triples[len(triples)-1]; last.Metadata.Source != "ai-analysis" {
		t.Errorf("last triple from %q, want ai-analysis", last.Metadata.Source)
	}
	for _, tr := range triples {
		if tr.Metadata.Confidence < 0 || tr.Metadata.Confidence > 1 {
			t.Errorf("confidence out of bounds: %+v", tr)
		}
	}
}
