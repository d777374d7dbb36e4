package extract

import (
	"strings"
	"testing"

	"github.com/c360studio/semstore/source"
	"github.com/c360studio/semstore/vocabulary"
)

func TestCooccurrenceEmitsTheme(t *testing.T) {
	s := newCooccurrenceStrategy(DefaultConfig())

	doc := &source.Document{
		ID:      "doc-co",
		Content: "We trained a machine learning model in python last sprint.",
	}

	triples, err := s.Extract(keywordInput(doc))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(triples) == 0 {
		t.Fatal("expected at least one convergence theme triple")
	}

	found := false
	for _, tr := range triples {
		if tr.Predicate.Value != vocabulary.PredConvergenceTheme {
			t.Errorf("unexpected predicate %q", tr.Predicate.Value)
		}
		if tr.Metadata.Confidence >= 1.0 {
			t.Errorf("heuristic confidence %v must stay below 1.0", tr.Metadata.Confidence)
		}
		if strings.Contains(tr.Object.Value, "machine-learning") && strings.Contains(tr.Object.Value, "python") {
			found = true
		}
	}
	if !found {
		t.Errorf("no theme combining machine-learning and python; got %+v", triples)
	}
}

func TestCooccurrenceDiversityRaisesConfidence(t *testing.T) {
	cfg := DefaultConfig()
	s := newCooccurrenceStrategy(cfg)

	two := &source.Document{ID: "a", Content: "machine learning in python"}
	three := &source.Document{ID: "b", Content: "machine learning in python against a database"}

	twoTriples, _ := s.Extract(keywordInput(two))
	threeTriples, _ := s.Extract(keywordInput(three))
	if len(twoTriples) == 0 || len(threeTriples) == 0 {
		t.Fatal("both documents should produce themes")
	}

	twoBest, threeBest := 0.0, 0.0
	for _, tr := range twoTriples {
		if tr.Metadata.Confidence > twoBest {
			twoBest = tr.Metadata.Confidence
		}
	}
	for _, tr := range threeTriples {
		if tr.Metadata.Confidence > threeBest {
			threeBest = tr.Metadata.Confidence
		}
	}
	if threeBest <= twoBest {
		t.Errorf("three-way co-occurrence confidence %v should exceed two-way %v", threeBest, twoBest)
	}
	if threeBest > cfg.Cooccurrence.MaxConfidence {
		t.Errorf("confidence %v exceeds configured maximum %v", threeBest, cfg.Cooccurrence.MaxConfidence)
	}
}

func TestCooccurrenceRespectsWindow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cooccurrence.WindowChars = 40
	s := newCooccurrenceStrategy(cfg)

	// Mentions pushed far apart: no window holds both.
	doc := &source.Document{
		ID:      "doc-far",
		Content: "machine learning " + strings.Repeat("filler words here ", 30) + " python",
	}

	triples, err := s.Extract(keywordInput(doc))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(triples) != 0 {
		t.Errorf("distant mentions produced themes: %+v", triples)
	}
}

func TestCooccurrenceSingleCategory(t *testing.T) {
	s := newCooccurrenceStrategy(DefaultConfig())

	doc := &source.Document{ID: "doc-single", Content: "python python python"}
	triples, err := s.Extract(keywordInput(doc))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(triples) != 0 {
		t.Errorf("single-category text produced themes: %+v", triples)
	}
}
