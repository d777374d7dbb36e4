package extract

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/c360studio/semstore/graph"
	"github.com/c360studio/semstore/vocabulary"
)

// structuralStrategy emits deterministic triples from document metadata
// alone, with no text analysis. These carry confidence 1.0: they restate
// facts the owning system already asserts.
type structuralStrategy struct {
	relevance RelevanceConfig
	pathRules []PathRule
}

func newStructuralStrategy(cfg Config) *structuralStrategy {
	return &structuralStrategy{
		relevance: cfg.Relevance,
		pathRules: cfg.PathRules,
	}
}

func (s *structuralStrategy) Name() string { return "structural" }

func (s *structuralStrategy) Extract(in Input) ([]graph.Triple, error) {
	doc := in.Doc
	meta := graph.Metadata{Source: s.Name(), Confidence: 1.0}

	name := doc.Name
	if name == "" {
		name = filepath.Base(doc.Path)
	}
	if name == "" || name == "." {
		name = doc.ID
	}

	triples := []graph.Triple{{
		Subject:   graph.Subject(doc.ID),
		Predicate: graph.Predicate(vocabulary.PredHasName),
		Object:    graph.Object(name),
		Metadata:  meta,
	}}

	for _, category := range s.categories(doc.Categories, doc.Path) {
		triples = append(triples, graph.Triple{
			Subject:   graph.Subject(doc.ID),
			Predicate: graph.Predicate(vocabulary.PredHasCategory),
			Object:    graph.Object(category),
			Metadata:  meta,
		})
	}

	if doc.Analyzed {
		analysisType := "general"
		if doc.Analysis != nil && doc.Analysis.Type != "" {
			analysisType = doc.Analysis.Type
		}
		triples = append(triples, graph.Triple{
			Subject:   graph.Subject(doc.ID),
			Predicate: graph.Predicate(vocabulary.PredHasAnalysisType),
			Object:    graph.Object(analysisType),
			Metadata:  meta,
		})
	}

	if doc.RelevanceScore > 0 {
		triples = append(triples, graph.Triple{
			Subject:   graph.Subject(doc.ID),
			Predicate: graph.Predicate(vocabulary.PredHasRelevance),
			Object:    graph.Object(s.bucket(doc.RelevanceScore)),
			Metadata:  meta,
		})
	}

	return triples, nil
}

// categories merges the document's own categories with path-rule matches,
// preserving assignment order and dropping case-insensitive duplicates.
func (s *structuralStrategy) categories(assigned []string, path string) []string {
	seen := make(map[string]bool, len(assigned))
	out := make([]string, 0, len(assigned))
	for _, c := range assigned {
		key := strings.ToLower(c)
		if c == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}

	if path == "" {
		return out
	}
	for _, rule := range s.pathRules {
		ok, err := doublestar.Match(rule.Pattern, filepath.ToSlash(path))
		if err != nil || !ok {
			continue
		}
		key := strings.ToLower(rule.Category)
		if rule.Category == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, rule.Category)
	}
	return out
}

func (s *structuralStrategy) bucket(score float64) string {
	switch {
	case score >= s.relevance.HighThreshold:
		return vocabulary.RelevanceHigh
	case score >= s.relevance.MediumThreshold:
		return vocabulary.RelevanceMedium
	default:
		return vocabulary.RelevanceLow
	}
}
