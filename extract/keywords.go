package extract

import (
	"sort"
	"strings"

	"github.com/c360studio/semstore/graph"
	"github.com/c360studio/semstore/vocabulary"
)

// keywordStrategy scans normalized document text for the configured keyword
// dictionary and emits one mentionsKeyword triple per matched category.
// Confidence grows with occurrence density and is capped below 1.0.
type keywordStrategy struct {
	keywords   map[string][]string
	confidence ConfidenceConfig
}

func newKeywordStrategy(cfg Config) *keywordStrategy {
	return &keywordStrategy{
		keywords:   cfg.Keywords,
		confidence: cfg.Confidence,
	}
}

func (s *keywordStrategy) Name() string { return "keyword-pattern" }

func (s *keywordStrategy) Extract(in Input) ([]graph.Triple, error) {
	if in.Text == "" || in.Words == 0 {
		return nil, nil
	}

	counts := countMentions(in.Text, s.keywords)
	if len(counts) == 0 {
		return nil, nil
	}

	// Deterministic output order for reproducibility.
	categories := make([]string, 0, len(counts))
	for category := range counts {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	triples := make([]graph.Triple, 0, len(categories))
	for _, category := range categories {
		count := counts[category]
		triples = append(triples, graph.Triple{
			Subject:   graph.Subject(in.Doc.ID),
			Predicate: graph.Predicate(vocabulary.PredMentionsKeyword),
			Object:    graph.Object(category),
			Metadata: graph.Metadata{
				Source:     s.Name(),
				Confidence: s.score(count, in.Words),
				Extra: map[string]any{
					"occurrences": count,
					"words":       in.Words,
				},
			},
		})
	}
	return triples, nil
}

// score maps occurrence density (mentions per 100 words) onto
// [Floor, Cap]. More occurrences in the same document always score at least
// as high.
func (s *keywordStrategy) score(count, words int) float64 {
	density := float64(count) * 100 / float64(words)
	score := s.confidence.Floor + density*s.confidence.DensityWeight
	if score > s.confidence.Cap {
		return s.confidence.Cap
	}
	return score
}

// countMentions counts non-overlapping occurrences of each category's match
// terms in the lowercased text.
func countMentions(text string, keywords map[string][]string) map[string]int {
	counts := make(map[string]int)
	for category, terms := range keywords {
		total := 0
		for _, term := range terms {
			term = strings.ToLower(strings.TrimSpace(term))
			if term == "" {
				continue
			}
			total += strings.Count(text, term)
		}
		if total > 0 {
			counts[category] = total
		}
	}
	return counts
}
