package extract

import (
	"sort"
	"strings"

	"github.com/c360studio/semstore/graph"
	"github.com/c360studio/semstore/vocabulary"
)

// cooccurrenceStrategy looks for windows of text where several keyword
// categories appear together and emits a synthetic convergence theme triple
// per distinct combination. Heuristic confidence grows with category
// diversity but saturates below 1.0: co-occurrence alone never proves a
// relationship.
type cooccurrenceStrategy struct {
	keywords map[string][]string
	tuning   CooccurrenceConfig
}

func newCooccurrenceStrategy(cfg Config) *cooccurrenceStrategy {
	return &cooccurrenceStrategy{
		keywords: cfg.Keywords,
		tuning:   cfg.Cooccurrence,
	}
}

func (s *cooccurrenceStrategy) Name() string { return "co-occurrence" }

// mention is one keyword category occurrence at a byte offset.
type mention struct {
	pos      int
	category string
}

func (s *cooccurrenceStrategy) Extract(in Input) ([]graph.Triple, error) {
	if in.Text == "" {
		return nil, nil
	}

	mentions := collectMentions(in.Text, s.keywords)
	if len(mentions) == 0 {
		return nil, nil
	}
	sort.Slice(mentions, func(i, j int) bool { return mentions[i].pos < mentions[j].pos })

	// Track the best (most diverse) window per theme label.
	themes := make(map[string][]string)
	for i, anchor := range mentions {
		limit := anchor.pos + s.tuning.WindowChars
		inWindow := map[string]bool{anchor.category: true}
		for _, m := range mentions[i+1:] {
			if m.pos >= limit {
				break
			}
			inWindow[m.category] = true
		}
		if len(inWindow) < s.tuning.MinDiversity {
			continue
		}

		categories := make([]string, 0, len(inWindow))
		for c := range inWindow {
			categories = append(categories, c)
		}
		sort.Strings(categories)
		label := strings.Join(categories, "+")
		if len(categories) > len(themes[label]) {
			themes[label] = categories
		}
	}
	if len(themes) == 0 {
		return nil, nil
	}

	labels := make([]string, 0, len(themes))
	for label := range themes {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	triples := make([]graph.Triple, 0, len(labels))
	for _, label := range labels {
		categories := themes[label]
		triples = append(triples, graph.Triple{
			Subject:   graph.Subject(in.Doc.ID),
			Predicate: graph.Predicate(vocabulary.PredConvergenceTheme),
			Object:    graph.Object(label),
			Metadata: graph.Metadata{
				Source:     s.Name(),
				Confidence: s.score(len(categories)),
				Extra: map[string]any{
					"categories": categories,
					"diversity":  len(categories),
				},
			},
		})
	}
	return triples, nil
}

// score maps category diversity onto [BaseConfidence, MaxConfidence).
func (s *cooccurrenceStrategy) score(diversity int) float64 {
	score := s.tuning.BaseConfidence + float64(diversity-s.tuning.MinDiversity)*s.tuning.DiversityBonus
	if score > s.tuning.MaxConfidence {
		return s.tuning.MaxConfidence
	}
	return score
}

// collectMentions finds every occurrence position of every category's match
// terms in the lowercased text.
func collectMentions(text string, keywords map[string][]string) []mention {
	var mentions []mention
	for category, terms := range keywords {
		for _, term := range terms {
			term = strings.ToLower(strings.TrimSpace(term))
			if term == "" {
				continue
			}
			offset := 0
			for {
				idx := strings.Index(text[offset:], term)
				if idx < 0 {
					break
				}
				mentions = append(mentions, mention{pos: offset + idx, category: category})
				offset += idx + len(term)
			}
		}
	}
	return mentions
}
