package consolidator

import (
	"fmt"
	"sort"

	"github.com/c360studio/semstore/graph"
	"github.com/c360studio/semstore/vocabulary"
)

// clusterHubThreshold is the number of distinct convergence themes a
// document needs before it is surfaced as a hub.
const clusterHubThreshold = 3

// dominanceShare is the fraction of all keyword mentions one category must
// hold to be surfaced as dominant.
const dominanceShare = 0.5

// Insight is one human-readable observation about the graph.
type Insight struct {
	// Kind labels the heuristic that produced the insight.
	Kind string `json:"kind"`

	// Subject is the entity the insight is about.
	Subject string `json:"subject"`

	// Detail is the human-readable summary.
	Detail string `json:"detail"`
}

// GenerateInsights scans triples matching the filter and surfaces salient
// patterns: documents acting as convergence hubs and keyword categories
// dominating the corpus. Heuristic, not exhaustive. Output order is
// deterministic.
func (s *Service) GenerateInsights(filter graph.Pattern) []Insight {
	triples := s.store.Query(filter)

	themesPerDoc := make(map[string]map[string]struct{})
	mentionsPerCategory := make(map[string]int)
	totalMentions := 0

	for _, t := range triples {
		switch t.Predicate.Value {
		case vocabulary.PredConvergenceTheme:
			set := themesPerDoc[t.Subject.Value]
			if set == nil {
				set = make(map[string]struct{})
				themesPerDoc[t.Subject.Value] = set
			}
			set[t.Object.Value] = struct{}{}
		case vocabulary.PredMentionsKeyword:
			mentionsPerCategory[t.Object.Value]++
			totalMentions++
		}
	}

	var insights []Insight

	hubs := make([]string, 0, len(themesPerDoc))
	for doc, themes := range themesPerDoc {
		if len(themes) >= clusterHubThreshold {
			hubs = append(hubs, doc)
		}
	}
	sort.Strings(hubs)
	for _, doc := range hubs {
		insights = append(insights, Insight{
			Kind:    "convergence-hub",
			Subject: doc,
			Detail: fmt.Sprintf("document %s participates in %d convergence themes",
				doc, len(themesPerDoc[doc])),
		})
	}

	if totalMentions > 0 {
		categories := make([]string, 0, len(mentionsPerCategory))
		for c := range mentionsPerCategory {
			categories = append(categories, c)
		}
		sort.Strings(categories)
		for _, c := range categories {
			count := mentionsPerCategory[c]
			if float64(count) > dominanceShare*float64(totalMentions) {
				insights = append(insights, Insight{
					Kind:    "dominant-category",
					Subject: c,
					Detail: fmt.Sprintf("category %s accounts for %d of %d keyword mentions",
						c, count, totalMentions),
				})
			}
		}
	}

	return insights
}
