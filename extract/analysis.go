package extract

import (
	"github.com/c360studio/semstore/graph"
	"github.com/c360studio/semstore/vocabulary"
)

// analysisStrategy translates upstream AI analysis metadata into triples.
// It does no analysis of its own; confidence comes from the upstream score,
// clamped to [0,1].
type analysisStrategy struct{}

func newAnalysisStrategy() *analysisStrategy { return &analysisStrategy{} }

func (s *analysisStrategy) Name() string { return "ai-analysis" }

func (s *analysisStrategy) Extract(in Input) ([]graph.Triple, error) {
	analysis := in.Doc.Analysis
	if analysis == nil {
		return nil, nil
	}

	var triples []graph.Triple
	for _, entity := range analysis.Entities {
		if entity.Value == "" {
			continue
		}
		extra := map[string]any{}
		if entity.Kind != "" {
			extra["kind"] = entity.Kind
		}
		triples = append(triples, graph.Triple{
			Subject:   graph.Subject(in.Doc.ID),
			Predicate: graph.Predicate(vocabulary.PredHasEntity),
			Object:    graph.Object(entity.Value),
			Metadata: graph.Metadata{
				Source:     s.Name(),
				Confidence: graph.ClampConfidence(scoreOrFallback(entity.Score, analysis.Score)),
				Extra:      extra,
			},
		})
	}

	for _, rec := range analysis.Recommendations {
		if rec.Action == "" {
			continue
		}
		triples = append(triples, graph.Triple{
			Subject:   graph.Subject(in.Doc.ID),
			Predicate: graph.Predicate(vocabulary.PredRecommends),
			Object:    graph.Object(rec.Action),
			Metadata: graph.Metadata{
				Source:     s.Name(),
				Confidence: graph.ClampConfidence(scoreOrFallback(rec.Score, analysis.Score)),
			},
		})
	}

	return triples, nil
}

func scoreOrFallback(score, fallback float64) float64 {
	if score != 0 {
		return score
	}
	return fallback
}
