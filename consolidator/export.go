package consolidator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/c360studio/semstore/export"
	"github.com/c360studio/semstore/source"
)

// ExportFor produces a format-specific projection of the whole graph. RDF
// formats serialize the stored triples; the edge format emits a node/edge
// JSON document. Point export needs documents and goes through ExportPoints.
func (s *Service) ExportFor(format export.Format) (string, error) {
	switch format {
	case export.FormatTurtle, export.FormatNTriples:
		e := export.NewRDFExporter()
		e.Add(s.store.All()...)
		return e.Export(format)

	case export.FormatEdges:
		el := export.BuildEdgeList(s.store.All())
		data, err := json.MarshalIndent(el, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal edge list: %w", err)
		}
		return string(data), nil

	case export.FormatPoints:
		return "", fmt.Errorf("point export requires documents, use ExportPoints")

	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// ExportPoints shapes documents into vector-index upsert points, one per
// document, with the convergence record embedded in the payload. Embedding
// failures degrade the affected point to structural enrichment.
func (s *Service) ExportPoints(ctx context.Context, docs []*source.Document) []export.Point {
	points := make([]export.Point, 0, len(docs))
	for _, doc := range docs {
		if doc == nil || doc.ID == "" {
			continue
		}
		rec, vector, err := s.Enrich(ctx, doc)
		if err != nil {
			continue
		}
		points = append(points, export.BuildPoint(doc, vector, &rec))
	}
	return points
}
