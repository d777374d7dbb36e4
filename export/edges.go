package export

import (
	"github.com/c360studio/semstore/graph"
)

// Node is one vertex in the edge-list projection.
type Node struct {
	ID    string `json:"id"`
	Class string `json:"class"`
}

// Edge is one labeled, directed connection between two nodes.
type Edge struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source"`
}

// EdgeList is the node/edge projection of a set of triples.
type EdgeList struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// BuildEdgeList projects triples into nodes and edges. Nodes are deduplicated
// by value; edges keep one entry per triple so duplicate facts from different
// strategies stay visible. Order follows first appearance.
func BuildEdgeList(triples []*graph.Triple) EdgeList {
	var out EdgeList
	seen := make(map[string]struct{})

	addNode := func(t graph.Term) {
		if _, ok := seen[t.Value]; ok {
			return
		}
		seen[t.Value] = struct{}{}
		out.Nodes = append(out.Nodes, Node{ID: t.Value, Class: string(t.Class)})
	}

	for _, t := range triples {
		addNode(t.Subject)
		addNode(t.Object)
		out.Edges = append(out.Edges, Edge{
			From:       t.Subject.Value,
			To:         t.Object.Value,
			Label:      t.Predicate.Value,
			Confidence: t.Metadata.Confidence,
			Source:     t.Metadata.Source,
		})
	}
	return out
}
