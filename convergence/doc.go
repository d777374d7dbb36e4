// Package convergence scores how worth indexing a document is, combining
// recency, category richness, and importance signals already present in the
// triple graph. Scores are derived, never persisted; any record can be
// recomputed from the graph at any time.
package convergence
