// Package consolidator is the single entry point external collaborators
// call. It wires the extractor, schema registry, triple store, and
// convergence engine together for single documents and batches, and exposes
// search, insight, and export operations on top of the graph.
package consolidator
