// Package export produces format-specific projections of the triple graph:
// a flat point list for vector-index upserts, a node/edge list for graph
// consumers, and RDF serializations. Pure data-shape transforms; nothing
// here mutates the store.
package export
