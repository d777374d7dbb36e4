// Package graph implements the authoritative in-memory triple store.
//
// # Data Model
//
// A Triple is the atomic fact unit: three typed terms (subject, predicate,
// object), each a (class, value) pair, plus provenance metadata carrying the
// extraction source and a confidence in [0,1]. Triples are immutable after
// insertion; corrections are modeled as new triples, and duplicates from
// independent extraction strategies are intentionally retained for
// provenance.
//
// # Indexing
//
// The Store maintains primary storage in insertion order plus three
// secondary indices keyed by subject, predicate, and object value. Primary
// storage and all indices are updated inside one critical section, so the
// consistency invariant (every stored triple reachable through every index
// matching one of its terms, and nothing else) holds after every mutation,
// not just eventually. Readers take a shared lock and never observe a
// half-applied mutation.
//
// # Persistence
//
// Persist and Restore serialize the store through an opaque Persister
// collaborator (see the storage package for the NATS KV implementation).
// Persistence is best-effort: a failed save is reported to the caller and
// leaves in-memory state untouched.
package graph
