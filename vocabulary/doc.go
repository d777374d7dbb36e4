// Package vocabulary defines the closed-but-extensible predicate vocabulary
// for the semstore knowledge graph.
//
// # Entity Classes
//
// Every term in a triple carries an EntityClass tag describing its structural
// role:
//
//   - system-reference: the historical entity being described (a curated
//     document or file)
//   - subject-reference: the relational verb connecting the two entities
//   - action-reference: the target entity or literal value
//
// # Predicates
//
// Predicates are registered in a Registry instance together with the entity
// classes they accept on each side. Registration is idempotent; registering
// the same predicate again overwrites the previous entry (last writer wins,
// no versioning). The Registry is injected into callers that need validation
// rather than held in package-level state, so independent stores can carry
// independent vocabularies.
//
// # Validation
//
// Validate is a gate, never a wall: it reports whether a candidate triple
// conforms to the registered schema, and callers decide whether to enforce
// the verdict or store the triple anyway.
//
// # Usage
//
//	reg := vocabulary.NewRegistry()
//	vocabulary.RegisterDefaults(reg)
//
//	res := reg.Validate(vocabulary.ClassSystem, vocabulary.PredHasCategory, vocabulary.ClassAction)
//	if !res.Valid {
//	    // caller decides: reject, or store unvalidated
//	}
package vocabulary
