package graph

import (
	"time"

	"github.com/c360studio/semstore/vocabulary"
)

// SourceManual marks triples entered by a human curator. Confidence 1.0 is
// reserved for this source; heuristic strategies stay below it.
const SourceManual = "manual"

// Term is one slot of a triple: a typed value.
type Term struct {
	// Class tags the structural role of the value.
	Class vocabulary.EntityClass `json:"class"`

	// Value is the free-form payload: a document ID, predicate name, or
	// literal.
	Value string `json:"value"`
}

// Subject builds a subject term (system-reference).
func Subject(value string) Term {
	return Term{Class: vocabulary.ClassSystem, Value: value}
}

// Predicate builds a predicate term (subject-reference).
func Predicate(value string) Term {
	return Term{Class: vocabulary.ClassSubject, Value: value}
}

// Object builds an object term (action-reference).
func Object(value string) Term {
	return Term{Class: vocabulary.ClassAction, Value: value}
}

// Metadata carries the provenance of a triple.
type Metadata struct {
	// Source names the extraction strategy that produced the triple, or
	// SourceManual for human-entered facts.
	Source string `json:"source"`

	// Confidence is the reliability estimate in [0,1]. Values are clamped
	// at insertion, never discarded.
	Confidence float64 `json:"confidence"`

	// Extra holds strategy-specific fields (occurrence counts, upstream
	// entity types).
	Extra map[string]any `json:"extra,omitempty"`
}

// Triple is a subject-predicate-object fact with provenance. Immutable after
// creation.
type Triple struct {
	// ID is unique, generated at insertion.
	ID string `json:"id"`

	Subject   Term `json:"subject"`
	Predicate Term `json:"predicate"`
	Object    Term `json:"object"`

	Metadata Metadata `json:"metadata"`

	// CreatedAt is the insertion timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// ClampConfidence forces a confidence value into [0,1].
func ClampConfidence(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
