package vocabulary

import (
	"fmt"
	"sort"
	"sync"
)

// Cardinality hints at how many objects a predicate is expected to relate to
// a single subject. It is advisory metadata, not enforced by Validate.
type Cardinality string

const (
	// CardinalityOne suggests a single object per subject.
	CardinalityOne Cardinality = "one"

	// CardinalityMany suggests multiple objects per subject.
	CardinalityMany Cardinality = "many"
)

// Entry holds the registered schema for one predicate.
type Entry struct {
	// Name is the predicate name.
	Name string

	// SubjectClasses are the entity classes allowed on the subject side.
	SubjectClasses []EntityClass

	// ObjectClasses are the entity classes allowed on the object side.
	ObjectClasses []EntityClass

	// Cardinality is an optional hint (one, many).
	Cardinality Cardinality

	// Description is a human-readable description of the predicate.
	Description string

	// IRI is the RDF-equivalent IRI used by export projections.
	IRI string
}

// Option is a functional option for predicate registration.
type Option func(*Entry)

// WithDescription sets the human-readable description of the predicate.
func WithDescription(desc string) Option {
	return func(e *Entry) {
		e.Description = desc
	}
}

// WithCardinality sets the cardinality hint.
func WithCardinality(c Cardinality) Option {
	return func(e *Entry) {
		e.Cardinality = c
	}
}

// WithIRI sets the RDF-equivalent IRI for export compatibility.
func WithIRI(iri string) Option {
	return func(e *Entry) {
		e.IRI = iri
	}
}

// Result is the outcome of validating a candidate triple.
type Result struct {
	// Valid reports whether the triple conforms to the registered schema.
	Valid bool

	// Reason explains the failure when Valid is false.
	Reason string
}

// Registry holds the predicate vocabulary for one store. It is safe for
// concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewRegistry creates an empty predicate registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]Entry),
	}
}

// Register registers a predicate with the entity classes it accepts.
// Re-registering an existing predicate overwrites it (last writer wins).
func (r *Registry) Register(name string, subjectClasses, objectClasses []EntityClass, opts ...Option) {
	entry := Entry{
		Name:           name,
		SubjectClasses: append([]EntityClass(nil), subjectClasses...),
		ObjectClasses:  append([]EntityClass(nil), objectClasses...),
	}
	for _, opt := range opts {
		opt(&entry)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[name] = entry
}

// Lookup retrieves the entry for a predicate. The returned entry is a copy.
func (r *Registry) Lookup(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	return entry, ok
}

// Names returns the sorted names of all registered predicates.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks a candidate triple against the registered schema for its
// predicate. Validation failure is a result, not an error: callers choose
// whether to enforce the verdict.
func (r *Registry) Validate(subjectClass EntityClass, predicate string, objectClass EntityClass) Result {
	r.mu.RLock()
	entry, ok := r.entries[predicate]
	r.mu.RUnlock()

	if !ok {
		return Result{Reason: fmt.Sprintf("predicate %q is not registered", predicate)}
	}
	if !containsClass(entry.SubjectClasses, subjectClass) {
		return Result{Reason: fmt.Sprintf("subject class %q not allowed for predicate %q", subjectClass, predicate)}
	}
	if !containsClass(entry.ObjectClasses, objectClass) {
		return Result{Reason: fmt.Sprintf("object class %q not allowed for predicate %q", objectClass, predicate)}
	}
	return Result{Valid: true}
}

func containsClass(classes []EntityClass, c EntityClass) bool {
	for _, candidate := range classes {
		if candidate == c {
			return true
		}
	}
	return false
}
