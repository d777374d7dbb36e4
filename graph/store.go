package graph

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/c360studio/semstore/vocabulary"
)

// Pattern is a partial match against triple term values. Empty fields are
// wildcards; matching is exact-value equality, not substring or fuzzy.
type Pattern struct {
	Subject   string `json:"subject,omitempty"`
	Predicate string `json:"predicate,omitempty"`
	Object    string `json:"object,omitempty"`
}

// IsEmpty reports whether every field of the pattern is a wildcard.
func (p Pattern) IsEmpty() bool {
	return p.Subject == "" && p.Predicate == "" && p.Object == ""
}

// Related partitions the triples touching an entity by its structural role.
type Related struct {
	// AsSubject holds triples where the entity is the subject.
	AsSubject []*Triple `json:"as_subject"`

	// AsObject holds triples where the entity is the object of a
	// non-mention predicate.
	AsObject []*Triple `json:"as_object"`

	// MentionedIn holds mention and theme triples where the entity is the
	// object, i.e. the documents that reference it in content.
	MentionedIn []*Triple `json:"mentioned_in"`
}

// Statistics is a read-only snapshot of the store, computed on demand.
type Statistics struct {
	// TotalCount is the number of stored triples.
	TotalCount int `json:"total_count"`

	// CountsByPredicate maps predicate value to triple count.
	CountsByPredicate map[string]int `json:"counts_by_predicate"`

	// EstimatedMemoryBytes is a rough footprint estimate.
	EstimatedMemoryBytes int64 `json:"estimated_memory_bytes"`
}

// Store is the authoritative in-memory triple store. All mutations are
// serialized under one mutex; reads take a shared lock and never observe a
// half-applied index update.
type Store struct {
	mu          sync.RWMutex
	triples     []*Triple
	bySubject   map[string][]*Triple
	byPredicate map[string][]*Triple
	byObject    map[string][]*Triple
}

// NewStore creates an empty triple store.
func NewStore() *Store {
	s := &Store{}
	s.reset()
	return s
}

// reset reinitializes primary storage and all indices. Callers must hold the
// write lock (or have exclusive access during construction).
func (s *Store) reset() {
	s.triples = nil
	s.bySubject = make(map[string][]*Triple)
	s.byPredicate = make(map[string][]*Triple)
	s.byObject = make(map[string][]*Triple)
}

// Add inserts a new triple and updates all indices atomically. It always
// succeeds; schema validation is the caller's choice. Confidence is clamped
// to [0,1].
func (s *Store) Add(subject, predicate, object Term, meta Metadata) *Triple {
	meta.Confidence = ClampConfidence(meta.Confidence)

	t := &Triple{
		ID:        uuid.New().String(),
		Subject:   subject,
		Predicate: predicate,
		Object:    object,
		Metadata:  meta,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.insertLocked(t)
	return t
}

// insertLocked appends a triple to primary storage and every index bucket.
// Callers must hold the write lock.
func (s *Store) insertLocked(t *Triple) {
	s.triples = append(s.triples, t)
	s.bySubject[t.Subject.Value] = append(s.bySubject[t.Subject.Value], t)
	s.byPredicate[t.Predicate.Value] = append(s.byPredicate[t.Predicate.Value], t)
	s.byObject[t.Object.Value] = append(s.byObject[t.Object.Value], t)
}

// Query returns the triples matching the pattern in insertion order. An
// empty pattern returns the whole store; callers should avoid that on large
// stores.
func (s *Store) Query(p Pattern) []*Triple {
	s.mu.RLock()
	defer s.mu.RUnlock()

	candidates := s.candidatesLocked(p)
	out := make([]*Triple, 0, len(candidates))
	for _, t := range candidates {
		if matches(t, p) {
			out = append(out, t)
		}
	}
	return out
}

// candidatesLocked picks the narrowest index bucket for the pattern.
func (s *Store) candidatesLocked(p Pattern) []*Triple {
	best := s.triples
	if p.Subject != "" {
		best = s.bySubject[p.Subject]
	}
	if p.Predicate != "" {
		if bucket := s.byPredicate[p.Predicate]; len(bucket) < len(best) || best == nil {
			best = bucket
		}
	}
	if p.Object != "" {
		if bucket := s.byObject[p.Object]; len(bucket) < len(best) || best == nil {
			best = bucket
		}
	}
	return best
}

func matches(t *Triple, p Pattern) bool {
	if p.Subject != "" && t.Subject.Value != p.Subject {
		return false
	}
	if p.Predicate != "" && t.Predicate.Value != p.Predicate {
		return false
	}
	if p.Object != "" && t.Object.Value != p.Object {
		return false
	}
	return true
}

// RelatedTo partitions the triples touching an entity by its structural
// role. Mention and theme predicates are split out so callers can tell
// "documents that reference this value in content" apart from direct object
// links.
func (s *Store) RelatedTo(entityID string) Related {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rel Related
	rel.AsSubject = append(rel.AsSubject, s.bySubject[entityID]...)
	for _, t := range s.byObject[entityID] {
		switch t.Predicate.Value {
		case vocabulary.PredMentionsKeyword, vocabulary.PredConvergenceTheme:
			rel.MentionedIn = append(rel.MentionedIn, t)
		default:
			rel.AsObject = append(rel.AsObject, t)
		}
	}
	return rel
}

// All returns a copy of the primary storage slice in insertion order.
func (s *Store) All() []*Triple {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Triple, len(s.triples))
	copy(out, s.triples)
	return out
}

// Len returns the number of stored triples.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.triples)
}

// Clear removes all triples and indices. Idempotent.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

// Statistics computes a snapshot of the store. Never cached; staleness is
// not possible.
func (s *Store) Statistics() Statistics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Statistics{
		TotalCount:        len(s.triples),
		CountsByPredicate: make(map[string]int, len(s.byPredicate)),
	}
	for pred, bucket := range s.byPredicate {
		stats.CountsByPredicate[pred] = len(bucket)
	}
	for _, t := range s.triples {
		stats.EstimatedMemoryBytes += estimateTripleBytes(t)
	}
	return stats
}

// estimateTripleBytes approximates the in-memory footprint of one triple.
func estimateTripleBytes(t *Triple) int64 {
	n := len(t.ID) + len(t.Subject.Value) + len(t.Predicate.Value) + len(t.Object.Value) +
		len(t.Subject.Class) + len(t.Predicate.Class) + len(t.Object.Class) +
		len(t.Metadata.Source)
	for k, v := range t.Metadata.Extra {
		n += len(k)
		if s, ok := v.(string); ok {
			n += len(s)
		} else {
			n += 8
		}
	}
	// Struct overhead plus the three index slice headers pointing at it.
	return int64(n) + 160
}

// CheckConsistency audits the index invariant: every triple in primary
// storage appears in exactly the buckets matching its terms, and every
// indexed triple exists in primary storage. A non-nil result wraps
// ErrCorrupted and signals a bug.
func (s *Store) CheckConsistency() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	primary := make(map[string]*Triple, len(s.triples))
	for _, t := range s.triples {
		primary[t.ID] = t
	}

	indexed := 0
	for _, index := range []map[string][]*Triple{s.bySubject, s.byPredicate, s.byObject} {
		for _, bucket := range index {
			for _, t := range bucket {
				if _, ok := primary[t.ID]; !ok {
					return fmt.Errorf("%w: triple %s indexed but not stored", ErrCorrupted, t.ID)
				}
				indexed++
			}
		}
	}
	if indexed != len(s.triples)*3 {
		return fmt.Errorf("%w: %d index entries for %d triples", ErrCorrupted, indexed, len(s.triples))
	}
	return nil
}
