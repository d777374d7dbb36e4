package graph_test

import (
	"context"
	"errors"
	"testing"

	"github.com/c360studio/semstore/graph"
	"github.com/c360studio/semstore/vocabulary"
)

type fakePersister struct {
	data    []byte
	loadErr error
	saveErr error
}

func (f *fakePersister) Load(ctx context.Context) ([]byte, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.data, nil
}

func (f *fakePersister) Save(ctx context.Context, data []byte) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.data = data
	return nil
}

func TestPersistRestoreRoundtrip(t *testing.T) {
	s := graph.NewStore()
	addFact(s, "doc-1", vocabulary.PredHasName, "notes")
	addFact(s, "doc-1", vocabulary.PredHasCategory, "Tech")
	addFact(s, "doc-2", vocabulary.PredMentionsKeyword, "python")

	p := &fakePersister{}
	if err := s.Persist(context.Background(), p); err != nil {
		t.Fatalf("Persist failed: %v", err)
	}

	restored := graph.NewStore()
	if err := restored.Restore(context.Background(), p); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	if restored.Len() != s.Len() {
		t.Fatalf("restored %d triples, want %d", restored.Len(), s.Len())
	}
	if err := restored.CheckConsistency(); err != nil {
		t.Errorf("restored indices inconsistent: %v", err)
	}
	if got := len(restored.Query(graph.Pattern{Subject: "doc-1"})); got != 2 {
		t.Errorf("doc-1 triples after restore = %d, want 2", got)
	}

	orig := s.All()
	back := restored.All()
	for i := range orig {
		if orig[i].ID != back[i].ID || orig[i].Object.Value != back[i].Object.Value {
			t.Errorf("triple %d differs after roundtrip: %+v vs %+v", i, orig[i], back[i])
		}
	}
}

func TestRestoreMissingSnapshotLeavesStoreEmpty(t *testing.T) {
	s := graph.NewStore()
	if err := s.Restore(context.Background(), &fakePersister{}); err != nil {
		t.Fatalf("Restore of absent snapshot errored: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestRestoreFailureKeepsState(t *testing.T) {
	s := graph.NewStore()
	addFact(s, "doc-1", vocabulary.PredHasName, "keep me")

	if err := s.Restore(context.Background(), &fakePersister{loadErr: errors.New("bucket gone")}); err == nil {
		t.Fatal("expected load error")
	}
	if s.Len() != 1 {
		t.Errorf("Len after failed restore = %d, want 1", s.Len())
	}

	if err := s.Restore(context.Background(), &fakePersister{data: []byte("{not json")}); err == nil {
		t.Fatal("expected unmarshal error")
	}
	if s.Len() != 1 {
		t.Errorf("Len after corrupt restore = %d, want 1", s.Len())
	}
}

func TestPersistFailureKeepsState(t *testing.T) {
	s := graph.NewStore()
	addFact(s, "doc-1", vocabulary.PredHasName, "keep me")

	if err := s.Persist(context.Background(), &fakePersister{saveErr: errors.New("nats down")}); err == nil {
		t.Fatal("expected save error")
	}
	if s.Len() != 1 {
		t.Errorf("Len after failed persist = %d, want 1", s.Len())
	}
}

func TestRestoreClampsPersistedConfidence(t *testing.T) {
	s := graph.NewStore()
	addFact(s, "doc-1", vocabulary.PredHasName, "notes")

	p := &fakePersister{}
	if err := s.Persist(context.Background(), p); err != nil {
		t.Fatalf("Persist failed: %v", err)
	}

	// A hand-edited or older snapshot may carry out-of-range confidences.
	tampered := []byte(`{"version":1,"saved_at":"2026-01-01T00:00:00Z","triples":[` +
		`{"id":"x","subject":{"class":"system-reference","value":"doc-9"},` +
		`"predicate":{"class":"subject-reference","value":"hasName"},` +
		`"object":{"class":"action-reference","value":"n"},` +
		`"metadata":{"source":"manual","confidence":4.5},` +
		`"created_at":"2026-01-01T00:00:00Z"}]}`)
	p.data = tampered

	restored := graph.NewStore()
	if err := restored.Restore(context.Background(), p); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	all := restored.All()
	if len(all) != 1 {
		t.Fatalf("restored %d triples, want 1", len(all))
	}
	if all[0].Metadata.Confidence != 1 {
		t.Errorf("confidence = %v, want clamped to 1", all[0].Metadata.Confidence)
	}
}
