package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Persister is the opaque blob-store collaborator the graph persists
// through. Implementations own the storage medium; the store does not know
// or care what backs it.
//
// Load returns (nil, nil) when no snapshot exists yet.
type Persister interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// snapshotVersion is bumped when the snapshot layout changes. There is no
// migration support; an unknown version fails Restore.
const snapshotVersion = 1

type snapshot struct {
	Version int       `json:"version"`
	SavedAt time.Time `json:"saved_at"`
	Triples []*Triple `json:"triples"`
}

// Persist serializes the store and hands the blob to the persister.
// Best-effort: a failure is reported and leaves in-memory state untouched.
func (s *Store) Persist(ctx context.Context, p Persister) error {
	s.mu.RLock()
	snap := snapshot{
		Version: snapshotVersion,
		SavedAt: time.Now().UTC(),
		Triples: s.triples,
	}
	data, err := json.Marshal(snap)
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := p.Save(ctx, data); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Restore replaces the store contents with the persisted snapshot, rebuilding
// all indices. A missing snapshot is not an error; the store is left empty.
// On any failure the previous in-memory state is kept.
func (s *Store) Restore(ctx context.Context, p Persister) error {
	data, err := p.Load(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("unmarshal snapshot: %w", err)
	}
	if snap.Version != snapshotVersion {
		return fmt.Errorf("unsupported snapshot version %d", snap.Version)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
	for _, t := range snap.Triples {
		t.Metadata.Confidence = ClampConfidence(t.Metadata.Confidence)
		s.insertLocked(t)
	}
	return nil
}
