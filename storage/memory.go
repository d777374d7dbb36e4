package storage

import (
	"context"
	"sync"

	"github.com/c360studio/semstore/graph"
)

// MemoryPersister keeps the snapshot blob in process memory. Used in tests
// and when running without a NATS server.
type MemoryPersister struct {
	mu   sync.Mutex
	data []byte
}

var _ graph.Persister = (*MemoryPersister)(nil)

// NewMemoryPersister creates an empty in-memory persister.
func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{}
}

// Load returns the stored blob, or (nil, nil) when nothing has been saved.
func (p *MemoryPersister) Load(ctx context.Context) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.data == nil {
		return nil, nil
	}
	out := make([]byte, len(p.data))
	copy(out, p.data)
	return out, nil
}

// Save replaces the stored blob.
func (p *MemoryPersister) Save(ctx context.Context, data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.data = make([]byte, len(data))
	copy(p.data, data)
	return nil
}
