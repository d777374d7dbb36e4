// Package storage provides graph snapshot persistence for semstore using
// NATS KV, plus an in-memory persister for tests and NATS-less runs.
package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/c360studio/semstore/graph"
)

// BucketGraph is the KV bucket holding graph snapshots.
const BucketGraph = "SEMSTORE_GRAPH"

// KeySnapshot is the single well-known key the whole graph snapshot lives
// under. There is no schema migration; the blob is opaque to this package.
const KeySnapshot = "graph"

// KVPersister stores the graph snapshot blob in a NATS JetStream KV bucket.
type KVPersister struct {
	kv jetstream.KeyValue
}

var _ graph.Persister = (*KVPersister)(nil)

// NewKVPersister creates a persister backed by the graph bucket, creating
// the bucket if it doesn't exist.
func NewKVPersister(ctx context.Context, js jetstream.JetStream) (*KVPersister, error) {
	kv, err := getOrCreateBucket(ctx, js, BucketGraph)
	if err != nil {
		return nil, fmt.Errorf("create graph bucket: %w", err)
	}
	return &KVPersister{kv: kv}, nil
}

func getOrCreateBucket(ctx context.Context, js jetstream.JetStream, name string) (jetstream.KeyValue, error) {
	kv, err := js.KeyValue(ctx, name)
	if err == nil {
		return kv, nil
	}
	// Bucket doesn't exist, create it
	return js.CreateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:      name,
		Description: fmt.Sprintf("Semstore %s storage", strings.ToLower(name)),
		History:     5, // Keep last 5 revisions
	})
}

// Load returns the current snapshot blob, or (nil, nil) when none has been
// saved yet.
func (p *KVPersister) Load(ctx context.Context) ([]byte, error) {
	entry, err := p.kv.Get(ctx, KeySnapshot)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	return entry.Value(), nil
}

// Save overwrites the snapshot blob.
func (p *KVPersister) Save(ctx context.Context, data []byte) error {
	if _, err := p.kv.Put(ctx, KeySnapshot, data); err != nil {
		return fmt.Errorf("put snapshot: %w", err)
	}
	return nil
}

func isNotFound(err error) bool {
	return err != nil && strings.Contains(err.Error(), "key not found")
}
