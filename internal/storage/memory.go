package storage

import (
	"context"
	"sync"
)

// MemStore keeps documents in memory. State is lost on process exit;
// intended for tests and ephemeral runs.
type MemStore struct {
	mu   sync.Mutex
	docs map[string][]byte
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{docs: make(map[string][]byte)}
}

// Read returns the document stored under key, or ErrNotFound.
func (ms *MemStore) Read(ctx context.Context, key string) ([]byte, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	data, ok := ms.docs[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Write replaces the document stored under key.
func (ms *MemStore) Write(ctx context.Context, key string, value []byte) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	data := make([]byte, len(value))
	copy(data, value)
	ms.docs[key] = data
	return nil
}

// Delete removes the document under key.
func (ms *MemStore) Delete(ctx context.Context, key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	delete(ms.docs, key)
	return nil
}
