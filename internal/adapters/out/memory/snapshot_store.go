package memory

import (
	"context"
	"slices"
	"sync"
)

// SnapshotStore is an in-process key-value store used when no database is
// configured. Its contents do not survive a restart.
type SnapshotStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewSnapshotStore creates an empty store.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{docs: make(map[string][]byte)}
}

// Load returns a copy of the document stored under name, or nil.
func (s *SnapshotStore) Load(_ context.Context, name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.docs[name]), nil
}

// Save stores a copy of data under name.
func (s *SnapshotStore) Save(_ context.Context, name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[name] = slices.Clone(data)
	return nil
}
