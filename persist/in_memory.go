package persist

import (
	"context"
	"sync"

	"github.com/hupe1980/sessionscope/core"
)

// InMemoryStore is a volatile core.SnapshotStore keeping encoded snapshots
// in a process-local map guarded by an RWMutex. Bytes are copied on save and
// load to avoid accidental external mutation of internal buffers. Best
// suited for tests and single-process prototypes; data does not survive a
// restart.
type InMemoryStore struct {
	mu        sync.RWMutex
	snapshots map[string][]byte // sessionID -> encoded snapshot
}

// NewInMemoryStore returns an empty in-memory snapshot store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{snapshots: make(map[string][]byte)}
}

// Save stores (or overwrites) the snapshot bytes for the session. The input
// slice is copied before storage.
func (s *InMemoryStore) Save(_ context.Context, sessionID string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	s.snapshots[sessionID] = cp
	return nil
}

// Load returns a copy of the stored snapshot bytes or ErrSnapshotNotFound.
func (s *InMemoryStore) Load(_ context.Context, sessionID string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.snapshots[sessionID]
	if !ok {
		return nil, core.ErrSnapshotNotFound
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

// Delete removes the stored snapshot if present.
func (s *InMemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snapshots, sessionID)
	return nil
}
