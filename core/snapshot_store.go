package core

import (
	"context"
	"errors"
)

// ErrSnapshotNotFound is returned when no snapshot exists for the given
// session in the underlying store.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotStore persists serialized scope snapshots keyed by session ID.
// Implementations may be in-memory or durable; data is an opaque encoded
// snapshot produced by the scope package.
type SnapshotStore interface {
	// Save stores (or overwrites) the snapshot bytes for the session.
	Save(ctx context.Context, sessionID string, data []byte) error

	// Load returns the stored snapshot bytes or ErrSnapshotNotFound.
	Load(ctx context.Context, sessionID string) ([]byte, error)

	// Delete removes the stored snapshot if present. Deleting a missing
	// snapshot is not an error.
	Delete(ctx context.Context, sessionID string) error
}
