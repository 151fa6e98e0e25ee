// Package afsstore persists scope snapshots through the viant/afs abstract
// file system. Storage is addressed by URL, so the same store works against
// a local directory (file://), an in-process file system for tests (mem://)
// or any cloud scheme an afs connector is registered for.
package afsstore

import (
	"bytes"
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"

	"github.com/hupe1980/sessionscope/core"
)

// Store is a durable core.SnapshotStore writing one object per session under
// a base URL.
type Store struct {
	fs      afs.Service
	baseURL string
}

// New creates a store rooted at baseURL, e.g. "file:///var/lib/app/scopes"
// or "mem://localhost/scopes".
func New(baseURL string) *Store {
	return &Store{fs: afs.New(), baseURL: baseURL}
}

// Save uploads the snapshot bytes for the session, overwriting any previous
// snapshot.
func (s *Store) Save(ctx context.Context, sessionID string, data []byte) error {
	URL := s.snapshotURL(sessionID)
	if err := s.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("upload snapshot %q: %w", URL, err)
	}
	return nil
}

// Load downloads the stored snapshot or returns core.ErrSnapshotNotFound.
func (s *Store) Load(ctx context.Context, sessionID string) ([]byte, error) {
	URL := s.snapshotURL(sessionID)
	ok, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("check snapshot %q: %w", URL, err)
	}
	if !ok {
		return nil, core.ErrSnapshotNotFound
	}
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("download snapshot %q: %w", URL, err)
	}
	return data, nil
}

// Delete removes the stored snapshot if present.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	URL := s.snapshotURL(sessionID)
	ok, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return fmt.Errorf("check snapshot %q: %w", URL, err)
	}
	if !ok {
		return nil
	}
	if err := s.fs.Delete(ctx, URL); err != nil {
		return fmt.Errorf("delete snapshot %q: %w", URL, err)
	}
	return nil
}

func (s *Store) snapshotURL(sessionID string) string {
	return url.Join(s.baseURL, sessionID+".gob")
}
