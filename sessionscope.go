// Package sessionscope provides a high-level façade over the scoped object
// store: a Manager retrieves-or-creates one scope.Store per session, tears
// it down when the host signals session end, and can suspend live stores to
// a snapshot store and resume them later. Most host frameworks interact with
// this package by:
//  1. Creating a Manager via New() (optionally overriding the logger and
//     the snapshot store)
//  2. Calling StoreFor(session) from their scope-resolution callback
//  3. Calling DestroySession(session) from their session-destruction listener
//
// All defaults are safe for local development and testing; production
// deployments typically supply a durable snapshot store (persist/afsstore)
// and a structured logger.
package sessionscope

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hupe1980/sessionscope/config"
	"github.com/hupe1980/sessionscope/core"
	"github.com/hupe1980/sessionscope/logging"
	"github.com/hupe1980/sessionscope/persist"
	"github.com/hupe1980/sessionscope/persist/afsstore"
	"github.com/hupe1980/sessionscope/scope"
)

// Options configures the Manager.
type Options struct {
	// SnapshotStore persists suspended scopes (defaults to in-memory).
	SnapshotStore core.SnapshotStore
	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Manager owns the live scope.Store instances of a host, one per session.
// Store retrieval is idempotent under concurrent callers; per-store
// operations remain serialized by the session's own lock.
type Manager struct {
	opts   Options
	mu     sync.Mutex
	stores map[string]*scope.Store // sessionID -> live store
}

// New creates a Manager with optional overrides. Any unset service is
// initialized with an in-memory implementation.
func New(optFns ...func(o *Options)) *Manager {
	opts := Options{
		SnapshotStore: persist.NewInMemoryStore(),
		Logger:        logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Manager{opts: opts, stores: make(map[string]*scope.Store)}
}

// NewFromConfig creates a Manager wired according to cfg.
func NewFromConfig(cfg *config.Config) *Manager {
	return New(func(o *Options) {
		if cfg.SnapshotURL != "" {
			o.SnapshotStore = afsstore.New(cfg.SnapshotURL)
		}
		if cfg.LogLevel != "" || cfg.LogFormat != "" {
			o.Logger = logging.New(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat, nil)
		}
	})
}

// StoreFor returns the live store bound to sess, creating an empty one on
// first use.
func (m *Manager) StoreFor(sess core.Session) *scope.Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	if st, ok := m.stores[sess.ID()]; ok {
		return st
	}
	st := scope.New(sess, func(o *scope.Options) { o.Logger = m.opts.Logger })
	m.stores[sess.ID()] = st
	return st
}

// DestroySession destroys the store bound to sess, running its destruction
// callbacks, and forgets it. Sessions without a live store are a no-op.
//
// The store is destroyed outside the manager mutex: Destroy takes the
// session lock, and holding both would order them against each other.
func (m *Manager) DestroySession(sess core.Session) {
	m.mu.Lock()
	st, ok := m.stores[sess.ID()]
	delete(m.stores, sess.ID())
	m.mu.Unlock()
	if ok {
		st.Destroy()
	}
}

// Suspend snapshots the live store for sess, persists the snapshot, and
// forgets the live instance. The store is claimed and forgotten in a single
// critical section, so a concurrent StoreFor never hands out a store whose
// snapshot is being taken; callers racing Suspend get a fresh store instead
// and their entries land there, not in the persisted snapshot. On a marshal
// or save failure the claimed store is reinstated and stays live.
//
// Non-persistable entries are dropped from the snapshot with a logged
// warning; their destruction callbacks do not run.
func (m *Manager) Suspend(ctx context.Context, sess core.Session) error {
	m.mu.Lock()
	st, ok := m.stores[sess.ID()]
	delete(m.stores, sess.ID())
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("no live store for session %q", sess.ID())
	}

	err := func() error {
		data, err := st.Snapshot().MarshalBinary()
		if err != nil {
			return fmt.Errorf("marshal snapshot for session %q: %w", sess.ID(), err)
		}
		if err := m.opts.SnapshotStore.Save(ctx, sess.ID(), data); err != nil {
			return fmt.Errorf("save snapshot for session %q: %w", sess.ID(), err)
		}
		return nil
	}()
	if err != nil {
		m.mu.Lock()
		m.stores[sess.ID()] = st
		m.mu.Unlock()
		return err
	}
	return nil
}

// Resume restores the store for sess from its persisted snapshot and makes
// it the live store. A missing snapshot resumes an empty store, the same
// state as first construction.
func (m *Manager) Resume(ctx context.Context, sess core.Session) (*scope.Store, error) {
	data, err := m.opts.SnapshotStore.Load(ctx, sess.ID())
	if err != nil {
		if errors.Is(err, core.ErrSnapshotNotFound) {
			return m.StoreFor(sess), nil
		}
		return nil, fmt.Errorf("load snapshot for session %q: %w", sess.ID(), err)
	}
	var snap scope.Snapshot
	if err := snap.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("restore snapshot for session %q: %w", sess.ID(), err)
	}
	st := scope.Restore(sess, &snap, func(o *scope.Options) { o.Logger = m.opts.Logger })
	m.mu.Lock()
	m.stores[sess.ID()] = st
	m.mu.Unlock()
	return st, nil
}
