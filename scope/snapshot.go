package scope

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"

	"github.com/hupe1980/sessionscope/core"
)

// Snapshot is the persistable state of a Store: the owning session's
// identity plus the subsets of objects and destruction callbacks that passed
// the encodability filter.
type Snapshot struct {
	SessionID string
	Objects   map[string]any
	Callbacks map[string]core.DestructionCallback
}

// Snapshot produces a persistable snapshot of the store under the session
// lock. Persistability is an encoding/gob capability check: entries whose
// values cannot be gob-encoded (closures, channels, unregistered concrete
// types inside the interface slot) are omitted with a logged warning naming
// the key. Filtering is lossy but never fails.
func (s *Store) Snapshot() *Snapshot {
	snap, _ := execute(s.session, func() (*Snapshot, error) {
		objects, dropped := filterEncodable(s.objects)
		for _, name := range dropped {
			s.logger.Warn("scoped object is not persistable, omitted from snapshot",
				"name", name, "value_type", fmt.Sprintf("%T", s.objects[name]))
		}
		callbacks, dropped := filterEncodable(s.callbacks)
		for _, name := range dropped {
			s.logger.Warn("destruction callback is not persistable, omitted from snapshot",
				"name", name, "callback_type", fmt.Sprintf("%T", s.callbacks[name]))
		}
		return &Snapshot{SessionID: s.session.ID(), Objects: objects, Callbacks: callbacks}, nil
	})
	return snap
}

// Restore builds a store for session from a previously produced snapshot. A
// nil snapshot yields an empty store, the same state as first construction.
func Restore(session core.Session, snap *Snapshot, optFns ...func(o *Options)) *Store {
	store := New(session, optFns...)
	if snap == nil {
		return store
	}
	for name, v := range snap.Objects {
		store.objects[name] = v
	}
	for name, cb := range snap.Callbacks {
		store.callbacks[name] = cb
	}
	return store
}

// snapshotWire is Snapshot without its methods. The gob codec prefers a
// value's own BinaryMarshaler/BinaryUnmarshaler over reflection, so encoding
// a *Snapshot directly would re-enter MarshalBinary; the alias strips the
// method set and forces plain struct encoding.
type snapshotWire Snapshot

// MarshalBinary encodes the snapshot with encoding/gob. Concrete object and
// callback types crossing the interface boundary must be registered with
// gob.Register by the host.
func (s *Snapshot) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode((*snapshotWire)(s)); err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a snapshot produced by MarshalBinary.
func (s *Snapshot) UnmarshalBinary(data []byte) error {
	var wire snapshotWire
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&wire); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	*s = Snapshot(wire)
	return nil
}

// filterEncodable returns the subset of m whose values gob-encode, plus the
// keys that were dropped. Logging is left to the caller so the filter stays
// a pure function.
func filterEncodable[V any](m map[string]V) (map[string]V, []string) {
	kept := make(map[string]V, len(m))
	var dropped []string
	for k, v := range m {
		if encodable(v) {
			kept[k] = v
		} else {
			dropped = append(dropped, k)
		}
	}
	return kept, dropped
}

// encodable probes a single value with a throwaway encoder.
func encodable[V any](v V) bool {
	return gob.NewEncoder(io.Discard).Encode(&v) == nil
}
