package session

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// InMemory is a process-local core.Session implementation with a reentrant,
// ownership-tracked exclusion lock.
//
// Contract:
//   - HasLock is true only on the goroutine currently holding the lock.
//   - Lock by the holding goroutine nests instead of deadlocking; each nested
//     Lock must be paired with an Unlock.
//   - Unlock by a goroutine that does not hold the lock panics. That is lock
//     misuse, a programming error, not a recoverable condition.
//
// Ownership is keyed by goroutine identity, so a locked section must not be
// continued on a different goroutine.
type InMemory struct {
	id     string
	mu     sync.Mutex
	holder atomic.Uint64 // goroutine id of the current holder, 0 when free
	depth  int           // reentrancy depth, mutated only by the holder
}

// Options configures an InMemory session.
type Options struct {
	// ID overrides the generated session identifier.
	ID string
}

// New creates a session with a generated UUID identifier unless overridden.
func New(optFns ...func(o *Options)) *InMemory {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.ID == "" {
		opts.ID = uuid.NewString()
	}
	return &InMemory{id: opts.ID}
}

// ID returns the session identifier.
func (s *InMemory) ID() string { return s.id }

// HasLock reports whether the calling goroutine holds the session lock.
func (s *InMemory) HasLock() bool {
	return s.holder.Load() == gid()
}

// Lock acquires the session lock, blocking until granted.
func (s *InMemory) Lock() {
	id := gid()
	if s.holder.Load() == id {
		s.depth++
		return
	}
	s.mu.Lock()
	s.holder.Store(id)
	s.depth = 1
}

// Unlock releases one level of the lock.
func (s *InMemory) Unlock() {
	if s.holder.Load() != gid() {
		panic("session: unlock of lock not held by calling goroutine")
	}
	s.depth--
	if s.depth == 0 {
		s.holder.Store(0)
		s.mu.Unlock()
	}
}

// gid extracts the current goroutine id from a stack snapshot. The header
// line has the fixed shape "goroutine N [running]:".
func gid() uint64 {
	buf := make([]byte, 64)
	n := runtime.Stack(buf, false)
	fields := bytes.Fields(buf[:n])
	if len(fields) < 2 {
		return 0
	}
	id, err := strconv.ParseUint(string(fields[1]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
