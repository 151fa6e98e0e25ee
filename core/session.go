package core

// Session is the external unit of affinity a scoped store is bound to. The
// store does not own the session; it only consumes its identity and its
// mutual-exclusion lock.
//
// Contract:
//   - HasLock reports whether the current logical caller already holds the
//     session lock. It must be safe to call without holding the lock.
//   - Lock blocks until the session lock is granted; no timeout policy is
//     defined at this layer.
//   - Lock and Unlock must be paired. Unlock must be safe to call from a
//     deferred release path even after a panic inside the locked section.
//
// Misusing the lock (unlocking without holding it) is a programming error;
// implementations may panic but must not corrupt their own state.
type Session interface {
	// ID returns the stable identity of the session, used to key per-session
	// stores and persisted snapshots.
	ID() string

	// HasLock reports whether the calling flow already holds the lock.
	HasLock() bool

	// Lock acquires the session-wide exclusion lock.
	Lock()

	// Unlock releases the session-wide exclusion lock.
	Unlock()
}

// ObjectFactory lazily produces a scoped object. It is invoked at most once
// per creation attempt; a returned error aborts the creation and propagates
// unchanged to the caller.
type ObjectFactory func() (any, error)
