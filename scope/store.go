package scope

import (
	"github.com/hupe1980/sessionscope/core"
	"github.com/hupe1980/sessionscope/logging"
)

// Options configures a Store.
type Options struct {
	// Logger receives destruction callback failures and snapshot filtering
	// warnings (defaults to NoOp logger if nil).
	Logger logging.Logger
}

// Store keeps named scoped objects and their destruction callbacks for one
// session. It holds a non-owning reference to the session; callers guarantee
// the session outlives the store.
//
// Contract:
//   - All map mutations happen while the session lock is held.
//   - Object creation is idempotent under concurrent callers.
//   - Destroy runs every registered callback once with per-callback failure
//     isolation, then leaves both maps empty.
type Store struct {
	session   core.Session
	objects   map[string]any
	callbacks map[string]core.DestructionCallback
	logger    logging.Logger
}

// New creates an empty store bound to the given session.
func New(session core.Session, optFns ...func(o *Options)) *Store {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	return &Store{
		session:   session,
		objects:   make(map[string]any),
		callbacks: make(map[string]core.DestructionCallback),
		logger:    opts.Logger,
	}
}

// Get returns the object stored under name, creating it via factory when
// absent. "Absent" means no entry or a stored nil value: a factory returning
// nil has that nil cached, but the absence check treats it as missing, so a
// nil-producing factory is re-invoked on every subsequent Get for that name.
// That quirk is deliberate and pinned by tests; treat nil-producing
// factories as uncacheable.
//
// A factory error propagates unchanged to the caller, commits no entry, and
// still releases the lock.
func (s *Store) Get(name string, factory core.ObjectFactory) (any, error) {
	return execute(s.session, func() (any, error) {
		if v := s.objects[name]; v != nil {
			return v, nil
		}
		v, err := factory()
		if err != nil {
			return nil, err
		}
		s.objects[name] = v
		return v, nil
	})
}

// Remove deletes and returns the object stored under name; the second return
// reports whether an entry existed. Any destruction callback registered for
// name is dropped without being invoked: explicit removal transfers cleanup
// responsibility to the caller.
func (s *Store) Remove(name string) (any, bool) {
	r, _ := execute(s.session, func() (removal, error) {
		delete(s.callbacks, name)
		v, ok := s.objects[name]
		delete(s.objects, name)
		return removal{value: v, present: ok}, nil
	})
	return r.value, r.present
}

type removal struct {
	value   any
	present bool
}

// RegisterDestructionCallback associates cb with name, replacing any
// previously registered callback for that name.
func (s *Store) RegisterDestructionCallback(name string, cb core.DestructionCallback) {
	execute(s.session, func() (struct{}, error) {
		s.callbacks[name] = cb
		return struct{}{}, nil
	})
}

// Destroy runs every registered destruction callback once, in unspecified
// order, then clears both maps. A callback failure (returned error or panic)
// is logged and never aborts the remaining callbacks; Destroy itself never
// fails. Calling Destroy again on an already-destroyed store runs zero
// callbacks. Reuse after Destroy repopulates from empty maps and is
// discouraged.
func (s *Store) Destroy() {
	execute(s.session, func() (struct{}, error) {
		for name, cb := range s.callbacks {
			s.runCallback(name, cb)
		}
		s.callbacks = make(map[string]core.DestructionCallback)
		s.objects = make(map[string]any)
		return struct{}{}, nil
	})
}

func (s *Store) runCallback(name string, cb core.DestructionCallback) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("destruction callback panicked", "name", name, "panic", r)
		}
	}()
	if err := cb.Run(); err != nil {
		s.logger.Error("destruction callback failed", "name", name, "error", err)
	}
}

// Session returns the session this store is bound to. No locking required.
func (s *Store) Session() core.Session { return s.session }

// execute runs fn while the session lock is held. When the calling flow
// already holds the lock fn runs inline, avoiding a double acquisition;
// otherwise the lock is acquired and released on every exit path, including
// panics out of fn.
func execute[T any](session core.Session, fn func() (T, error)) (T, error) {
	if session.HasLock() {
		return fn()
	}
	session.Lock()
	defer session.Unlock()
	return fn()
}
