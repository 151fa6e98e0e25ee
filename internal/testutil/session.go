package testutil

// FakeSession is a scriptable session collaborator that records lock
// traffic. It is deliberately single-flow (no goroutine tracking): Held
// flips on Lock/Unlock and can be preset to simulate a caller that already
// holds the lock. Concurrency tests should use session.InMemory instead.
type FakeSession struct {
	SessionID   string
	Held        bool
	LockCalls   int
	UnlockCalls int
}

// NewFakeSession creates a fake with the given ID ("fake" when empty).
func NewFakeSession(id string) *FakeSession {
	if id == "" {
		id = "fake"
	}
	return &FakeSession{SessionID: id}
}

// ID returns the scripted session identifier.
func (s *FakeSession) ID() string { return s.SessionID }

// HasLock reports the scripted lock state.
func (s *FakeSession) HasLock() bool { return s.Held }

// Lock records the acquisition and marks the lock held.
func (s *FakeSession) Lock() {
	s.LockCalls++
	s.Held = true
}

// Unlock records the release and marks the lock free.
func (s *FakeSession) Unlock() {
	s.UnlockCalls++
	s.Held = false
}
