package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/sessionscope/core"
)

// Interface compliance (compile-time assertion)
var _ core.Session = (*InMemory)(nil)

func TestInMemory_IDGeneration(t *testing.T) {
	a, b := New(), New()
	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())

	c := New(func(o *Options) { o.ID = "fixed" })
	assert.Equal(t, "fixed", c.ID())
}

func TestInMemory_ReentrantLock(t *testing.T) {
	s := New()
	assert.False(t, s.HasLock())

	s.Lock()
	assert.True(t, s.HasLock())

	// nested acquisition must not deadlock
	s.Lock()
	s.Unlock()
	assert.True(t, s.HasLock(), "inner unlock keeps the outer hold")

	s.Unlock()
	assert.False(t, s.HasLock())
}

func TestInMemory_HasLockIsPerGoroutine(t *testing.T) {
	s := New()
	s.Lock()
	defer s.Unlock()

	held := make(chan bool)
	go func() { held <- s.HasLock() }()
	assert.False(t, <-held, "another goroutine must not appear to hold the lock")
}

func TestInMemory_MutualExclusion(t *testing.T) {
	s := New()
	counter := 0

	g := new(errgroup.Group)
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			for j := 0; j < 200; j++ {
				s.Lock()
				counter++
				s.Unlock()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, 8*200, counter)
}

func TestInMemory_UnlockWithoutHoldPanics(t *testing.T) {
	s := New()
	assert.Panics(t, func() { s.Unlock() })
}
