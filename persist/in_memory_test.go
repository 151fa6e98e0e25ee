package persist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/sessionscope/core"
)

// Interface compliance (compile-time assertion)
var _ core.SnapshotStore = (*InMemoryStore)(nil)

func TestInMemoryStore_SaveLoadIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	data := []byte("snapshot")
	require.NoError(t, store.Save(ctx, "s-1", data))

	// mutate the input slice
	data[0] = 'S'

	out, err := store.Load(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("snapshot"), out)

	// mutate the returned slice
	out[0] = 'x'
	out2, err := store.Load(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("snapshot"), out2)
}

func TestInMemoryStore_LoadMissing(t *testing.T) {
	store := NewInMemoryStore()
	_, err := store.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, core.ErrSnapshotNotFound)
}

func TestInMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	require.NoError(t, store.Save(ctx, "s-1", []byte("snap")))
	require.NoError(t, store.Delete(ctx, "s-1"))

	_, err := store.Load(ctx, "s-1")
	assert.ErrorIs(t, err, core.ErrSnapshotNotFound)

	// deleting a missing snapshot is not an error
	assert.NoError(t, store.Delete(ctx, "s-1"))
}
