package afsstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/sessionscope/core"
)

// Interface compliance (compile-time assertion)
var _ core.SnapshotStore = (*Store)(nil)

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := New("mem://localhost/afsstore-roundtrip")

	require.NoError(t, store.Save(ctx, "s-1", []byte("snapshot")))

	data, err := store.Load(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("snapshot"), data)

	// overwriting replaces the previous snapshot
	require.NoError(t, store.Save(ctx, "s-1", []byte("updated")))
	data, err = store.Load(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("updated"), data)
}

func TestStore_LoadMissing(t *testing.T) {
	store := New("mem://localhost/afsstore-missing")
	_, err := store.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, core.ErrSnapshotNotFound)
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := New("mem://localhost/afsstore-delete")

	require.NoError(t, store.Save(ctx, "s-1", []byte("snap")))
	require.NoError(t, store.Delete(ctx, "s-1"))

	_, err := store.Load(ctx, "s-1")
	assert.ErrorIs(t, err, core.ErrSnapshotNotFound)

	// deleting a missing snapshot is not an error
	assert.NoError(t, store.Delete(ctx, "s-1"))
}
