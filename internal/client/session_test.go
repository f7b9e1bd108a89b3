package client

import (
	"context"
	"dighack/internal/game"
	"dighack/internal/save"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResume(t *testing.T) {
	ctx := context.Background()
	store, err := save.NewFileStore(t.TempDir())
	require.NoError(t, err)

	fresh, resumed, err := Resume(ctx, store, "hero", game.DefaultParams(), 1)
	require.NoError(t, err)
	assert.False(t, resumed)
	require.NoError(t, save.SaveEngine(ctx, store, "hero", fresh))

	again, resumed, err := Resume(ctx, store, "hero", game.DefaultParams(), 2)
	require.NoError(t, err)
	assert.True(t, resumed)
	assert.Equal(t, fresh.ID(), again.ID())
}

func TestResumeCorruptSlot(t *testing.T) {
	ctx := context.Background()
	store, err := save.NewFileStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, "hero", []byte("junk")))

	_, _, err = Resume(ctx, store, "hero", game.DefaultParams(), 1)
	assert.ErrorIs(t, err, save.ErrCorrupt)
}

func TestResumeBadParams(t *testing.T) {
	store, err := save.NewFileStore(t.TempDir())
	require.NoError(t, err)
	params := game.DefaultParams()
	params.MapWidth = 0

	_, _, err = Resume(context.Background(), store, "hero", params, 1)
	assert.Error(t, err)
}
