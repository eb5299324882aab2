package disk

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *Store {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestNewStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	store, err := NewStore(dir)

	require.NoError(t, err)
	assert.Equal(t, dir, store.Dir())
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestStore_SaveAndExists(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	err := store.Save(ctx, "cover.png", strings.NewReader("image bytes"))
	require.NoError(t, err)

	exists, err := store.Exists(ctx, "cover.png")
	require.NoError(t, err)
	assert.True(t, exists)

	data, err := os.ReadFile(filepath.Join(store.Dir(), "cover.png"))
	require.NoError(t, err)
	assert.Equal(t, "image bytes", string(data))
}

func TestStore_SaveOverwrites(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "cover.png", strings.NewReader("first")))
	require.NoError(t, store.Save(ctx, "cover.png", strings.NewReader("second")))

	data, err := os.ReadFile(filepath.Join(store.Dir(), "cover.png"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestStore_Delete(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "cover.png", strings.NewReader("image bytes")))
	require.NoError(t, store.Delete(ctx, "cover.png"))

	exists, err := store.Exists(ctx, "cover.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStore_DeleteMissingIsNoError(t *testing.T) {
	store := setupStore(t)

	err := store.Delete(context.Background(), "never-saved.png")

	assert.NoError(t, err)
}

func TestStore_ExistsMissing(t *testing.T) {
	store := setupStore(t)

	exists, err := store.Exists(context.Background(), "never-saved.png")

	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStore_RefConfinedToDirectory(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	// Path components in the reference are stripped, never traversed.
	err := store.Save(ctx, "../escape.png", strings.NewReader("image bytes"))
	require.NoError(t, err)

	exists, err := store.Exists(ctx, "escape.png")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = os.Stat(filepath.Join(store.Dir(), "..", "escape.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestStore_CancelledContext(t *testing.T) {
	store := setupStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, store.Save(ctx, "cover.png", strings.NewReader("x")))
	assert.Error(t, store.Delete(ctx, "cover.png"))
	_, err := store.Exists(ctx, "cover.png")
	assert.Error(t, err)
}
