package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRoundTrip(t *testing.T) {
	t.Parallel()

	kv, err := NewFile(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, "cart:items", []byte(`[{"productId":1}]`)))

	got, err := kv.Get(ctx, "cart:items")
	require.NoError(t, err)
	assert.Equal(t, `[{"productId":1}]`, string(got))
}

func TestFileAbsentKey(t *testing.T) {
	t.Parallel()

	kv, err := NewFile(t.TempDir())
	require.NoError(t, err)

	_, err = kv.Get(context.Background(), "variant:color")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestFileOverwrite(t *testing.T) {
	t.Parallel()

	kv, err := NewFile(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, "variant:color", []byte("White")))
	require.NoError(t, kv.Set(ctx, "variant:color", []byte("Black")))

	got, err := kv.Get(ctx, "variant:color")
	require.NoError(t, err)
	assert.Equal(t, "Black", string(got))
}

func TestFileDeleteIsIdempotent(t *testing.T) {
	t.Parallel()

	kv, err := NewFile(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, "variant:size", []byte("M")))
	require.NoError(t, kv.Delete(ctx, "variant:size"))
	require.NoError(t, kv.Delete(ctx, "variant:size"))

	_, err = kv.Get(ctx, "variant:size")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestFileLeavesNoTempFilesBehind(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	kv, err := NewFile(dir)
	require.NoError(t, err)

	require.NoError(t, kv.Set(context.Background(), "cart:items", []byte("[]")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".json", filepath.Ext(entries[0].Name()))
}
