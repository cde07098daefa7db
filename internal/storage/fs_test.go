package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSStore_SaveOpenRoundTrip(t *testing.T) {
	store, err := NewFSStore(t.TempDir(), nil)
	require.NoError(t, err)
	ctx := context.Background()

	path, err := store.Save(ctx, "report.TXT", strings.NewReader("some content"))
	require.NoError(t, err)
	assert.Equal(t, ".txt", filepath.Ext(path))

	rc, err := store.Open(ctx, path)
	require.NoError(t, err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "some content", string(body))
}

func TestFSStore_SaveNamesNeverCollide(t *testing.T) {
	store, err := NewFSStore(t.TempDir(), nil)
	require.NoError(t, err)
	ctx := context.Background()

	a, err := store.Save(ctx, "report.txt", strings.NewReader("a"))
	require.NoError(t, err)
	b, err := store.Save(ctx, "report.txt", strings.NewReader("b"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestFSStore_RemoveIsIdempotent(t *testing.T) {
	store, err := NewFSStore(t.TempDir(), nil)
	require.NoError(t, err)
	ctx := context.Background()

	path, err := store.Save(ctx, "report.txt", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(ctx, path))
	require.NoError(t, store.Remove(ctx, path))

	_, err = store.Open(ctx, path)
	require.Error(t, err)
}
