package storage

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobStoreSave(t *testing.T) {
	store, err := NewBlobStore(t.TempDir(), slog.Default())
	require.NoError(t, err)

	ws := uuid.New()
	rel, size, err := store.Save(ws, "statement.pdf", strings.NewReader("pdf bytes"))
	require.NoError(t, err)
	assert.Equal(t, int64(len("pdf bytes")), size)

	parts := strings.Split(filepath.ToSlash(rel), "/")
	require.Len(t, parts, 3)
	assert.Equal(t, ws.String(), parts[0])
	assert.Equal(t, time.Now().UTC().Format("20060102"), parts[1])
	assert.True(t, strings.HasSuffix(parts[2], "_statement.pdf"))

	data, err := os.ReadFile(store.Abs(rel))
	require.NoError(t, err)
	assert.Equal(t, "pdf bytes", string(data))
}

func TestBlobStoreSaveDistinctPaths(t *testing.T) {
	store, err := NewBlobStore(t.TempDir(), slog.Default())
	require.NoError(t, err)

	ws := uuid.New()
	a, _, err := store.Save(ws, "same.pdf", strings.NewReader("one"))
	require.NoError(t, err)
	b, _, err := store.Save(ws, "same.pdf", strings.NewReader("two"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestBlobStoreRemove(t *testing.T) {
	store, err := NewBlobStore(t.TempDir(), slog.Default())
	require.NoError(t, err)

	rel, _, err := store.Save(uuid.New(), "gone.pdf", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(rel))
	_, err = os.Stat(store.Abs(rel))
	assert.True(t, os.IsNotExist(err))

	// removing again is not an error
	assert.NoError(t, store.Remove(rel))
}

func TestBlobStoreRequiresRoot(t *testing.T) {
	_, err := NewBlobStore("", slog.Default())
	assert.Error(t, err)
}
