package jsonstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tada/internal/store"
)

func TestGetMissingFileIsNotFound(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "todos.json"))
	require.NoError(t, err)

	_, err = s.Get(context.Background(), "todos")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPutThenGet(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "todos.json")
	s, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, s.Put(ctx, "todos", []byte(`[{"id":1,"text":"a","completed":false}]`)))
	require.NoError(t, s.Put(ctx, "other", []byte("x")))
	require.NoError(t, s.Put(ctx, "todos", []byte(`[]`)))

	got, err := s.Get(ctx, "todos")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))

	got, err = s.Get(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, "x", string(got))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should be renamed away")
}

func TestValuesSurviveReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "todos.json")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, "todos", []byte("not json at all")))
	require.NoError(t, s.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	got, err := s2.Get(ctx, "todos")
	require.NoError(t, err)
	assert.Equal(t, "not json at all", string(got))
}

func TestCorruptFileIsReadErrorAndOverwrittenOnPut(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "todos.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	s, err := Open(path)
	require.NoError(t, err)

	_, err = s.Get(ctx, "todos")
	require.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.Put(ctx, "todos", []byte("[]")))
	got, err := s.Get(ctx, "todos")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))
}

func TestCancelledContext(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "todos.json"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Put(ctx, "todos", []byte("[]")), context.Canceled)
	_, err = s.Get(ctx, "todos")
	assert.ErrorIs(t, err, context.Canceled)
}
