package sqlitestore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, dir string) *Store {
	t.Helper()
	s, err := Open(context.Background(), dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore(t *testing.T) {
	ctx := context.Background()

	t.Run("get missing", func(t *testing.T) {
		s := newTestStore(t, t.TempDir())

		_, ok, err := s.Get(ctx, "todos")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("set and overwrite", func(t *testing.T) {
		s := newTestStore(t, t.TempDir())

		require.NoError(t, s.Set(ctx, "todos", "[]"))
		require.NoError(t, s.Set(ctx, "todos", `[{"id":"x"}]`))

		v, ok, err := s.Get(ctx, "todos")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `[{"id":"x"}]`, v)
	})

	t.Run("survives reopen", func(t *testing.T) {
		dir := t.TempDir()
		s, err := Open(ctx, dir)
		require.NoError(t, err)
		require.NoError(t, s.Set(ctx, "todos", "[42]"))
		require.NoError(t, s.Close())

		s2 := newTestStore(t, dir)
		v, ok, err := s2.Get(ctx, "todos")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "[42]", v)
	})
}
