package kv

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, ok, err := m.GetItem(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.SetItem(ctx, "k", "v1"))
	got, ok, err := m.GetItem(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v1", got)

	require.NoError(t, m.SetItem(ctx, "k", "v2"))
	got, _, _ = m.GetItem(ctx, "k")
	assert.Equal(t, "v2", got)

	require.NoError(t, m.RemoveItem(ctx, "k"))
	_, ok, err = m.GetItem(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	// Removing an absent key is not an error.
	require.NoError(t, m.RemoveItem(ctx, "missing"))
}

func TestSQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)

	_, ok, err := s.GetItem(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SetItem(ctx, "k", "v1"))
	require.NoError(t, s.SetItem(ctx, "k", "v2"))

	got, ok, err := s.GetItem(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", got)

	require.NoError(t, s.RemoveItem(ctx, "k"))
	_, ok, _ = s.GetItem(ctx, "k")
	assert.False(t, ok)
	require.NoError(t, s.RemoveItem(ctx, "missing"))

	require.NoError(t, s.Close())
}

func TestSQLite_Persistence(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.SetItem(ctx, "k", "survives"))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	got, ok, err := s.GetItem(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "survives", got)
}

func TestSQLite_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "cache.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.SetItem(context.Background(), "k", "v"))
}

func TestSQLite_Introspection(t *testing.T) {
	ctx := context.Background()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.SetItem(ctx, "a", "1"))
	require.NoError(t, s.SetItem(ctx, "b", "2"))

	state, ok := s.State().(SQLiteState)
	require.True(t, ok)
	assert.Equal(t, 2, state.Keys)
	assert.Equal(t, "sqlite-storage", s.ComponentType())
}
