package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreAndLookup(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	key := Key("(defun add_one (x) (+ x 1))")

	_, err = store.Lookup(key)
	assert.ErrorIs(t, err, ErrMiss, "expected a cache miss before anything is stored")

	require.NoError(t, store.Store(key, "fn add_one(x: i64) -> i64 { x + 1 }"))

	got, err := store.Lookup(key)
	require.NoError(t, err)
	assert.Equal(t, "fn add_one(x: i64) -> i64 { x + 1 }", got)
}

func TestStoreOverwritesExistingKey(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	key := Key("source")
	require.NoError(t, store.Store(key, "first"))
	require.NoError(t, store.Store(key, "second"))

	got, err := store.Lookup(key)
	require.NoError(t, err)
	assert.Equal(t, "second", got)
}

func TestStatsCountsEntries(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Store(Key("a"), "a-out"))
	require.NoError(t, store.Store(Key("b"), "b-out"))

	stats, err := store.Stats()
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.Entries)
}

func TestClearRemovesEverything(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Store(Key("a"), "a-out"))
	require.NoError(t, store.Clear())

	stats, err := store.Stats()
	require.NoError(t, err)
	assert.EqualValues(t, 0, stats.Entries)
}

func TestKeyIsStableAndContentAddressed(t *testing.T) {
	assert.Equal(t, Key("same"), Key("same"))
	assert.NotEqual(t, Key("a"), Key("b"))
}
