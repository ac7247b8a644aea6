package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nested", "searches.yaml"))

	searches, err := store.List()
	require.NoError(t, err)
	require.Empty(t, searches)

	first, err := store.Save("climate policy", "gemini", "pdf")
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)
	require.False(t, first.Timestamp.IsZero())

	second, err := store.Save("rate limiter", "grok", "github")
	require.NoError(t, err)

	searches, err = store.List()
	require.NoError(t, err)
	require.Len(t, searches, 2)
	require.Equal(t, second.ID, searches[0].ID)
	require.Equal(t, first.ID, searches[1].ID)

	got, err := store.Get(first.ID)
	require.NoError(t, err)
	require.Equal(t, "climate policy", got.Query)
	require.Equal(t, "gemini", got.Model)
	require.Equal(t, "pdf", got.Filter)

	require.NoError(t, store.Delete(first.ID))

	searches, err = store.List()
	require.NoError(t, err)
	require.Len(t, searches, 1)
	require.Equal(t, second.ID, searches[0].ID)

	_, err = store.Get(first.ID)
	require.Error(t, err)
}

func TestStoreGetPrefix(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "searches.yaml"))

	saved, err := store.Save("climate policy", "openai", "all")
	require.NoError(t, err)

	got, err := store.Get(saved.ID[:8])
	require.NoError(t, err)
	require.Equal(t, saved.ID, got.ID)

	_, err = store.Get("")
	require.Error(t, err)
}
