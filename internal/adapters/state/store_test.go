package state_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/packship/packship/internal/adapters/state"
	"github.com/packship/packship/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_LoadMissingFile(t *testing.T) {
	store := state.NewStore(filepath.Join(t.TempDir(), "versions.json"))

	versions, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, versions)
}

func TestStore_LoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "versions.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	versions, err := state.NewStore(path).Load()
	require.NoError(t, err)
	assert.Empty(t, versions)
}

func TestStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "versions.json")
	store := state.NewStore(path)

	m := domain.VersionMap{
		"acme-widget": {Version: 3, ContentHash: "abc"},
		"other":       {Version: 1, ContentHash: "def"},
	}
	require.NoError(t, store.Save(m))

	// A fresh store instance sees the persisted state.
	got, err := state.NewStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestStore_SaveCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".packship", "versions.json")
	store := state.NewStore(path)

	require.NoError(t, store.Save(domain.VersionMap{"pkg": {Version: 1, ContentHash: "h"}}))

	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestStore_SaveDeterministic(t *testing.T) {
	dir := t.TempDir()
	m := domain.VersionMap{
		"zeta":  {Version: 2, ContentHash: "z"},
		"alpha": {Version: 5, ContentHash: "a"},
		"mid":   {Version: 1, ContentHash: "m"},
	}

	pathA := filepath.Join(dir, "a.json")
	pathB := filepath.Join(dir, "b.json")
	require.NoError(t, state.NewStore(pathA).Save(m))
	require.NoError(t, state.NewStore(pathB).Save(m.Clone()))

	a, err := os.ReadFile(pathA)
	require.NoError(t, err)
	b, err := os.ReadFile(pathB)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestStore_SaveReplacesPriorState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "versions.json")
	store := state.NewStore(path)

	require.NoError(t, store.Save(domain.VersionMap{
		"keep": {Version: 1, ContentHash: "k"},
		"drop": {Version: 4, ContentHash: "d"},
	}))
	require.NoError(t, store.Save(domain.VersionMap{
		"keep": {Version: 2, ContentHash: "k2"},
	}))

	got, err := store.Load()
	require.NoError(t, err)
	assert.NotContains(t, got, "drop")
	assert.Equal(t, 2, got["keep"].Version)
}

func TestStore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "versions.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"pkg": {"version": `), 0o600))

	_, err := state.NewStore(path).Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrStateCorrupt))
}

func TestProvider_Open(t *testing.T) {
	path := filepath.Join(t.TempDir(), "versions.json")
	store := state.Provider{}.Open(path)

	versions, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, versions)
}
