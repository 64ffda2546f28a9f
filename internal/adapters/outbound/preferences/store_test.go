package preferences_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/fixspot/internal/adapters/outbound/preferences"
	"github.com/abdidvp/fixspot/internal/domain"
)

func TestFileStore_SetAndGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.json")
	store := preferences.New(path)

	err := store.Set("Example.com", domain.RepoPreference{Owner: "acme", Repo: "site"})
	require.NoError(t, err)

	pref, ok, err := store.Get("example.com")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "acme/site", pref.FullName())

	_, err = os.Stat(path)
	assert.NoError(t, err, "directories should be created on save")
}

func TestFileStore_GetMissingFile(t *testing.T) {
	store := preferences.New(filepath.Join(t.TempDir(), "none.json"))

	_, ok, err := store.Get("example.com")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStore_LastWriterWins(t *testing.T) {
	store := preferences.New(filepath.Join(t.TempDir(), "prefs.json"))
	require.NoError(t, store.Set("example.com", domain.RepoPreference{Owner: "a", Repo: "one"}))
	require.NoError(t, store.Set("example.com", domain.RepoPreference{Owner: "b", Repo: "two"}))
	require.NoError(t, store.Set("other.org", domain.RepoPreference{Owner: "c", Repo: "three"}))

	pref, ok, err := store.Get("example.com")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.RepoPreference{Owner: "b", Repo: "two"}, pref)

	all, err := store.List()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestFileStore_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	store := preferences.New(path)

	_, ok, err := store.Get("example.com")
	assert.Error(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set("example.com", domain.RepoPreference{Owner: "acme", Repo: "site"}))
	pref, ok, err := store.Get("example.com")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "acme", pref.Owner)
}

func TestFileStore_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	_, ok, err := preferences.New(path).Get("example.com")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStore_DefaultPath(t *testing.T) {
	store := preferences.New("")
	assert.Contains(t, store.Path(), filepath.Join(".fixspot", "preferences.json"))
}

func TestMemory(t *testing.T) {
	m := preferences.NewMemory()
	_, ok, err := m.Get("example.com")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set("EXAMPLE.com", domain.RepoPreference{Owner: "acme", Repo: "site"}))
	pref, ok, err := m.Get("example.com")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "site", pref.Repo)

	all, err := m.List()
	require.NoError(t, err)
	assert.Equal(t, map[string]domain.RepoPreference{"example.com": pref}, all)
}
