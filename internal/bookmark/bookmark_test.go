package bookmark

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) Store {
	t.Helper()
	return Store{Path: filepath.Join(t.TempDir(), "bookmarks.toml")}
}

func TestStoreMissingFileIsEmpty(t *testing.T) {
	s := testStore(t)

	all, err := s.All()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestStoreSetAndResolve(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Set("work", "/srv/projects/work"))
	require.NoError(t, s.Set("docs", "/srv/docs"))

	path, ok, err := s.Resolve("work")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "/srv/projects/work", path)

	// Names resolve case-insensitively, matching the engine's folding.
	path, ok, err = s.Resolve("WORK")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "/srv/projects/work", path)

	_, ok, err = s.Resolve("nope")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreSetOverwrites(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Set("work", "/old"))
	require.NoError(t, s.Set("work", "/new"))

	all, err := s.All()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"work": "/new"}, all)
}

func TestStoreSetValidates(t *testing.T) {
	s := testStore(t)
	assert.Error(t, s.Set("", "/somewhere"))
	assert.Error(t, s.Set("work", "relative/path"))
}

func TestStoreDelete(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Set("work", "/srv/work"))

	require.NoError(t, s.Delete("work"))
	all, err := s.All()
	require.NoError(t, err)
	assert.Empty(t, all)

	assert.Error(t, s.Delete("work"), "deleting an unknown name must fail")
}

func TestStoreNamesSorted(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Set("zeta", "/z"))
	require.NoError(t, s.Set("alpha", "/a"))
	require.NoError(t, s.Set("mid", "/m"))

	names, err := s.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, names)
}

func TestStoreCorruptFile(t *testing.T) {
	s := testStore(t)
	require.NoError(t, os.WriteFile(s.Path, []byte("not [valid toml"), 0o644))

	_, err := s.All()
	assert.Error(t, err)
}
