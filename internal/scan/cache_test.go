package scan

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheRoundTrip(t *testing.T) {
	c := Cache{Dir: t.TempDir(), TTL: time.Minute}
	opts := Options{Roots: []string{"/some/root"}, MaxDepth: 3}
	entries := []Entry{
		{Path: "/some/root/alpha", Name: "alpha", Rel: "alpha"},
		{Path: "/some/root/alpha/beta", Name: "beta", Rel: "alpha/beta"},
	}

	require.NoError(t, c.Store(opts, entries))

	got, ok := c.Load(opts)
	require.True(t, ok)
	assert.Equal(t, entries, got)
}

func TestCacheMissOnDifferentOptions(t *testing.T) {
	c := Cache{Dir: t.TempDir(), TTL: time.Minute}
	opts := Options{Roots: []string{"/some/root"}, MaxDepth: 3}
	require.NoError(t, c.Store(opts, []Entry{{Path: "/x", Name: "x", Rel: "x"}}))

	changed := opts
	changed.Hidden = true
	_, ok := c.Load(changed)
	assert.False(t, ok, "any option change must miss the cache")

	changed = opts
	changed.Roots = []string{"/other/root"}
	_, ok = c.Load(changed)
	assert.False(t, ok)
}

func TestCacheExpires(t *testing.T) {
	c := Cache{Dir: t.TempDir(), TTL: time.Minute}
	opts := Options{Roots: []string{"/some/root"}}
	require.NoError(t, c.Store(opts, []Entry{{Path: "/x", Name: "x", Rel: "x"}}))

	// Age the file past the TTL instead of sleeping.
	old := time.Now().Add(-2 * time.Minute)
	require.NoError(t, os.Chtimes(c.path(opts), old, old))

	_, ok := c.Load(opts)
	assert.False(t, ok)
}

func TestCacheCorruptFileIsAMiss(t *testing.T) {
	c := Cache{Dir: t.TempDir(), TTL: time.Minute}
	opts := Options{Roots: []string{"/some/root"}}
	require.NoError(t, os.WriteFile(c.path(opts), []byte("not json"), 0o644))

	_, ok := c.Load(opts)
	assert.False(t, ok)
}

func TestCacheDisabledWhenDirEmpty(t *testing.T) {
	var c Cache
	opts := Options{Roots: []string{"/some/root"}}

	require.NoError(t, c.Store(opts, []Entry{{Path: "/x"}}))
	_, ok := c.Load(opts)
	assert.False(t, ok)
}

func TestDefaultCacheDir(t *testing.T) {
	dir, err := DefaultCacheDir()
	require.NoError(t, err)
	assert.Equal(t, "hop", filepath.Base(dir))
}
