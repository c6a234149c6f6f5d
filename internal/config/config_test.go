package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NotEmpty(t, cfg.Search.Roots)
	assert.Equal(t, 4, cfg.Search.MaxDepth)
	assert.True(t, cfg.Search.RespectGitignore)
	assert.Equal(t, "fzf", cfg.Picker.Command)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.kdl"))
	assert.Error(t, err)
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
search {
    root "/srv/projects"
    root "/srv/work"
    max_depth 2
    hidden true
    follow_symlinks true
    exclude "**/node_modules" "**/target"
    respect_gitignore false
    cache_ttl_sec 60
}
picker {
    command "sk"
    args "--no-sort" "--reverse"
}
suggest {
    enabled false
    threshold 0.9
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"/srv/projects", "/srv/work"}, cfg.Search.Roots)
	assert.Equal(t, 2, cfg.Search.MaxDepth)
	assert.True(t, cfg.Search.Hidden)
	assert.True(t, cfg.Search.FollowSymlinks)
	assert.Equal(t, []string{"**/node_modules", "**/target"}, cfg.Search.Exclude)
	assert.False(t, cfg.Search.RespectGitignore)
	assert.Equal(t, 60, cfg.Search.CacheTTLSec)
	assert.Equal(t, "sk", cfg.Picker.Command)
	assert.Equal(t, []string{"--no-sort", "--reverse"}, cfg.Picker.Args)
	assert.False(t, cfg.Suggest.Enabled)
	assert.InDelta(t, 0.9, cfg.Suggest.Threshold, 1e-9)
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
search {
    root "/srv/projects"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"/srv/projects"}, cfg.Search.Roots)
	assert.Equal(t, Default().Search.MaxDepth, cfg.Search.MaxDepth)
	assert.Equal(t, Default().Picker.Command, cfg.Picker.Command)
	assert.Equal(t, Default().Search.Exclude, cfg.Search.Exclude)
}

func TestLoadUnknownNodesIgnored(t *testing.T) {
	path := writeConfig(t, `
future_section {
    whatever 42
}
search {
    root "/srv/projects"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"/srv/projects"}, cfg.Search.Roots)
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, `search { root "unterminated`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsInvalidThreshold(t *testing.T) {
	path := writeConfig(t, `
suggest {
    threshold 1.5
}
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "src"), ExpandHome("~/src"))
	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, "/abs/path", ExpandHome("/abs/path"))
	assert.Equal(t, "rel/~path", ExpandHome("rel/~path"))
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.kdl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
