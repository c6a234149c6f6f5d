package scan

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Cache persists scan results between invocations so repeated interactive
// queries skip the directory walk. Entries are keyed by a hash of the full
// scan configuration: any change to roots or filtering options misses the
// cache rather than serving stale candidates.
//
// The cache is best-effort throughout: corrupt, unreadable, or expired files
// behave like a miss, and write failures are reported but safe to ignore.
type Cache struct {
	Dir string
	TTL time.Duration
}

// DefaultCacheDir returns the per-user cache directory for scan results.
func DefaultCacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "hop"), nil
}

// Load returns the cached candidate list for opts, if present and fresh.
func (c Cache) Load(opts Options) ([]Entry, bool) {
	if c.Dir == "" {
		return nil, false
	}
	path := c.path(opts)

	info, err := os.Stat(path)
	if err != nil {
		return nil, false
	}
	if c.TTL <= 0 || time.Since(info.ModTime()) > c.TTL {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, false
	}
	return entries, true
}

// Store writes the candidate list for opts.
func (c Cache) Store(opts Options, entries []Entry) error {
	if c.Dir == "" {
		return nil
	}
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode scan cache: %w", err)
	}

	// Write-then-rename keeps concurrent readers off half-written files.
	path := c.path(opts)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write scan cache: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("commit scan cache: %w", err)
	}
	return nil
}

func (c Cache) path(opts Options) string {
	return filepath.Join(c.Dir, fmt.Sprintf("scan-%016x.json", cacheKey(opts)))
}

// cacheKey hashes every option that affects scan output.
func cacheKey(opts Options) uint64 {
	h := xxhash.New()
	for _, r := range opts.Roots {
		_, _ = h.WriteString(r)
		_, _ = h.WriteString("\x00")
	}
	_, _ = h.WriteString("\x01")
	for _, e := range opts.Exclude {
		_, _ = h.WriteString(e)
		_, _ = h.WriteString("\x00")
	}
	_, _ = h.WriteString(strconv.Itoa(opts.MaxDepth))
	_, _ = h.WriteString(strconv.FormatBool(opts.Hidden))
	_, _ = h.WriteString(strconv.FormatBool(opts.FollowSymlinks))
	_, _ = h.WriteString(strconv.FormatBool(opts.RespectGitignore))
	return h.Sum64()
}
