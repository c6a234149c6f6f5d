// Package bookmark stores named directory shortcuts.
//
// Bookmarks resolve before any scanning: a needle equal to a bookmark name
// (case-insensitive) jumps straight to the saved path. Names also join the
// candidate pool for fuzzy ranking, so partial needles still find them.
package bookmark

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Store is a bookmark file. Methods load and persist eagerly; the file is
// small and the CLI is short-lived, so there is no in-memory caching layer.
type Store struct {
	Path string
}

type file struct {
	Bookmarks map[string]string `toml:"bookmarks"`
}

// DefaultPath returns the per-user bookmark file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "hop", "bookmarks.toml"), nil
}

// All returns every bookmark, sorted by name. A missing file is an empty
// store, not an error.
func (s Store) All() (map[string]string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read bookmarks: %w", err)
	}

	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse bookmarks %s: %w", s.Path, err)
	}
	if f.Bookmarks == nil {
		f.Bookmarks = map[string]string{}
	}
	return f.Bookmarks, nil
}

// Names returns the bookmark names in sorted order.
func (s Store) Names() ([]string, error) {
	all, err := s.All()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Resolve looks a needle up as a bookmark name, case-insensitively.
func (s Store) Resolve(needle string) (string, bool, error) {
	all, err := s.All()
	if err != nil {
		return "", false, err
	}
	for name, path := range all {
		if strings.EqualFold(name, needle) {
			return path, true, nil
		}
	}
	return "", false, nil
}

// Set saves a bookmark, replacing any existing one with the same name.
func (s Store) Set(name, path string) error {
	if name == "" {
		return fmt.Errorf("bookmark name must not be empty")
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("bookmark path must be absolute, got %q", path)
	}

	all, err := s.All()
	if err != nil {
		return err
	}
	all[name] = path
	return s.write(all)
}

// Delete removes a bookmark. Deleting an unknown name is an error so typos
// surface instead of silently succeeding.
func (s Store) Delete(name string) error {
	all, err := s.All()
	if err != nil {
		return err
	}
	if _, ok := all[name]; !ok {
		return fmt.Errorf("no bookmark named %q", name)
	}
	delete(all, name)
	return s.write(all)
}

func (s Store) write(all map[string]string) error {
	data, err := toml.Marshal(file{Bookmarks: all})
	if err != nil {
		return fmt.Errorf("encode bookmarks: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("create bookmark dir: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("write bookmarks: %w", err)
	}
	return nil
}
