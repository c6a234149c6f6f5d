// Package scan enumerates candidate directories for fuzzy ranking.
//
// A scan walks one or more search roots to a bounded depth and returns every
// directory found as a candidate. Multiple roots are walked concurrently;
// output order is deterministic (root order, then lexical walk order) so
// identical inputs always rank identically downstream.
package scan

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"
)

// Entry is one candidate directory.
type Entry struct {
	Path string `json:"path"` // absolute path, what navigation consumes
	Name string `json:"name"` // final path segment, the default haystack
	Rel  string `json:"rel"`  // root-relative, forward slashes
}

// Options controls a scan. The zero value scans nothing; callers normally
// build Options from config plus CLI overrides.
type Options struct {
	Roots            []string
	MaxDepth         int // levels below each root; 0 means unbounded
	Hidden           bool
	FollowSymlinks   bool
	Exclude          []string // doublestar globs against the root-relative path
	RespectGitignore bool
}

// Scan walks every root and returns the merged candidate list. Roots are
// walked concurrently; the first error cancels the remaining walks. A root
// that does not exist is an error rather than a silent empty result.
func Scan(ctx context.Context, opts Options) ([]Entry, error) {
	results := make([][]Entry, len(opts.Roots))

	g, ctx := errgroup.WithContext(ctx)
	for i, root := range opts.Roots {
		i, root := i, root
		g.Go(func() error {
			entries, err := scanRoot(ctx, root, opts)
			if err != nil {
				return err
			}
			results[i] = entries
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Entry
	for _, r := range results {
		all = append(all, r...)
	}
	return all, nil
}

func scanRoot(ctx context.Context, root string, opts Options) ([]Entry, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	var ignore *ignoreList
	if opts.RespectGitignore {
		// A missing .gitignore is fine; a malformed one degrades to
		// fewer patterns, never to a failed scan.
		ignore = loadIgnoreList(absRoot)
	}

	var entries []Entry
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped, not fatal: a single
			// permission-denied directory must not break navigation.
			if path == absRoot {
				return err
			}
			return fs.SkipDir
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		isDir := d.IsDir()
		if !isDir && opts.FollowSymlinks && d.Type()&fs.ModeSymlink != 0 {
			// Symlinked directories become candidates but are not
			// descended into, so cycles cannot occur.
			if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
				isDir = true
			}
		}
		if !isDir {
			return nil
		}
		if path == absRoot {
			return nil
		}

		rel, relErr := filepath.Rel(absRoot, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if !opts.Hidden && strings.HasPrefix(d.Name(), ".") {
			return skipDir(d)
		}
		if opts.MaxDepth > 0 && strings.Count(rel, "/")+1 > opts.MaxDepth {
			return skipDir(d)
		}
		if excluded(rel, opts.Exclude) {
			return skipDir(d)
		}
		if ignore != nil && ignore.Ignored(rel) {
			return skipDir(d)
		}

		entries = append(entries, Entry{Path: path, Name: d.Name(), Rel: rel})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// skipDir prunes a directory subtree; symlinked candidates are not walked
// into, so returning SkipDir for them would abort the parent instead.
func skipDir(d fs.DirEntry) error {
	if d.IsDir() {
		return fs.SkipDir
	}
	return nil
}

func excluded(rel string, patterns []string) bool {
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, rel); err == nil && ok {
			return true
		}
	}
	return false
}
