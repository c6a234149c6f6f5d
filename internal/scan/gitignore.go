package scan

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ignoreList holds the directory-relevant patterns of a root's .gitignore.
// Only directory pruning is supported: hop never looks at files, so
// file-only subtleties of the gitignore format are out of scope. Patterns
// apply in order; a later negation re-includes an earlier match.
type ignoreList struct {
	patterns []ignorePattern
}

type ignorePattern struct {
	glob   string
	negate bool
}

// loadIgnoreList reads root/.gitignore. A missing or unreadable file yields
// an empty list.
func loadIgnoreList(root string) *ignoreList {
	il := &ignoreList{}

	f, err := os.Open(filepath.Join(root, ".gitignore"))
	if err != nil {
		return il
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		negate := false
		if strings.HasPrefix(line, "!") {
			negate = true
			line = line[1:]
		}
		// Trailing slash marks a directory pattern; we only match
		// directories anyway.
		line = strings.TrimSuffix(line, "/")

		anchored := strings.HasPrefix(line, "/") || strings.Contains(line, "/")
		line = strings.TrimPrefix(line, "/")
		if line == "" {
			continue
		}
		if !anchored {
			// Unanchored patterns match at any depth.
			line = "**/" + line
		}

		il.patterns = append(il.patterns, ignorePattern{glob: line, negate: negate})
	}

	return il
}

// Ignored reports whether the root-relative directory path rel is excluded.
// The last matching pattern wins.
func (il *ignoreList) Ignored(rel string) bool {
	ignored := false
	for _, p := range il.patterns {
		ok, err := doublestar.Match(p.glob, rel)
		if err != nil || !ok {
			continue
		}
		ignored = !p.negate
	}
	return ignored
}
