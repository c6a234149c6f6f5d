// Package jump glues candidate enumeration to the fuzzy engine: it ranks
// scan entries and maps the ranked haystacks back onto the directories they
// came from.
package jump

import (
	"github.com/standardbeagle/hop/internal/fuzzy"
	"github.com/standardbeagle/hop/internal/scan"
)

// Result is one ranked candidate directory.
type Result struct {
	Entry scan.Entry
	Score float64
}

// Rank orders entries by fuzzy match quality against needle, best first.
// The haystack is each entry's final path segment, or its root-relative
// path when fullPath is set. Entries whose haystack does not match are
// dropped. An empty needle returns every entry in scan order, score 0.
func Rank(needle string, entries []scan.Entry, fullPath bool) []Result {
	haystacks := make([]string, len(entries))
	for i, e := range entries {
		haystacks[i] = haystack(e, fullPath)
	}

	choices := fuzzy.Rank(needle, haystacks)

	// Map ranked strings back to entries. Duplicate haystacks (same
	// directory name under different parents) score identically and keep
	// their input order, so consuming per-value queues front-first
	// reproduces the right entry for each choice.
	byValue := make(map[string][]int, len(entries))
	for i, h := range haystacks {
		byValue[h] = append(byValue[h], i)
	}

	results := make([]Result, len(choices))
	for i, c := range choices {
		queue := byValue[c.Value]
		idx := queue[0]
		byValue[c.Value] = queue[1:]
		results[i] = Result{Entry: entries[idx], Score: c.Score}
	}
	return results
}

func haystack(e scan.Entry, fullPath bool) string {
	if fullPath {
		return e.Rel
	}
	return e.Name
}
