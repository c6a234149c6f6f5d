// Package suggest offers "did you mean" fallbacks for needles that match
// nothing.
//
// Subsequence matching cannot tolerate transposed or mistyped characters, so
// when the fuzzy engine drops every candidate the CLI asks this package for
// the nearest candidate by Jaro-Winkler similarity instead. The two matchers
// stay deliberately separate: subsequence ranking for navigation, edit-based
// similarity only for the error path.
package suggest

import (
	"github.com/hbollon/go-edlib"
)

// Nearest returns the candidate most similar to input, provided its
// Jaro-Winkler similarity reaches threshold. Pure function; candidates are
// scanned in order and the first of equally-similar candidates wins, so
// output is deterministic.
func Nearest(input string, candidates []string, threshold float64) (string, bool) {
	if input == "" {
		return "", false
	}

	best := ""
	bestScore := 0.0
	for _, c := range candidates {
		if c == "" {
			continue
		}
		score, err := edlib.StringsSimilarity(input, c, edlib.JaroWinkler)
		if err != nil {
			continue
		}
		if float64(score) > bestScore {
			bestScore = float64(score)
			best = c
		}
	}

	if bestScore < threshold {
		return "", false
	}
	return best, true
}
