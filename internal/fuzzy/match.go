package fuzzy

import (
	"unicode"
	"unicode/utf8"
)

// Match reports whether needle occurs as an in-order, case-insensitive
// subsequence of haystack. It is a greedy single pass over the haystack and
// is used by Rank to reject non-matches before the quadratic scorer runs.
//
// The empty needle matches everything. Haystacks longer than MaxHaystack
// runes never match.
func Match(needle, haystack string) bool {
	if utf8.RuneCountInString(haystack) > MaxHaystack {
		return false
	}
	if needle == "" {
		return true
	}

	nc, size := utf8.DecodeRuneInString(needle)
	nc = unicode.ToLower(nc)
	for _, hc := range haystack {
		if unicode.ToLower(hc) != nc {
			continue
		}
		needle = needle[size:]
		if needle == "" {
			return true
		}
		nc, size = utf8.DecodeRuneInString(needle)
		nc = unicode.ToLower(nc)
	}
	return false
}
