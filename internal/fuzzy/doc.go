// Package fuzzy implements subsequence matching and ranking for candidate
// strings, typically filesystem path segments.
//
// A needle matches a haystack when its characters appear in the haystack in
// order, not necessarily contiguously, compared case-insensitively. Matching
// candidates are scored by a dynamic-programming alignment in the fzy/fzf
// family: matches landing after separators, at word starts, or at camelCase
// transitions earn positional bonuses, consecutive matches earn a flat bonus
// that dominates any positional one, and skipped characters are penalized as
// leading, inner, or trailing gaps.
//
// # Entry points
//
// Rank is the primary contract: it filters a candidate list with the cheap
// existence check, scores the survivors, and returns them best first.
// Match, Score, and Positions are exposed for direct single-candidate use:
//
//	fuzzy.Match("maf", "main-app-frontend")     // true
//	fuzzy.Score("maf", "main-app-frontend")     // finite, comparable
//	fuzzy.Positions("maf", "main-app-frontend") // haystack index per needle rune
//
// "No match" is always a sentinel return (ScoreMin, nil positions, false),
// never an error. Candidates longer than MaxHaystack runes never match; the
// cap bounds worst-case per-call cost for interactive callers.
//
// Every function is a pure function of its inputs. Nothing in the package
// holds shared mutable state, so concurrent use from multiple goroutines
// needs no locking.
package fuzzy
