package fuzzy

import (
	"math"
	"unicode"
)

// MaxHaystack is the longest candidate, in runes, that can ever match.
// Longer candidates are treated as non-matching rather than as errors; the
// cap bounds the O(needle·haystack) cost of a single alignment.
const MaxHaystack = 1024

// Sentinel scores. ScoreMin means no match; ScoreMax means a perfect
// identity match (needle and haystack have equal length). Every other score
// is finite and comparable.
var (
	ScoreMin = math.Inf(-1)
	ScoreMax = math.Inf(1)
)

const (
	scoreGapLeading  = -0.005
	scoreGapTrailing = -0.005
	scoreGapInner    = -0.01

	scoreMatchConsecutive = 1.0
	scoreMatchSlash       = 0.9
	scoreMatchWord        = 0.8
	scoreMatchCapital     = 0.7
	scoreMatchDot         = 0.6
)

// separatorBonus returns the bonus earned by a match immediately following a
// separator character.
func separatorBonus(prev rune) float64 {
	switch prev {
	case '/':
		return scoreMatchSlash
	case '-', '_', ' ':
		return scoreMatchWord
	case '.':
		return scoreMatchDot
	}
	return 0
}

// bonusTable fills dst with the positional bonus for every haystack index:
// the bonus a needle rune earns when it matches there. Position 0 is treated
// as preceded by '/', so a match at the very start of a candidate scores like
// a match after a path separator. The table depends only on the haystack and
// is computed once per alignment, then shared by every DP cell in its column.
//
// haystack must be the original, case-preserved runes: the camelCase bonus
// needs to see a lower-to-upper transition.
func bonusTable(haystack []rune, dst []float64) []float64 {
	dst = dst[:0]
	prev := '/'
	for _, c := range haystack {
		switch {
		case unicode.IsLower(c) || unicode.IsDigit(c):
			dst = append(dst, separatorBonus(prev))
		case unicode.IsUpper(c):
			if unicode.IsLower(prev) {
				dst = append(dst, scoreMatchCapital)
			} else {
				dst = append(dst, separatorBonus(prev))
			}
		default:
			// Separators and punctuation never earn a boundary bonus
			// themselves.
			dst = append(dst, 0)
		}
		prev = c
	}
	return dst
}
