package fuzzy

import (
	"math"
	"unicode"
)

// scratch holds the per-call working set of an alignment: case-folded runes,
// the bonus table, and the rolling DP rows. A zero scratch is ready to use.
// Reusing one scratch across many candidates (as Rank does) keeps the hot
// ranking path allocation-light; a scratch must not be shared between
// goroutines.
type scratch struct {
	needle   []rune // lowercased
	haystack []rune // original case, for the bonus table
	folded   []rune // lowercased haystack, for comparisons
	bonus    []float64
	rows     [4][]float64
}

// Score computes the quality of the best alignment of needle as a
// subsequence of haystack. ScoreMin means no alignment exists (or the
// haystack exceeds MaxHaystack); ScoreMax means a perfect identity match.
// The empty needle scores 0: it matches everything with no preference.
func Score(needle, haystack string) float64 {
	var s scratch
	return s.score(needle, haystack)
}

func (s *scratch) score(needle, haystack string) float64 {
	n, h, folded, ok := s.prepare(needle, haystack)
	switch {
	case !ok:
		return ScoreMin
	case len(n) == 0:
		return 0
	case len(n) == len(h):
		// Only the identity alignment is possible, and it is by
		// definition the best one. No DP needed.
		if runesEqual(n, folded) {
			return ScoreMax
		}
		return ScoreMin
	}

	s.bonus = bonusTable(h, s.bonus)
	lastD := resizeRow(&s.rows[0], len(h))
	lastM := resizeRow(&s.rows[1], len(h))
	curD := resizeRow(&s.rows[2], len(h))
	curM := resizeRow(&s.rows[3], len(h))

	for i := range n {
		fillRow(i, len(n), n, folded, s.bonus, lastD, lastM, curD, curM)
		lastD, curD = curD, lastD
		lastM, curM = curM, lastM
	}
	return lastM[len(h)-1]
}

// prepare case-folds both strings into the scratch buffers and applies the
// shared edge conditions. ok is false when the pair can never match: haystack
// over the cap, or needle longer than haystack.
func (s *scratch) prepare(needle, haystack string) (n, h, folded []rune, ok bool) {
	s.haystack = appendRunes(s.haystack[:0], haystack)
	if len(s.haystack) > MaxHaystack {
		return nil, nil, nil, false
	}
	s.needle = appendLowerRunes(s.needle[:0], needle)
	if len(s.needle) > len(s.haystack) {
		return nil, nil, nil, false
	}
	s.folded = s.folded[:0]
	for _, r := range s.haystack {
		s.folded = append(s.folded, unicode.ToLower(r))
	}
	return s.needle, s.haystack, s.folded, true
}

// fillRow computes row i of the D and M tables into curD/curM, reading row
// i-1 from lastD/lastM (ignored when i is 0).
//
// D[i][j] is the best alignment score where haystack[j] is a literal match
// for needle[i]; M[i][j] is the best alignment of needle[0..i] using
// haystack[0..j], allowing j itself to be skipped. Row 0 charges skipped
// characters before the first match as a leading gap. Later rows either start
// a fresh run from M[i-1][j-1] (earning the positional bonus) or extend a
// consecutive run from D[i-1][j-1] (earning the flat consecutive bonus, which
// dominates every positional bonus).
func fillRow(i, needleLen int, needle, haystack []rune, bonus, lastD, lastM, curD, curM []float64) {
	gap := scoreGapInner
	if i == needleLen-1 {
		gap = scoreGapTrailing
	}

	prev := ScoreMin
	for j, c := range haystack {
		if c == needle[i] {
			score := ScoreMin
			if i == 0 {
				score = float64(j)*scoreGapLeading + bonus[j]
			} else if j > 0 {
				score = math.Max(
					lastM[j-1]+bonus[j],
					lastD[j-1]+scoreMatchConsecutive,
				)
			}
			curD[j] = score
			prev = math.Max(score, prev+gap)
		} else {
			curD[j] = ScoreMin
			prev += gap
		}
		curM[j] = prev
	}
}

func resizeRow(row *[]float64, n int) []float64 {
	if cap(*row) < n {
		*row = make([]float64, n)
	}
	*row = (*row)[:n]
	return *row
}

func appendRunes(dst []rune, s string) []rune {
	for _, r := range s {
		dst = append(dst, r)
	}
	return dst
}

func appendLowerRunes(dst []rune, s string) []rune {
	for _, r := range s {
		dst = append(dst, unicode.ToLower(r))
	}
	return dst
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
