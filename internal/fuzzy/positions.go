package fuzzy

// Positions computes the best alignment of needle against haystack and
// returns the haystack index matched by each needle rune, in needle order.
// It returns nil when no match exists, under exactly the same edge
// conditions as Score. The empty needle returns an empty, non-nil slice.
//
// Unlike Score, the full D/M history is retained so the chosen alignment can
// be reconstructed; use it for highlighting and diagnostics, not on the hot
// ranking path.
func Positions(needle, haystack string) []int {
	var s scratch
	n, h, folded, ok := s.prepare(needle, haystack)
	switch {
	case !ok:
		return nil
	case len(n) == 0:
		return []int{}
	case len(n) == len(h):
		if !runesEqual(n, folded) {
			return nil
		}
		pos := make([]int, len(n))
		for i := range pos {
			pos[i] = i
		}
		return pos
	case !subsequence(n, folded):
		return nil
	}

	s.bonus = bonusTable(h, s.bonus)
	d := make([][]float64, len(n))
	m := make([][]float64, len(n))
	for i := range n {
		d[i] = make([]float64, len(h))
		m[i] = make([]float64, len(h))
		if i == 0 {
			fillRow(i, len(n), n, folded, s.bonus, nil, nil, d[i], m[i])
		} else {
			fillRow(i, len(n), n, folded, s.bonus, d[i-1], m[i-1], d[i], m[i])
		}
	}

	// Walk back from the last needle rune. matchRequired is set whenever the
	// cell above-left fed a consecutive run into the current match: in that
	// case the previous needle rune must sit exactly one column to the left,
	// not anywhere a gap could have carried the value from.
	pos := make([]int, len(n))
	matchRequired := false
	j := len(h) - 1
	for i := len(n) - 1; i >= 0; i-- {
		for ; j >= 0; j-- {
			if d[i][j] != ScoreMin && (matchRequired || d[i][j] == m[i][j]) {
				matchRequired = i > 0 && j > 0 &&
					m[i][j] == d[i-1][j-1]+scoreMatchConsecutive
				pos[i] = j
				j--
				break
			}
		}
	}
	return pos
}

// subsequence reports whether n occurs in order within h. Both slices must
// already be case-folded.
func subsequence(n, h []rune) bool {
	j := 0
	for _, c := range n {
		for {
			if j >= len(h) {
				return false
			}
			j++
			if h[j-1] == c {
				break
			}
		}
	}
	return true
}
