package fuzzy

import "sort"

// Choice pairs a candidate with its match quality. Choices are owned by the
// caller and carry no reference back into the engine.
type Choice struct {
	Value string
	Score float64
}

// Rank filters candidates against needle and returns the survivors ordered
// by descending score. Candidates that fail the existence check are dropped
// entirely, not ranked last. Equal scores keep the candidates' original
// relative order: the input index is an explicit secondary sort key, so
// identical inputs always produce identical output.
//
// An empty needle matches everything with no preference: the full candidate
// list comes back unchanged, every choice scored 0.
func Rank(needle string, candidates []string) []Choice {
	if needle == "" {
		out := make([]Choice, len(candidates))
		for i, c := range candidates {
			out[i] = Choice{Value: c}
		}
		return out
	}

	type scored struct {
		Choice
		index int
	}
	var s scratch
	matched := make([]scored, 0, len(candidates))
	for i, c := range candidates {
		if !Match(needle, c) {
			continue
		}
		matched = append(matched, scored{
			Choice: Choice{Value: c, Score: s.score(needle, c)},
			index:  i,
		})
	}

	sort.Slice(matched, func(a, b int) bool {
		if matched[a].Score != matched[b].Score {
			return matched[a].Score > matched[b].Score
		}
		return matched[a].index < matched[b].index
	})

	out := make([]Choice, len(matched))
	for i := range matched {
		out[i] = matched[i].Choice
	}
	return out
}
