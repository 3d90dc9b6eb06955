package match

import "sort"

// DefaultThreshold is the minimum similarity for a candidate to be suggested.
const DefaultThreshold = 0.5

// Suggest returns up to limit candidates similar to name, best first.
// Ties keep the order of candidates.
func Suggest(name string, candidates []string, limit int) []string {
	if limit <= 0 {
		return nil
	}

	type scored struct {
		name  string
		score float64
	}

	norm := NormalizeIdent(name)

	var ranked []scored
	for _, c := range candidates {
		score := Similarity(norm, NormalizeIdent(c))
		if score >= DefaultThreshold {
			ranked = append(ranked, scored{name: c, score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	out := make([]string, 0, min(limit, len(ranked)))
	for _, r := range ranked {
		if len(out) == limit {
			break
		}
		out = append(out, r.name)
	}

	return out
}
