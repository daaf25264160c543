package match

import "sort"

// DefaultThreshold is the minimum similarity for a name to be suggested.
const DefaultThreshold = 0.6

// MaxSuggestions caps the number of names Suggest returns.
const MaxSuggestions = 3

// Suggest returns up to MaxSuggestions candidates whose similarity to name
// is at least threshold, best first. Ties keep the candidates' order.
func Suggest(name string, candidates []string, threshold float64) []string {
	type scored struct {
		name  string
		score float64
	}

	var hits []scored

	for _, c := range candidates {
		if s := Similarity(name, c); s >= threshold {
			hits = append(hits, scored{name: c, score: s})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

	if len(hits) > MaxSuggestions {
		hits = hits[:MaxSuggestions]
	}

	out := make([]string, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.name)
	}

	return out
}
