package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// Duplicates returns the elements that occur more than once, each reported
// once, in the order of their second occurrence.
func Duplicates[S ~[]E, E comparable](s S) []E {
	seen := make(map[E]int, len(s))

	var out []E

	for _, e := range s {
		seen[e]++
		if seen[e] == 2 {
			out = append(out, e)
		}
	}

	return out
}
