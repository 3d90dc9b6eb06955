package match

// Levenshtein returns the minimum number of single-byte insertions, deletions
// and substitutions turning a into b.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	// keep the row as short as possible
	if len(a) > len(b) {
		a, b = b, a
	}

	if a == "" {
		return len(b)
	}

	row := make([]int, len(a)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(b); j++ {
		diag := row[0]
		row[0] = j

		for i := 1; i <= len(a); i++ {
			up := row[i]

			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			row[i] = min(row[i]+1, row[i-1]+1, diag+cost)
			diag = up
		}
	}

	return row[len(a)]
}

// Similarity maps the edit distance to [0, 1], 1 meaning equal strings.
func Similarity(a, b string) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Levenshtein(a, b))/float64(longest)
}
