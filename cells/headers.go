package cells

import (
	"fmt"
	"unicode/utf8"
)

// placeholderBase is the stem used for generated column names.
const placeholderBase = "Column"

// UniqueNames converts candidate column labels into unique, stable
// column names. The output has the same length and order as the input
// and contains no duplicates.
//
// A label that normalizes to empty or to fewer than two characters is
// replaced by "Column_N", N being the smallest integer producing an
// unused name. A longer label that collides with an earlier name gets
// a "_K" suffix, K being the smallest integer making it unique.
func UniqueNames(labels []string) []string {
	used := make(map[string]bool, len(labels))
	out := make([]string, 0, len(labels))

	for _, label := range labels {
		cleaned := CollapseSpace(label)

		var name string
		if utf8.RuneCountInString(cleaned) < 2 {
			name = nextPlaceholder(used)
		} else {
			name = cleaned
			for k := 1; used[name]; k++ {
				name = fmt.Sprintf("%s_%d", cleaned, k)
			}
		}

		used[name] = true
		out = append(out, name)
	}
	return out
}

// nextPlaceholder returns the first unused Column_N name.
func nextPlaceholder(used map[string]bool) string {
	for n := 1; ; n++ {
		name := fmt.Sprintf("%s_%d", placeholderBase, n)
		if !used[name] {
			return name
		}
	}
}

// GenericNames returns Column_1..Column_n, for tables whose first row
// is data rather than a header.
func GenericNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("%s_%d", placeholderBase, i+1)
	}
	return names
}
