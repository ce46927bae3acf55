package frequency

import (
	"math"

	"golang.org/x/exp/constraints"
)

// RealNumber covers the numeric types accepted by the analysis functions.
type RealNumber interface {
	constraints.Integer | constraints.Float
}

/*
EntropyFromCounts finds the Shannon entropy of a histogram of occurrence
counts, defined as

	E = - sum(i) { p(i) * log2(p(i)) },

where p(i) = count(i) / total over all bins with count(i) > 0. The maximum
value is log2(n) for n equally likely bins; the entropy approaches 0 as the
distribution concentrates in fewer bins.

An empty or all-zero histogram has no distribution to measure, so its
entropy is defined to be 0 rather than dividing by a zero total.
*/
func EntropyFromCounts[T constraints.Integer](counts []T) float64 {
	var total T
	for _, count := range counts {
		total += count
	}
	if total == 0 {
		return 0
	}

	entropy := 0.0
	for _, count := range counts {
		if count > 0 {
			p := float64(count) / float64(total)
			entropy -= p * math.Log2(p)
		}
	}
	return entropy
}

// EntropyFromString computes the Shannon entropy of a string over the
// distribution of its Unicode code points, using the same formula as
// EntropyFromCounts with the rune count of the string as the total.
// The empty string has entropy 0.
func EntropyFromString(s string) float64 {
	if len(s) == 0 {
		return 0
	}

	counts := make(map[rune]int)
	total := 0
	for _, char := range s {
		counts[char]++
		total++
	}

	entropy := 0.0
	for _, count := range counts {
		p := float64(count) / float64(total)
		entropy -= p * math.Log2(p)
	}
	return entropy
}
