// Package stats summarizes throughput samples.
package stats

import (
	"math"
	"sort"
)

// Summary holds the nearest-rank percentiles of a sample set.
type Summary struct {
	P50, P90, Max float64
	Count         int
}

// Summarize computes P50, P90 and Max of values. The input is not modified.
// An empty input yields the zero Summary.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return Summary{
		P50:   Percentile(sorted, 0.50),
		P90:   Percentile(sorted, 0.90),
		Max:   sorted[len(sorted)-1],
		Count: len(sorted),
	}
}

// Percentile returns the value at percentile p of an ascending slice using
// the nearest-rank method: index = ceil(n*p) - 1, clamped to [0, n-1]. With
// few samples the high percentiles equal the maximum.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}

	index := int(math.Ceil(float64(n)*p)) - 1
	if index >= n {
		index = n - 1
	}
	if index < 0 {
		index = 0
	}
	return sorted[index]
}
