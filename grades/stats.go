// SPDX-License-Identifier: MIT
// Package: grades
//
// Purpose:
//   - Compute max, min, sum, average and the bucket histogram of a score list.
//
// Determinism:
//   - Bounds and sum come from a stats.Sample over the scores as float64.
//     32-bit integers and their sums stay exact in float64, so converting
//     back to int is lossless.
//   - Average is Sum/Count in float64, not an incremental mean.

package grades

import "github.com/aclements/go-moremath/stats"

// Summary is the result of Compute.
type Summary struct {
	Max, Min   int
	Sum, Count int
	Average    float64
	Histogram  Histogram
}

// Compute summarises scores. Scores outside [MinScore, MaxScore] still count
// toward Max, Min, Sum and Average but land in no histogram bucket.
// Complexity: O(n).
func Compute(scores []int) (Summary, error) {
	if len(scores) == 0 {
		return Summary{}, gradesErrorf(opCompute, ErrEmpty)
	}

	var s Summary
	xs := make([]float64, len(scores))
	for i, v := range scores {
		xs[i] = float64(v)
		s.Histogram.Add(v)
	}

	sample := stats.Sample{Xs: xs}
	lo, hi := sample.Bounds()
	s.Min, s.Max = int(lo), int(hi)
	s.Sum = int(sample.Sum())
	s.Count = len(scores)
	s.Average = float64(s.Sum) / float64(s.Count)

	return s, nil
}
