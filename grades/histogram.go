// SPDX-License-Identifier: MIT
// Package grades: fixed five-bucket score histogram.

package grades

// NumBuckets is the number of histogram buckets.
const NumBuckets = 5

// Score range covered by the histogram.
const (
	MinScore    = 0
	MaxScore    = 100
	bucketWidth = 20
)

// BucketLabels names the buckets in order.
var BucketLabels = [NumBuckets]string{"0-20", "21-40", "41-60", "61-80", "81-100"}

// Histogram counts scores per bucket: [0–20] [21–40] [41–60] [61–80] [81–100].
type Histogram [NumBuckets]int

// BucketOf reports the bucket index of score.
// Scores outside [MinScore, MaxScore] belong to no bucket.
func BucketOf(score int) (int, bool) {
	if score < MinScore || score > MaxScore {
		return 0, false
	}
	if score <= bucketWidth {
		return 0, true // the first bucket also holds 0
	}

	return (score - 1) / bucketWidth, true
}

// Add counts score in its bucket; out-of-range scores are ignored.
func (h *Histogram) Add(score int) {
	if b, ok := BucketOf(score); ok {
		h[b]++
	}
}

// MaxCount returns the largest bucket count.
func (h Histogram) MaxCount() int {
	maxCount := 0
	for _, n := range h {
		if n > maxCount {
			maxCount = n
		}
	}

	return maxCount
}

// Total returns the number of scores counted in any bucket.
func (h Histogram) Total() int {
	total := 0
	for _, n := range h {
		total += n
	}

	return total
}
