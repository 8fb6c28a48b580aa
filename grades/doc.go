// Package grades computes descriptive statistics over a list of student scores.
//
// What & Why:
//
//	A score line such as "55 78 91" is parsed by ParseScores, summarised by
//	Compute (max, min, average and a five-bucket histogram) and rendered by
//	RenderReport as three text lines plus a vertical bar chart.
//
// Buckets:
//
//	[0–20] [21–40] [41–60] [61–80] [81–100]. A score outside [0,100] is part
//	of max/min/average but of no bucket.
//
// Complexity:
//
//	ParseScores and Compute are O(n); RenderGraph is O(MaxCount).
package grades
