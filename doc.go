// Package gradestats groups two small console programs and the packages
// they are built on.
//
// Under the hood, everything is organized under these subpackages:
//
//	grades/         — score parsing, max/min/average, five-bucket histogram, report rendering
//	matrix/         — integer Dense matrix, console line parsers, Mul, aligned printer
//	console/        — scoped line reader over standard input
//	cmd/gradestats/ — "Enter student scores" → statistics report and bar chart
//	cmd/matmul/     — two matrices in, product C out
//
// Quick example:
//
//	$ printf '2,2\n1 2\n3 4\n2,2\n5 6\n7 8\n' | matmul
//	...
//	Matrix C:
//	| 19 22 |
//	| 43 50 |
package gradestats
