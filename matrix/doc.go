// Package matrix offers a small integer matrix toolkit for console programs.
//
// The matrix package provides:
//
//   - Dense, a row-major int matrix with bounds-checked At/Set.
//   - ParseDimensions and ParseRow for the "rows,columns" + row-line input format.
//   - Mul, the classic triple-loop product guarded by ValidateMulCompatible.
//   - Format, which prints a matrix with one shared, right-aligned column width.
//
// Input failures are *InputError values: Error() is the message shown to
// the user, and errors.Is matches the package sentinels (ErrRowLength,
// ErrDimensionMismatch, ...).
//
// See the examples in this package for usage patterns.
package matrix
