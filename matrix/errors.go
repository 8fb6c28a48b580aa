// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors and the InputError
// carrier used for user-facing input failures. Callers MUST match errors via
// errors.Is; no function in this package panics on user-triggered conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every sentinel is prefixed with "matrix: ..." for easy grepping. Input
// failures that are shown to a person carry their own message through
// InputError, which still unwraps to the sentinel below.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/index -> dimension line -> row contents -> compatibility.

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<=0 or cols<=0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At/Set MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrRagged indicates that row slices passed to NewFromRows differ in length.
	ErrRagged = errors.New("matrix: ragged rows")

	// ErrDimensionFormat signals a malformed "rows,columns" line.
	ErrDimensionFormat = errors.New("matrix: invalid dimension format")

	// ErrNonPositiveDimension signals rows<=0 or columns<=0 on a dimension line.
	ErrNonPositiveDimension = errors.New("matrix: dimensions must be > 0")

	// ErrRowLength signals an input row whose token count differs from the
	// declared column count.
	ErrRowLength = errors.New("matrix: row length mismatch")

	// ErrBadElement signals an input row token that is not an integer.
	ErrBadElement = errors.New("matrix: invalid element")

	// ErrDimensionMismatch indicates Mul operands where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)

// InputError is a terminal input failure with a human-readable message.
// Error returns the message verbatim; Unwrap exposes the matching sentinel.
type InputError struct {
	Msg string // printed as-is after "Error: "
	Err error  // one of the sentinels above
}

// Error implements error.
func (e *InputError) Error() string { return e.Msg }

// Unwrap lets errors.Is match the sentinel.
func (e *InputError) Unwrap() error { return e.Err }

// inputErrorf builds an *InputError around sentinel with a formatted message.
func inputErrorf(sentinel error, format string, args ...any) error {
	return &InputError{Msg: fmt.Sprintf(format, args...), Err: sentinel}
}

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
