// SPDX-License-Identifier: MIT
// Package grades: sentinel error set. Callers match via errors.Is.

package grades

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is returned when a score token is not a 32-bit decimal integer.
	ErrParse = errors.New("grades: invalid score")

	// ErrEmpty is returned when statistics are requested for no scores.
	ErrEmpty = errors.New("grades: no scores")
)

// gradesErrorf wraps err with an operation tag, preserving it via %w.
func gradesErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
