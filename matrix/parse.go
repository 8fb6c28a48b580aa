// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Parse the two line kinds of the console matrix format:
//     a dimension line "rows,columns" and a row line of whitespace-separated integers.
//   - Every failure is an *InputError whose message is meant for the user.

package matrix

import (
	"strconv"
	"strings"
)

// dimensionSep separates rows from columns on a dimension line.
const dimensionSep = ","

// elementBits bounds every parsed value to a 32-bit signed integer.
const elementBits = 32

// ParseDimensions parses a "rows,columns" line.
// Implementation:
//   - Stage 1: split on ",", dropping trailing empty parts ("2,3," is 2×3).
//   - Stage 2: require exactly two parts; trim and parse each as an integer.
//   - Stage 3: require both values to be positive.
//
// Errors:
//   - ErrDimensionFormat for a wrong part count or a non-numeric part.
//   - ErrNonPositiveDimension for rows<=0 or cols<=0.
func ParseDimensions(line string) (rows, cols int, err error) {
	parts := splitDropTrailing(line, dimensionSep)
	if len(parts) != 2 {
		return 0, 0, inputErrorf(ErrDimensionFormat, "Invalid dimension format for dimensions")
	}

	r, errR := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, elementBits)
	c, errC := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, elementBits)
	if errR != nil || errC != nil {
		return 0, 0, inputErrorf(ErrDimensionFormat, "Invalid dimension format. Use 'rows,columns'")
	}
	if r <= 0 || c <= 0 {
		return 0, 0, inputErrorf(ErrNonPositiveDimension, "Rows and columns must be positive integers")
	}

	return int(r), int(c), nil
}

// ParseRow parses one matrix row holding exactly cols integers.
// row is the 1-based row number used in messages. A blank line counts as
// one empty token, so it is a bad element for cols == 1 and a length
// mismatch ("got 1") otherwise.
//
// Errors:
//   - ErrRowLength when the token count differs from cols.
//   - ErrBadElement when a token is not an integer.
func ParseRow(line string, row, cols int) ([]int, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		fields = []string{""}
	}
	if len(fields) != cols {
		return nil, inputErrorf(ErrRowLength, "Expected %d values for row %d, got %d", cols, row, len(fields))
	}

	out := make([]int, cols)
	for j, tok := range fields {
		v, err := strconv.ParseInt(tok, 10, elementBits)
		if err != nil {
			return nil, inputErrorf(ErrBadElement, "For input string: \"%s\"", tok)
		}
		out[j] = int(v)
	}

	return out, nil
}

// splitDropTrailing splits s around sep and removes trailing empty parts.
func splitDropTrailing(s, sep string) []string {
	parts := strings.Split(s, sep)
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}

	return parts
}
