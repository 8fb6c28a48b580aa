// SPDX-License-Identifier: MIT
// Package matrix: aligned text rendering.

package matrix

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// minWidth is the narrowest column Format ever uses.
const minWidth = 1

// Width returns the length of the longest decimal rendering (minus sign
// included) among m's elements, never less than 1.
// Complexity: O(r*c).
func Width(m *Dense) int {
	w := minWidth
	if m == nil {
		return w
	}
	for _, v := range m.data {
		if n := len(strconv.Itoa(v)); n > w {
			w = n
		}
	}

	return w
}

// Format writes m one row per line as "| v v ... |", every element
// right-aligned to Width(m) and followed by a single space.
//
//	| 19 22 |
//	| 43 50 |
func Format(w io.Writer, m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	width := Width(m)
	bw := bufio.NewWriter(w)
	var s string
	for i := 0; i < m.r; i++ {
		bw.WriteString("| ")
		for j := 0; j < m.c; j++ {
			s = strconv.Itoa(m.data[i*m.c+j])
			bw.WriteString(strings.Repeat(" ", width-len(s)))
			bw.WriteString(s)
			bw.WriteByte(' ')
		}
		bw.WriteString("|\n")
	}

	return bw.Flush()
}
