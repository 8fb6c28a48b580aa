// SPDX-License-Identifier: MIT
// Package: grades
//
// Purpose:
//   - Turn one console line into an ordered list of integer scores.
//
// Notes:
//   - Tokens are separated by exactly one space. Two spaces in a row produce
//     an empty token, which fails to parse.
//   - Trailing empty tokens are dropped, so a line of only spaces is an empty
//     list while a line with no characters is a single empty token.

package grades

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	opParseScores = "ParseScores"
	opCompute     = "Compute"
)

// scoreSep is the only accepted separator between scores.
const scoreSep = " "

// ParseScores parses line into scores.
// Any token that is not an integer fails the whole line with ErrParse.
// Complexity: O(len(line)).
func ParseScores(line string) ([]int, error) {
	tokens := splitScores(line)
	scores := make([]int, 0, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseInt(tok, 10, 32)
		if err != nil {
			return nil, gradesErrorf(opParseScores, fmt.Errorf("token %d %q: %w", i, tok, ErrParse))
		}
		scores = append(scores, int(v))
	}

	return scores, nil
}

// splitScores splits on scoreSep and drops trailing empty tokens.
// An empty line is kept as one empty token.
func splitScores(line string) []string {
	if line == "" {
		return []string{""}
	}
	parts := strings.Split(line, scoreSep)
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}

	return parts
}
