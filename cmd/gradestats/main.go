// Command gradestats reads one line of space-separated student scores from
// standard input and prints the maximum, minimum and average grade followed
// by a bar chart of the score distribution.
//
// Usage:
//
//	$ echo "12 35 35 58 99" | gradestats
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
