// Command matmul reads two integer matrices from standard input, multiplies
// them and prints the aligned product.
//
// Each matrix is entered as a "rows,columns" line followed by one line of
// whitespace-separated integers per row:
//
//	$ printf '2,2\n1 2\n3 4\n2,2\n5 6\n7 8\n' | matmul
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
