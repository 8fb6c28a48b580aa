package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gradestats/console"
	"github.com/katalvlaran/gradestats/matrix"
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "matmul",
		Short:         "Multiply two integer matrices read from standard input",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runMatMul,
	}
}

// runMatMul reads A then B, multiplies them and prints C.
// Input and compatibility failures print "Error: <message>" and are not
// command failures; nothing else is printed for them.
func runMatMul(cmd *cobra.Command, _ []string) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	in := console.Open(cmd.InOrStdin())
	defer in.Close()

	c, err := readAndMultiply(in, out)
	var ie *matrix.InputError
	if errors.As(err, &ie) {
		fmt.Fprintln(errOut, "Error:", ie.Msg)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprint(out, "\nMatrix C:\n")

	return matrix.Format(out, c)
}

func readAndMultiply(in *console.Input, out io.Writer) (*matrix.Dense, error) {
	a, err := readMatrix(in, out, "A")
	if err != nil {
		return nil, err
	}
	b, err := readMatrix(in, out, "B")
	if err != nil {
		return nil, err
	}
	if err = in.Close(); err != nil {
		return nil, err
	}

	return matrix.Mul(a, b)
}

// readMatrix prompts for and reads one matrix: its dimension line, then its rows.
func readMatrix(in *console.Input, out io.Writer, name string) (*matrix.Dense, error) {
	fmt.Fprintf(out, "Enter the number of rows and columns of matrix %s (Format: rows,columns):\n", name)
	fmt.Fprintf(out, "Matrix %s: ", name)
	line, err := in.Line()
	if err != nil {
		return nil, err
	}
	rows, cols, err := matrix.ParseDimensions(line)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(out, "Enter elements of matrix %s (row-wise, space separated):\n", name)
	// rows grow with the lines actually read, never with the declared shape
	var data [][]int
	var row []int
	for i := 0; i < rows; i++ {
		if line, err = in.Line(); err != nil {
			return nil, err
		}
		if row, err = matrix.ParseRow(line, i+1, cols); err != nil {
			return nil, err
		}
		data = append(data, row)
	}

	return matrix.NewFromRows(data)
}
