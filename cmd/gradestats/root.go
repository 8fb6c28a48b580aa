package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gradestats/console"
	"github.com/katalvlaran/gradestats/grades"
)

const (
	promptScores = "Enter student scores (space-separated): "
	msgInvalid   = "Invalid input. Please enter numbers only."
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "gradestats",
		Short:         "Print max, min, average and a distribution chart of student scores",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGradeStats,
	}
}

// runGradeStats prompts for a score line and prints the report.
// A malformed line is reported on the error stream and is not a command failure.
func runGradeStats(cmd *cobra.Command, _ []string) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	in := console.Open(cmd.InOrStdin())
	defer in.Close()

	fmt.Fprint(out, promptScores)
	line, err := in.Line()
	if err != nil {
		return err
	}
	scores, err := grades.ParseScores(line)
	if err != nil {
		fmt.Fprintln(errOut, msgInvalid)
		return nil
	}
	// input is no longer needed once the line is parsed
	if err = in.Close(); err != nil {
		return err
	}

	summary, err := grades.Compute(scores)
	if errors.Is(err, grades.ErrEmpty) {
		return nil
	}
	if err != nil {
		return err
	}

	return grades.RenderReport(out, summary)
}
