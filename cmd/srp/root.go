// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"errors"
	"io"
	"log"

	"github.com/2dChan/srp"
	"github.com/spf13/cobra"
)

const (
	exitInvalidPointCount = 1
	exitFailure           = 2
)

type app struct {
	stdout io.Writer
	stderr io.Writer
	logger *log.Logger

	verbose bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		stdout: stdout,
		stderr: stderr,
		logger: log.New(io.Discard, "srp: ", 0),
	}

	cmd := &cobra.Command{
		Use:           "srp",
		Short:         "Test points on the unit sphere for SASA calculations",
		Long:          "srp lists, prints, measures and renders the Shrake-Rupley test point sets and computes solvent accessible surface areas.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if a.verbose {
				a.logger.SetOutput(a.stderr)
			}
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log progress to stderr")

	cmd.AddCommand(
		a.newLegalCmd(),
		a.newPointsCmd(),
		a.newStatsCmd(),
		a.newRenderCmd(),
		a.newSasaCmd(),
	)
	return cmd
}

// exitCode maps an error to the process exit status. An unsupported point
// count exits with 1; every other failure with 2.
func exitCode(err error) int {
	if errors.Is(err, srp.ErrInvalidPointCount) {
		return exitInvalidPointCount
	}
	return exitFailure
}

// pointSet returns the legal set for n, relaxed when steps is positive.
func (a *app) pointSet(n, steps int) (srp.PointSet, error) {
	ps, err := srp.Points(n)
	if err != nil {
		return srp.PointSet{}, err
	}
	if steps == 0 {
		return ps, nil
	}
	a.logger.Printf("relaxing %d points for %d steps", n, steps)
	return srp.Generate(n, srp.WithRelaxSteps(steps))
}
