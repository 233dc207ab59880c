// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"fmt"

	"github.com/2dChan/srp"
	"github.com/spf13/cobra"
)

func (a *app) newStatsCmd() *cobra.Command {
	var (
		n     int
		relax int
	)
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Report how evenly a point set covers the sphere",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ps, err := a.pointSet(n, relax)
			if err != nil {
				return err
			}
			q, err := srp.Measure(ps)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.stdout,
				"points:          %d\nmin separation:  %.6f deg\nmax separation:  %.6f deg\nmin cell area:   %.6g sr\nmax cell area:   %.6g sr\narea ratio:      %.4f\n",
				ps.Len(), q.MinSeparation.Degrees(), q.MaxSeparation.Degrees(),
				q.MinCellArea, q.MaxCellArea, q.AreaRatio)
			return err
		},
	}
	cmd.Flags().IntVarP(&n, "points", "n", 100, "number of points (see srp legal)")
	cmd.Flags().IntVar(&relax, "relax", 0, "Lloyd relaxation steps")
	return cmd
}
