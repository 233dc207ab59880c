// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type pointsDoc struct {
	N      int          `yaml:"n"`
	Points [][3]float64 `yaml:"points"`
}

func (a *app) newPointsCmd() *cobra.Command {
	var (
		n      int
		relax  int
		format string
	)
	cmd := &cobra.Command{
		Use:   "points",
		Short: "Print the test points for a point count",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if format != "text" && format != "yaml" {
				return fmt.Errorf("unknown format %q (want text or yaml)", format)
			}
			ps, err := a.pointSet(n, relax)
			if err != nil {
				return err
			}

			if format == "yaml" {
				doc := pointsDoc{N: ps.Len(), Points: make([][3]float64, ps.Len())}
				coords := ps.Coords()
				for i := range doc.Points {
					doc.Points[i] = [3]float64{coords[3*i], coords[3*i+1], coords[3*i+2]}
				}
				enc := yaml.NewEncoder(a.stdout)
				if err := enc.Encode(doc); err != nil {
					return err
				}
				return enc.Close()
			}

			w := bufio.NewWriter(a.stdout)
			coords := ps.Coords()
			for i := 0; i < len(coords); i += 3 {
				fmt.Fprintf(w, "%.17g %.17g %.17g\n", coords[i], coords[i+1], coords[i+2])
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVarP(&n, "points", "n", 100, "number of points (see srp legal)")
	cmd.Flags().IntVar(&relax, "relax", 0, "Lloyd relaxation steps")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text|yaml")
	return cmd
}
