// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"io"
	"math"
	"os"

	"github.com/2dChan/srp"
	"github.com/2dChan/srp/s2voronoi"
	svg "github.com/ajstarks/svgo"
	"github.com/golang/geo/s2"
	"github.com/spf13/cobra"
)

const (
	// PlateCarreeProjection
	width  = 1500
	height = width / 2

	polygonStyle = "fill:rgb(255,255,255);stroke:rgb(170,170,170);stroke-width:1;stroke-opacity:1.0"
	siteStyle    = "fill:rgb(0,0,255)"
)

func pointToScreen(p s2.Point) (int, int) {
	xScale := float64(width)
	proj := s2.NewPlateCarreeProjection(xScale)

	r2p := proj.Project(p)

	x := (r2p.X + xScale) / (2 * xScale)
	y := (-r2p.Y + xScale/2) / xScale

	return int(x * width), int(y * height)
}

func renderPoints(w io.Writer, ps srp.PointSet, cells bool) error {
	pv := ps.PointVector()

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:rgb(255,255,255)")

	if cells {
		vd, err := s2voronoi.NewDiagram(pv)
		if err != nil {
			return err
		}
		xPoints := make([]int, 0)
		yPoints := make([]int, 0)
		for i := range vd.NumCells() {
			cell, err := vd.Cell(i)
			if err != nil {
				return err
			}
			xPoints = xPoints[:0]
			yPoints = yPoints[:0]

			draw := true
			sLng := s2.LatLngFromPoint(cell.Site()).Lng.Radians()
			for _, vIdx := range cell.VertexIndices() {
				vert := vd.Vertices[vIdx]
				vLng := s2.LatLngFromPoint(vert).Lng.Radians()
				if math.Abs(vLng-sLng) > math.Pi {
					draw = false
					break
				}

				x, y := pointToScreen(vert)
				xPoints = append(xPoints, x)
				yPoints = append(yPoints, y)
			}

			// Skip polygons that may cross the antimeridian to avoid rendering issues
			if draw {
				canvas.Polygon(xPoints, yPoints, polygonStyle)
			}
		}
	}

	for _, p := range pv {
		x, y := pointToScreen(p)
		canvas.Circle(x, y, 3, siteStyle)
	}
	canvas.End()
	return nil
}

func (a *app) newRenderCmd() *cobra.Command {
	var (
		n      int
		relax  int
		output string
		cells  bool
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a point set as an SVG map",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) (err error) {
			ps, err := a.pointSet(n, relax)
			if err != nil {
				return err
			}

			if output == "-" {
				return renderPoints(a.stdout, ps, cells)
			}
			file, err := os.Create(output)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := file.Close(); err == nil {
					err = cerr
				}
			}()
			a.logger.Printf("writing %d points to %s", ps.Len(), output)
			return renderPoints(file, ps, cells)
		},
	}
	cmd.Flags().IntVarP(&n, "points", "n", 100, "number of points (see srp legal)")
	cmd.Flags().IntVar(&relax, "relax", 0, "Lloyd relaxation steps")
	cmd.Flags().StringVarP(&output, "output", "o", "points.svg", "output file, - for stdout")
	cmd.Flags().BoolVar(&cells, "cells", false, "draw the Voronoi cell of every point")
	return cmd
}
