// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package srp

import (
	"fmt"
	"math"

	"github.com/2dChan/srp/s2voronoi"
	"github.com/golang/geo/s1"
)

// Quality describes how evenly a PointSet covers the sphere.
type Quality struct {
	// Smallest and largest distance from a point to its nearest neighbor.
	MinSeparation s1.Angle
	MaxSeparation s1.Angle

	// Smallest and largest Voronoi cell, in steradians.
	MinCellArea float64
	MaxCellArea float64
	AreaRatio   float64
}

// Weights returns the solid angle of the Voronoi cell of every point. The
// weights sum to 4π and may replace the uniform weight 4π/n in quadrature.
func Weights(ps PointSet) ([]float64, error) {
	vd, err := s2voronoi.NewDiagram(ps.PointVector())
	if err != nil {
		return nil, fmt.Errorf("srp: Weights: %w", err)
	}
	areas, err := cellAreas(vd)
	if err != nil {
		return nil, fmt.Errorf("srp: Weights: %w", err)
	}
	return areas, nil
}

// Measure computes the Quality of ps. Sets with fewer than 4 points have no
// Voronoi diagram and are rejected.
func Measure(ps PointSet) (Quality, error) {
	vd, err := s2voronoi.NewDiagram(ps.PointVector())
	if err != nil {
		return Quality{}, fmt.Errorf("srp: Measure: %w", err)
	}

	q := Quality{
		MinSeparation: s1.InfAngle(),
		MinCellArea:   math.Inf(1),
	}
	areas, err := cellAreas(vd)
	if err != nil {
		return Quality{}, fmt.Errorf("srp: Measure: %w", err)
	}
	for _, a := range areas {
		q.MinCellArea = min(q.MinCellArea, a)
		q.MaxCellArea = max(q.MaxCellArea, a)
	}
	q.AreaRatio = q.MaxCellArea / q.MinCellArea

	// The nearest neighbor of a site is always one of its Delaunay neighbors.
	for i := range vd.NumCells() {
		c, err := vd.Cell(i)
		if err != nil {
			return Quality{}, err
		}
		nearest := s1.InfAngle()
		for _, j := range c.NeighborIndices() {
			nearest = min(nearest, c.Site().Distance(vd.Sites[j]))
		}
		q.MinSeparation = min(q.MinSeparation, nearest)
		q.MaxSeparation = max(q.MaxSeparation, nearest)
	}

	return q, nil
}

func cellAreas(vd *s2voronoi.Diagram) ([]float64, error) {
	areas := make([]float64, vd.NumCells())
	for i := range areas {
		c, err := vd.Cell(i)
		if err != nil {
			return nil, err
		}
		areas[i] = c.Area()
	}
	return areas, nil
}
