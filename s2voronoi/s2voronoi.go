// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package s2voronoi implements Voronoi diagrams on the S2 sphere, built on Delaunay triangulation.
package s2voronoi

import (
	"fmt"

	"github.com/2dChan/srp/s2delaunay"
	"github.com/golang/geo/s2"
)

const (
	defaultEps = 1e-12
)

// Diagram is a Voronoi diagram of Sites on the unit sphere.
type Diagram struct {
	Sites    s2.PointVector
	Vertices s2.PointVector

	// NOTE: Sort in CCW per Cell(look out of sphere)
	CellVertices []int
	// NOTE: Sort in CCW per Cell(look out of sphere)
	CellNeighbors []int
	CellOffsets   []int

	eps float64
}

type DiagramOptions struct {
	Eps float64
}

type DiagramOption func(*DiagramOptions) error

// WithEps sets the tolerance of the underlying convex hull.
func WithEps(eps float64) DiagramOption {
	return func(o *DiagramOptions) error {
		if eps <= 0 {
			return fmt.Errorf("WithEps: eps must be positive, got %v", eps)
		}
		o.Eps = eps
		return nil
	}
}

// NewDiagram computes the Voronoi diagram of sites.
// The diagram keeps a reference to sites; Relax replaces it with a new vector.
func NewDiagram(sites s2.PointVector, setters ...DiagramOption) (*Diagram, error) {
	opts := DiagramOptions{
		Eps: defaultEps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	vd := &Diagram{eps: opts.Eps}
	if err := vd.build(sites); err != nil {
		return nil, err
	}
	return vd, nil
}

func (vd *Diagram) build(sites s2.PointVector) error {
	dt, err := s2delaunay.NewTriangulation(sites, s2delaunay.WithEps(vd.eps))
	if err != nil {
		return err
	}

	numTriangles := len(dt.Triangles)
	vd.Sites = dt.Vertices
	vd.Vertices = make(s2.PointVector, numTriangles)
	vd.CellVertices = dt.IncidentTriangleIndices
	vd.CellNeighbors = make([]int, len(dt.IncidentTriangleIndices))
	vd.CellOffsets = dt.IncidentTriangleOffsets

	for i := range numTriangles {
		p0, p1, p2 := dt.TriangleVertices(i)
		vd.Vertices[i] = s2.Point{Vector: triangleCircumcenter(p0, p1, p2).Normalize()}
	}

	for vIdx := range dt.Vertices {
		offset := dt.IncidentTriangleOffsets[vIdx]
		for i, tIdx := range dt.IncidentTriangles(vIdx) {
			vd.CellNeighbors[offset+i] = s2delaunay.NextVertex(dt.Triangles[tIdx], vIdx)
		}
	}

	return nil
}

// NumCells returns the number of cells, which equals the number of sites.
func (vd *Diagram) NumCells() int {
	return len(vd.Sites)
}

// Cell returns the cell of the site at index i.
func (vd *Diagram) Cell(i int) (Cell, error) {
	if i < 0 || i >= vd.NumCells() {
		return Cell{}, fmt.Errorf("Cell: index %d out of range [0 %d)", i, vd.NumCells())
	}
	return Cell{idx: i, d: vd}, nil
}

// Relax runs steps iterations of Lloyd's algorithm: every site moves to the
// centroid of its cell and the diagram is rebuilt.
func (vd *Diagram) Relax(steps int) error {
	if steps < 0 {
		return fmt.Errorf("Relax: steps must be non-negative, got %d", steps)
	}

	for range steps {
		sites := make(s2.PointVector, vd.NumCells())
		for i := range sites {
			sites[i] = Cell{idx: i, d: vd}.Centroid()
		}
		if err := vd.build(sites); err != nil {
			return err
		}
	}
	return nil
}

func triangleCircumcenter(p1, p2, p3 s2.Point) s2.Point {
	v1 := p1.Sub(p2.Vector)
	v2 := p2.Sub(p3.Vector)

	circumcenter := v1.Cross(v2)

	if circumcenter.Dot(p1.Vector.Add(p2.Vector).Add(p3.Vector)) < 0 {
		circumcenter = circumcenter.Mul(-1)
	}

	return s2.Point{Vector: circumcenter}
}
