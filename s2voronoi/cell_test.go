// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package s2voronoi

import (
	"math"
	"testing"

	"github.com/golang/geo/s2"
	"github.com/google/go-cmp/cmp"
)

// Cell

func TestCell_SiteAndIndex(t *testing.T) {
	vd := mustNewDiagram(t, 100)
	forEachCell(t, vd, func(i int, c Cell) {
		if got := c.SiteIndex(); got != i {
			t.Errorf("vd.Cell(%d).SiteIndex() = %v, want %v", i, got, i)
		}
		if got, want := c.Site(), vd.Sites[i]; got != want {
			t.Errorf("vd.Cell(%d).Site() = %v, want %v", i, got, want)
		}
	})
}

func TestCell_Counts(t *testing.T) {
	vd := mustNewDiagram(t, 100)
	forEachCell(t, vd, func(i int, c Cell) {
		want := vd.CellOffsets[i+1] - vd.CellOffsets[i]
		if got := c.NumVertices(); got != want {
			t.Errorf("vd.Cell(%d).NumVertices() = %v, want %v", i, got, want)
		}
		if got := c.NumNeighbors(); got != want {
			t.Errorf("vd.Cell(%d).NumNeighbors() = %v, want %v", i, got, want)
		}
		if want < 3 {
			t.Errorf("vd.Cell(%d) has %d vertices, want at least 3", i, want)
		}
	})
}

func TestCell_Vertex(t *testing.T) {
	vd := mustNewDiagram(t, 100)
	forEachCell(t, vd, func(i int, c Cell) {
		want := vd.CellVertices[vd.CellOffsets[i]:vd.CellOffsets[i+1]]
		if diff := cmp.Diff(want, c.VertexIndices()); diff != "" {
			t.Errorf("vd.Cell(%d).VertexIndices() mismatch (-want +got):\n%s", i, diff)
		}
		for j, idx := range c.VertexIndices() {
			got, err := c.Vertex(j)
			if err != nil {
				t.Fatalf("vd.Cell(%d).Vertex(%d) error = %v, want nil", i, j, err)
			}
			if got != vd.Vertices[idx] {
				t.Errorf("vd.Cell(%d).Vertex(%d) = %v, want %v", i, j, got, vd.Vertices[idx])
			}
		}
		for _, j := range []int{-1, c.NumVertices()} {
			if _, err := c.Vertex(j); err == nil {
				t.Errorf("vd.Cell(%d).Vertex(%d) error = nil, want non-nil", i, j)
			}
		}
	})
}

func TestCell_Neighbor(t *testing.T) {
	vd := mustNewDiagram(t, 100)
	forEachCell(t, vd, func(i int, c Cell) {
		want := vd.CellNeighbors[vd.CellOffsets[i]:vd.CellOffsets[i+1]]
		if diff := cmp.Diff(want, c.NeighborIndices()); diff != "" {
			t.Errorf("vd.Cell(%d).NeighborIndices() mismatch (-want +got):\n%s", i, diff)
		}
		for j, nIdx := range c.NeighborIndices() {
			got, err := c.Neighbor(j)
			if err != nil {
				t.Fatalf("vd.Cell(%d).Neighbor(%d) error = %v, want nil", i, j, err)
			}
			if got.SiteIndex() != nIdx {
				t.Errorf("vd.Cell(%d).Neighbor(%d).SiteIndex() = %v, want %v", i, j, got.SiteIndex(), nIdx)
			}
		}
		for _, j := range []int{-1, c.NumNeighbors()} {
			if _, err := c.Neighbor(j); err == nil {
				t.Errorf("vd.Cell(%d).Neighbor(%d) error = nil, want non-nil", i, j)
			}
		}
	})
}

func TestCell_Area_MatchesLoop(t *testing.T) {
	vd := mustNewDiagram(t, 100)
	forEachCell(t, vd, func(i int, c Cell) {
		verts := make([]s2.Point, c.NumVertices())
		for j, idx := range c.VertexIndices() {
			verts[j] = vd.Vertices[idx]
		}
		want := s2.LoopFromPoints(verts).Area()
		if got := c.Area(); math.Abs(got-want) > 1e-12 {
			t.Errorf("vd.Cell(%d).Area() = %v, want %v", i, got, want)
		}
	})
}

func TestCell_Centroid_InsideCell(t *testing.T) {
	vd := mustNewDiagram(t, 100)
	forEachCell(t, vd, func(i int, c Cell) {
		centroid := c.Centroid()
		if n := centroid.Norm(); math.Abs(n-1) > defaultEps {
			t.Errorf("vd.Cell(%d).Centroid() norm = %v, want ~1.0", i, n)
		}
		// A point of a Voronoi cell is no farther from its own site than from any neighbor's.
		own := centroid.Distance(c.Site())
		for _, nIdx := range c.NeighborIndices() {
			if other := centroid.Distance(vd.Sites[nIdx]); other < own {
				t.Errorf("vd.Cell(%d).Centroid() is closer to site %d (%v) than to its own (%v)",
					i, nIdx, other, own)
			}
		}
	})
}

// Helpers

func forEachCell(t *testing.T, vd *Diagram, fn func(i int, c Cell)) {
	t.Helper()
	for i := range vd.NumCells() {
		c, err := vd.Cell(i)
		if err != nil {
			t.Fatalf("vd.Cell(%d) error = %v, want nil", i, err)
		}
		fn(i, c)
	}
}
