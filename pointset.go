// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package srp

import (
	"fmt"

	"github.com/2dChan/srp/utils"
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// PointSet is an immutable sequence of points on the unit sphere, stored as
// x, y, z triples. A PointSet may be shared freely between goroutines; none of
// its methods hand out its backing storage.
type PointSet struct {
	coords []float64
}

func newPointSet(pv s2.PointVector) PointSet {
	return PointSet{coords: utils.Flatten(make([]float64, 0, 3*len(pv)), pv)}
}

// Len returns the number of points.
func (ps PointSet) Len() int {
	return len(ps.coords) / 3
}

// Coords returns a copy of the 3*Len() coordinates.
func (ps PointSet) Coords() []float64 {
	return ps.AppendCoords(nil)
}

// AppendCoords appends the 3*Len() coordinates to dst and returns the extended slice.
func (ps PointSet) AppendCoords(dst []float64) []float64 {
	return append(dst, ps.coords...)
}

// At returns point i as a vector.
// It returns an error if the index is out of range.
func (ps PointSet) At(i int) (r3.Vector, error) {
	if i < 0 || i >= ps.Len() {
		return r3.Vector{}, fmt.Errorf("At: index %d out of range [0 %d)", i, ps.Len())
	}
	return ps.at(i), nil
}

func (ps PointSet) at(i int) r3.Vector {
	return r3.Vector{X: ps.coords[3*i], Y: ps.coords[3*i+1], Z: ps.coords[3*i+2]}
}

// Point returns point i.
// It returns an error if the index is out of range.
func (ps PointSet) Point(i int) (s2.Point, error) {
	v, err := ps.At(i)
	if err != nil {
		return s2.Point{}, err
	}
	return s2.Point{Vector: v}, nil
}

// PointVector returns a copy of the points.
func (ps PointSet) PointVector() s2.PointVector {
	pv := make(s2.PointVector, ps.Len())
	for i := range pv {
		pv[i] = s2.Point{Vector: ps.at(i)}
	}
	return pv
}

// Equal reports whether both sets hold the same coordinates in the same order.
func (ps PointSet) Equal(other PointSet) bool {
	if len(ps.coords) != len(other.coords) {
		return false
	}
	for i, c := range ps.coords {
		if other.coords[i] != c {
			return false
		}
	}
	return true
}
