// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package shrakerupley

import (
	"math"

	"github.com/golang/geo/r3"
)

type cellKey [3]int

// cellList bins atoms into cubes no smaller than the largest interaction
// distance, so overlapping atoms are always in adjacent cubes.
type cellList struct {
	size  float64
	cells map[cellKey][]int
}

func newCellList(atoms []Atom, radii []float64) *cellList {
	maxR := 0.0
	for _, r := range radii {
		maxR = max(maxR, r)
	}
	size := 2 * maxR
	if size == 0 {
		size = 1
	}

	cl := &cellList{size: size, cells: make(map[cellKey][]int)}
	for i, a := range atoms {
		k := cl.key(a.Center)
		cl.cells[k] = append(cl.cells[k], i)
	}
	return cl
}

func (cl *cellList) key(v r3.Vector) cellKey {
	return cellKey{
		int(math.Floor(v.X / cl.size)),
		int(math.Floor(v.Y / cl.size)),
		int(math.Floor(v.Z / cl.size)),
	}
}

// neighbors appends to dst the atoms whose inflated spheres overlap atom i.
func (cl *cellList) neighbors(dst []int, i int, atoms []Atom, radii []float64) []int {
	k := cl.key(atoms[i].Center)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				for _, j := range cl.cells[cellKey{k[0] + dx, k[1] + dy, k[2] + dz}] {
					if j == i {
						continue
					}
					d := radii[i] + radii[j]
					if atoms[i].Center.Sub(atoms[j].Center).Norm2() < d*d {
						dst = append(dst, j)
					}
				}
			}
		}
	}
	return dst
}
