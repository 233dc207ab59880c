// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package srp

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
	"github.com/google/go-cmp/cmp"
)

func testPointSet() PointSet {
	return newPointSet(s2.PointVector{
		s2.PointFromCoords(1, 0, 0),
		s2.PointFromCoords(0, 1, 0),
		s2.PointFromCoords(0, 0, -1),
	})
}

func TestPointSet_Coords(t *testing.T) {
	ps := testPointSet()
	want := []float64{1, 0, 0, 0, 1, 0, 0, 0, -1}
	if diff := cmp.Diff(want, ps.Coords()); diff != "" {
		t.Errorf("ps.Coords() mismatch (-want +got):\n%s", diff)
	}

	wantAppended := append([]float64{7}, want...)
	if diff := cmp.Diff(wantAppended, ps.AppendCoords([]float64{7})); diff != "" {
		t.Errorf("ps.AppendCoords([7]) mismatch (-want +got):\n%s", diff)
	}
}

func TestPointSet_At(t *testing.T) {
	ps := testPointSet()
	tests := []struct {
		name    string
		i       int
		want    r3.Vector
		wantErr bool
	}{
		{"first", 0, r3.Vector{X: 1}, false},
		{"last", 2, r3.Vector{Z: -1}, false},
		{"negative", -1, r3.Vector{}, true},
		{"past end", 3, r3.Vector{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ps.At(tt.i)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ps.At(%d) error = %v, wantErr %v", tt.i, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ps.At(%d) = %v, want %v", tt.i, got, tt.want)
			}

			p, err := ps.Point(tt.i)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ps.Point(%d) error = %v, wantErr %v", tt.i, err, tt.wantErr)
			}
			if p.Vector != tt.want {
				t.Errorf("ps.Point(%d) = %v, want %v", tt.i, p, tt.want)
			}
		})
	}
}

func TestPointSet_PointVector(t *testing.T) {
	ps := testPointSet()
	pv := ps.PointVector()
	if len(pv) != ps.Len() {
		t.Fatalf("len(ps.PointVector()) = %v, want %v", len(pv), ps.Len())
	}
	pv[0] = s2.PointFromCoords(0, 0, 1)
	if got, _ := ps.At(0); got != (r3.Vector{X: 1}) {
		t.Errorf("ps.At(0) = %v after mutating PointVector(), want unchanged", got)
	}
}

func TestPointSet_Equal(t *testing.T) {
	a := testPointSet()
	tests := []struct {
		name string
		b    PointSet
		want bool
	}{
		{"same content", testPointSet(), true},
		{"empty", PointSet{}, false},
		{"different content", newPointSet(s2.PointVector{
			s2.PointFromCoords(1, 0, 0),
			s2.PointFromCoords(0, 1, 0),
			s2.PointFromCoords(0, 0, 1),
		}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Equal(tt.b); got != tt.want {
				t.Errorf("a.Equal(b) = %v, want %v", got, tt.want)
			}
		})
	}
}
