// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides generators of S2 point vectors and conversions between
// point vectors and flat coordinate slices.

package utils

import (
	"math"
	"math/rand"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// goldenAngle is the longitude increment of the golden-section spiral.
var goldenAngle = math.Pi * (3 - math.Sqrt(5))

// GenerateRandomPoints generates a vector of random points on the S2 sphere.
// The points are uniform over the sphere's area.
// The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, seed int64) s2.PointVector {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	sites := make(s2.PointVector, cnt)

	for i := range cnt {
		z := 2*random.Float64() - 1
		sites[i] = s2.PointFromLatLng(s2.LatLng{
			Lat: s1.Angle(math.Asin(z)),
			Lng: s1.Angle((random.Float64()*2 - 1) * math.Pi),
		})
	}

	return sites
}

// GenerateSpiralPoints places cnt points on a golden-section spiral running
// from the north pole to the south pole. Each point covers an equal band of z.
func GenerateSpiralPoints(cnt int) s2.PointVector {
	sites := make(s2.PointVector, cnt)
	if cnt == 0 {
		return sites
	}

	dz := 2 / float64(cnt)
	for i := range cnt {
		z := 1 - dz*(float64(i)+0.5)
		r := math.Sqrt(1 - z*z)
		sin, cos := math.Sincos(goldenAngle * float64(i))
		sites[i] = s2.PointFromCoords(r*cos, r*sin, z)
	}

	return sites
}

// Flatten appends the x, y, z coordinates of every point in pv to dst.
func Flatten(dst []float64, pv s2.PointVector) []float64 {
	for _, p := range pv {
		dst = append(dst, p.X, p.Y, p.Z)
	}
	return dst
}

// Unflatten converts a slice of x, y, z triples to points.
// Trailing values that do not form a full triple are ignored.
func Unflatten(coords []float64) s2.PointVector {
	pv := make(s2.PointVector, len(coords)/3)
	for i := range pv {
		pv[i] = s2.PointFromCoords(coords[3*i], coords[3*i+1], coords[3*i+2])
	}
	return pv
}
