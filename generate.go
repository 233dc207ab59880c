// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package srp

import (
	"errors"
	"fmt"

	"github.com/2dChan/srp/s2voronoi"
	"github.com/2dChan/srp/utils"
	"github.com/golang/geo/s2"
)

const (
	defaultEps = 1e-12
)

// Method places n points on the unit sphere.
type Method func(n int) s2.PointVector

// Spiral places points on a golden-section spiral. It is the default Method
// and the one used for the sets returned by Points.
var Spiral Method = utils.GenerateSpiralPoints

// Random places uniformly distributed points drawn from a generator seeded with seed.
func Random(seed int64) Method {
	return func(n int) s2.PointVector {
		return utils.GenerateRandomPoints(n, seed)
	}
}

type GenerateOptions struct {
	Method     Method
	RelaxSteps int
	Eps        float64
}

type GenerateOption func(*GenerateOptions) error

// WithMethod selects how the initial points are placed.
func WithMethod(m Method) GenerateOption {
	return func(o *GenerateOptions) error {
		if m == nil {
			return errors.New("WithMethod: method must not be nil")
		}
		o.Method = m
		return nil
	}
}

// WithRelaxSteps sets the number of Lloyd relaxation steps applied after
// placement. Relaxation needs at least 4 points.
func WithRelaxSteps(steps int) GenerateOption {
	return func(o *GenerateOptions) error {
		if steps < 0 {
			return fmt.Errorf("WithRelaxSteps: steps must be non-negative, got %d", steps)
		}
		o.RelaxSteps = steps
		return nil
	}
}

// WithEps sets the convex hull tolerance used during relaxation.
func WithEps(eps float64) GenerateOption {
	return func(o *GenerateOptions) error {
		if eps <= 0 {
			return fmt.Errorf("WithEps: eps must be positive, got %v", eps)
		}
		o.Eps = eps
		return nil
	}
}

// Generate builds a set of n points. Unlike Points, any positive n is accepted
// and the result is not cached.
func Generate(n int, setters ...GenerateOption) (PointSet, error) {
	opts := GenerateOptions{
		Method: Spiral,
		Eps:    defaultEps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return PointSet{}, err
		}
	}

	if n < 1 {
		return PointSet{}, fmt.Errorf("srp: Generate: n must be positive, got %d", n)
	}

	pv := opts.Method(n)
	if opts.RelaxSteps > 0 {
		vd, err := s2voronoi.NewDiagram(pv, s2voronoi.WithEps(opts.Eps))
		if err != nil {
			return PointSet{}, fmt.Errorf("srp: Generate: %w", err)
		}
		if err := vd.Relax(opts.RelaxSteps); err != nil {
			return PointSet{}, fmt.Errorf("srp: Generate: %w", err)
		}
		pv = vd.Sites
	}

	return newPointSet(pv), nil
}
