// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package shrakerupley estimates solvent accessible surface area with the
// Shrake-Rupley algorithm: every atom, inflated by the probe radius, is covered
// with the test points of package srp, and the points not buried inside a
// neighboring atom count as exposed.
package shrakerupley

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/2dChan/srp"
	"github.com/golang/geo/r3"
)

const (
	DefaultProbeRadius = 1.4
	DefaultNumPoints   = 100
)

// Atom is a sphere with a van der Waals radius.
type Atom struct {
	Center r3.Vector
	Radius float64
}

type Options struct {
	ProbeRadius float64
	NumPoints   int
	Workers     int

	// Weighted scales every exposed point by the solid angle of its Voronoi
	// cell instead of the uniform 4π/n.
	Weighted bool
}

type Option func(*Options) error

func WithProbeRadius(r float64) Option {
	return func(o *Options) error {
		if r < 0 || math.IsNaN(r) {
			return fmt.Errorf("WithProbeRadius: radius must be non-negative, got %v", r)
		}
		o.ProbeRadius = r
		return nil
	}
}

func WithNumPoints(n int) Option {
	return func(o *Options) error {
		if !srp.IsValid(n) {
			return fmt.Errorf("WithNumPoints: %w: %d", srp.ErrInvalidPointCount, n)
		}
		o.NumPoints = n
		return nil
	}
}

func WithWorkers(w int) Option {
	return func(o *Options) error {
		if w < 1 {
			return fmt.Errorf("WithWorkers: workers must be positive, got %d", w)
		}
		o.Workers = w
		return nil
	}
}

func WithWeighted(weighted bool) Option {
	return func(o *Options) error {
		o.Weighted = weighted
		return nil
	}
}

// Calculator holds the test points for one configuration. It is safe for
// concurrent use.
type Calculator struct {
	opts    Options
	points  []r3.Vector
	weights []float64
}

// Result holds the exposed area of every atom, in the squared unit of the
// input coordinates, and their sum.
type Result struct {
	Atoms []float64
	Total float64
}

func New(setters ...Option) (*Calculator, error) {
	opts := Options{
		ProbeRadius: DefaultProbeRadius,
		NumPoints:   DefaultNumPoints,
		Workers:     runtime.GOMAXPROCS(0),
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	ps, err := srp.Points(opts.NumPoints)
	if err != nil {
		return nil, err
	}
	c := &Calculator{
		opts:   opts,
		points: make([]r3.Vector, ps.Len()),
	}
	for i := range c.points {
		c.points[i], _ = ps.At(i)
	}

	if opts.Weighted {
		c.weights, err = srp.Weights(ps)
		if err != nil {
			return nil, err
		}
	} else {
		c.weights = make([]float64, ps.Len())
		for i := range c.weights {
			c.weights[i] = 4 * math.Pi / float64(ps.Len())
		}
	}

	return c, nil
}

// Options returns the configuration of c.
func (c *Calculator) Options() Options {
	return c.opts
}

// Compute returns the solvent accessible surface area of atoms.
// Work stops early when ctx is cancelled and ctx.Err() is returned.
func (c *Calculator) Compute(ctx context.Context, atoms []Atom) (*Result, error) {
	radii := make([]float64, len(atoms))
	for i, a := range atoms {
		if a.Radius < 0 || !isFinite(a.Radius) {
			return nil, fmt.Errorf("shrakerupley: atom %d: radius must be finite and non-negative, got %v", i, a.Radius)
		}
		if !isFinite(a.Center.X) || !isFinite(a.Center.Y) || !isFinite(a.Center.Z) {
			return nil, fmt.Errorf("shrakerupley: atom %d: center must be finite, got %v", i, a.Center)
		}
		radii[i] = a.Radius + c.opts.ProbeRadius
	}

	res := &Result{Atoms: make([]float64, len(atoms))}
	if len(atoms) == 0 {
		return res, nil
	}

	grid := newCellList(atoms, radii)

	var (
		next atomic.Int64
		wg   sync.WaitGroup
	)
	workers := min(c.opts.Workers, len(atoms))
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var neighbors []int
			for {
				i := int(next.Add(1) - 1)
				if i >= len(atoms) || ctx.Err() != nil {
					return
				}
				neighbors = grid.neighbors(neighbors[:0], i, atoms, radii)
				res.Atoms[i] = c.atomArea(i, neighbors, atoms, radii)
			}
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, a := range res.Atoms {
		res.Total += a
	}
	return res, nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func (c *Calculator) atomArea(i int, neighbors []int, atoms []Atom, radii []float64) float64 {
	ri := radii[i]
	center := atoms[i].Center

	exposed := 0.0
	last := 0
	for k, p := range c.points {
		pos := center.Add(p.Mul(ri))
		buried := false
		// The neighbor that buried the previous point is likely to bury this one.
		for m := range neighbors {
			j := neighbors[(last+m)%len(neighbors)]
			rj := radii[j]
			if pos.Sub(atoms[j].Center).Norm2() < rj*rj {
				buried = true
				last = (last + m) % len(neighbors)
				break
			}
		}
		if !buried {
			exposed += c.weights[k]
		}
	}
	return exposed * ri * ri
}
