// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package srp provides the test points used for Shrake-Rupley estimates of
// solvent accessible surface area.
//
// Only a fixed set of point counts is supported, see LegalN. Each set is built
// on first request and shared by every later caller.
package srp

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"sync"
)

// ErrInvalidPointCount is returned for a point count that is not one of LegalN.
var ErrInvalidPointCount = errors.New("srp: invalid number of points")

var legalN = [...]int{20, 50, 100, 200, 500, 1000, 2000, 5000}

type entry struct {
	once sync.Once
	ps   PointSet
	err  error
}

var cache [len(legalN)]entry

func index(n int) int {
	i, ok := slices.BinarySearch(legalN[:], n)
	if !ok {
		return -1
	}
	return i
}

// LegalN returns the supported point counts in ascending order.
func LegalN() []int {
	return slices.Clone(legalN[:])
}

// IsValid reports whether n is a supported point count.
func IsValid(n int) bool {
	return index(n) >= 0
}

// WriteLegalN writes the supported point counts to w as a comma-separated list
// ending with a newline.
func WriteLegalN(w io.Writer) error {
	buf := make([]byte, 0, 64)
	for i, n := range legalN {
		if i > 0 {
			buf = append(buf, ", "...)
		}
		buf = strconv.AppendInt(buf, int64(n), 10)
	}
	buf = append(buf, '\n')
	_, err := w.Write(buf)
	return err
}

// Points returns the test points for n. The set is computed once per n.
// It returns an error wrapping ErrInvalidPointCount if n is not valid.
func Points(n int) (PointSet, error) {
	i := index(n)
	if i < 0 {
		return PointSet{}, fmt.Errorf("%w: %d (legal values: %v)", ErrInvalidPointCount, n, legalN)
	}

	e := &cache[i]
	e.once.Do(func() {
		e.ps, e.err = Generate(n)
	})
	return e.ps, e.err
}

// MustPoints is like Points but panics if n is not valid.
func MustPoints(n int) PointSet {
	ps, err := Points(n)
	if err != nil {
		panic(err)
	}
	return ps
}
