// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/2dChan/srp/shrakerupley"
	"github.com/golang/geo/r3"
)

// readAtoms parses one atom per line as "x y z radius". Blank lines and
// anything after '#' are ignored.
func readAtoms(r io.Reader) ([]shrakerupley.Atom, error) {
	var atoms []shrakerupley.Atom
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text, _, _ := strings.Cut(sc.Text(), "#")
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 4 {
			return nil, fmt.Errorf("line %d: want 4 fields (x y z radius), got %d", line, len(fields))
		}
		var v [4]float64
		for i, f := range fields {
			x, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			v[i] = x
		}
		atoms = append(atoms, shrakerupley.Atom{
			Center: r3.Vector{X: v[0], Y: v[1], Z: v[2]},
			Radius: v[3],
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return atoms, nil
}
