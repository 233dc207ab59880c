// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"strings"
	"testing"

	"github.com/2dChan/srp/shrakerupley"
	"github.com/golang/geo/r3"
	"github.com/google/go-cmp/cmp"
)

func TestReadAtoms(t *testing.T) {
	in := `# comment
1 2 3 1.7

  -0.5 0 1e1 1.52   # oxygen
`
	want := []shrakerupley.Atom{
		{Center: r3.Vector{X: 1, Y: 2, Z: 3}, Radius: 1.7},
		{Center: r3.Vector{X: -0.5, Y: 0, Z: 10}, Radius: 1.52},
	}
	got, err := readAtoms(strings.NewReader(in))
	if err != nil {
		t.Fatalf("readAtoms(...) error = %v, want nil", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("readAtoms(...) mismatch (-want +got):\n%s", diff)
	}
}

func TestReadAtoms_Errors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantMsg string
	}{
		{"short line", "1 2 3 4\n1 2 3\n", "line 2"},
		{"long line", "1 2 3 4 5\n", "line 1"},
		{"bad float", "\n\n1 2 z 4\n", "line 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readAtoms(strings.NewReader(tt.in))
			if err == nil || !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("readAtoms(%q) error = %v, want containing %q", tt.in, err, tt.wantMsg)
			}
		})
	}
}
