// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"bytes"
	"errors"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestCLI_ExitCodes(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the command with go build")
	}
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go tool not found")
	}

	// go run reports its own status instead of the program's, so build once.
	bin := filepath.Join(t.TempDir(), "srp")
	build := exec.Command("go", "build", "-o", bin, ".")
	if out, err := build.CombinedOutput(); err != nil {
		t.Fatalf("go build: %v\n%s", err, out)
	}

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStderr string
	}{
		{"valid count", []string{"points", "-n", "20"}, 0, ""},
		{"invalid count", []string{"points", "-n", "33"}, exitInvalidPointCount, "error: srp: invalid number of points"},
		{"unknown format", []string{"points", "--format", "json"}, exitFailure, "error: unknown format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// run as subprocess to observe os.Exit
			cmd := exec.Command(bin, tt.args...)
			var stdout, stderr bytes.Buffer
			cmd.Stdout = &stdout
			cmd.Stderr = &stderr
			err := cmd.Run()

			code := 0
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("srp %v: %v", tt.args, err)
			}
			if code != tt.wantCode {
				t.Errorf("srp %v exit code = %v, want %v (stderr %q)", tt.args, code, tt.wantCode, stderr.String())
			}
			if tt.wantStderr == "" {
				if got := strings.Count(stdout.String(), "\n"); got != 20 {
					t.Errorf("srp %v printed %d lines, want 20", tt.args, got)
				}
				return
			}
			if !strings.HasPrefix(stderr.String(), tt.wantStderr) {
				t.Errorf("srp %v stderr = %q, want prefix %q", tt.args, stderr.String(), tt.wantStderr)
			}
			if stdout.Len() != 0 {
				t.Errorf("srp %v stdout = %q, want empty", tt.args, stdout.String())
			}
		})
	}
}
