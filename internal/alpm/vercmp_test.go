// Copyright (c) 2026 Archlinux AI
// alai - Arch Linux package metadata query tool
// This source code is licensed under the Apache-2.0 license found in the LICENSE file.

package alpm

import "testing"

func TestVerCmp(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		// Plain equality.
		{"1.0", "1.0", 0},
		{"1.0.0", "1.0.0", 0},
		{"", "", 0},

		// Simple numeric ordering.
		{"1.0", "2.0", -1},
		{"2.0", "1.0", 1},
		{"1.0", "1.0.1", -1},
		{"1.0.1", "1.0", 1},
		{"10", "2", 1},
		{"2", "10", -1},

		// Leading zeros compare numerically.
		{"1.01", "1.1", 0},
		{"1.001", "1.1", 0},

		// A trailing alphabetic suffix is older than the bare version.
		{"1.0a", "1.0", -1},
		{"1.0", "1.0a", 1},
		{"1.0rc", "1.0", -1},

		// Numeric segments beat alphabetic segments.
		{"1.0.1", "1.0a", 1},
		{"1.0a", "1.0.1", -1},

		// Alphabetic ordering within a segment.
		{"1.0a", "1.0b", -1},
		{"1.0b", "1.0a", 1},

		// Separator style does not matter when lengths match.
		{"1_0", "1.0", 0},
		{"1.0", "1_0", 0},

		// Epoch dominates the version.
		{"1:1.0", "2.0", 1},
		{"2.0", "1:1.0", -1},
		{"1:1.0", "1:1.0", 0},
		{"2:0.9", "1:2.0", 1},

		// The pkgrel only counts when both sides carry one.
		{"1.0-1", "1.0-2", -1},
		{"1.0-2", "1.0-1", 1},
		{"1.0-1", "1.0-1", 0},
		{"1.0-1", "1.0", 0},
		{"1.0", "1.0-2", 0},
	}

	for _, tt := range tests {
		t.Run(tt.a+" vs "+tt.b, func(t *testing.T) {
			if got := VerCmp(tt.a, tt.b); got != tt.want {
				t.Errorf("VerCmp(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestVerCmpAntisymmetric(t *testing.T) {
	pairs := [][2]string{
		{"1.0", "1.0.1"},
		{"1.0a", "1.0"},
		{"1:0.1", "2.0"},
		{"6.1.arch1-1", "6.1.arch1-2"},
	}
	for _, p := range pairs {
		ab := VerCmp(p[0], p[1])
		ba := VerCmp(p[1], p[0])
		if ab != -ba {
			t.Errorf("VerCmp(%q, %q) = %d but VerCmp(%q, %q) = %d", p[0], p[1], ab, p[1], p[0], ba)
		}
	}
}
