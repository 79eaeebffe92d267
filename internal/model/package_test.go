// Copyright (c) 2026 Archlinux AI
// alai - Arch Linux package metadata query tool
// This source code is licensed under the Apache-2.0 license found in the LICENSE file.

package model

import (
	"encoding/json"
	"testing"
)

func TestPackageString(t *testing.T) {
	tests := []struct {
		name string
		pkg  Package
		want string
	}{
		{
			name: "with dependencies",
			pkg:  Package{Name: "bash", Depends: []string{"readline", "glibc>=2.38"}},
			want: "bash: readline glibc>=2.38",
		},
		{
			name: "no dependencies",
			pkg:  Package{Name: "filesystem", Depends: []string{}},
			want: "filesystem",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pkg.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPackageJSON(t *testing.T) {
	pkg := Package{Name: "filesystem", Depends: []string{}}
	data, err := json.Marshal(pkg)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	// An empty dependency list must encode as [], not null.
	want := `{"name":"filesystem","depends":[]}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}
