// Copyright (c) 2026 Archlinux AI
// alai - Arch Linux package metadata query tool
// This source code is licensed under the Apache-2.0 license found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// chdir changes the working directory for the duration of the test,
// restoring the original directory on cleanup (t.Chdir needs Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func TestDefault(t *testing.T) {
	c := Default()
	if c.RootDir != "/" {
		t.Errorf("RootDir = %q, want /", c.RootDir)
	}
	if c.DBPath != "/var/lib/pacman/" {
		t.Errorf("DBPath = %q, want /var/lib/pacman/", c.DBPath)
	}
	want := []Repo{
		{Name: "core", SigLevel: "optional"},
		{Name: "extra", SigLevel: "optional"},
	}
	if !reflect.DeepEqual(c.Repos, want) {
		t.Errorf("Repos = %+v, want %+v", c.Repos, want)
	}
	if c.Language != "en" {
		t.Errorf("Language = %q, want en", c.Language)
	}
}

func TestLoadExplicitFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	cfgFile := filepath.Join(dir, "custom.yaml")
	content := `root_dir: /mnt/arch
db_path: /mnt/arch/var/lib/pacman/
language: de
repos:
  - name: core
    siglevel: required
  - name: testing
`
	if err := os.WriteFile(cfgFile, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(nil, &cfgFile)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.RootDir != "/mnt/arch" {
		t.Errorf("RootDir = %q", c.RootDir)
	}
	if c.DBPath != "/mnt/arch/var/lib/pacman/" {
		t.Errorf("DBPath = %q", c.DBPath)
	}
	if c.Language != "de" {
		t.Errorf("Language = %q", c.Language)
	}
	want := []Repo{
		{Name: "core", SigLevel: "required"},
		// A repo without an explicit trust policy gets the default one.
		{Name: "testing", SigLevel: "optional"},
	}
	if !reflect.DeepEqual(c.Repos, want) {
		t.Errorf("Repos = %+v, want %+v", c.Repos, want)
	}
}

func TestLoadWithoutFile(t *testing.T) {
	chdir(t, t.TempDir())

	c, err := Load(nil, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.RootDir != DefaultRootDir || c.DBPath != DefaultDBPath {
		t.Errorf("defaults not applied: %+v", c)
	}
	if !reflect.DeepEqual(c.Repos, DefaultRepos()) {
		t.Errorf("Repos = %+v, want defaults", c.Repos)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ALAI_DB_PATH", "/tmp/pacman-env/")

	c, err := Load(nil, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.DBPath != "/tmp/pacman-env/" {
		t.Errorf("DBPath = %q, want env override", c.DBPath)
	}
}
