// Copyright (c) 2026 Archlinux AI
// alai - Arch Linux package metadata query tool
// This source code is licensed under the Apache-2.0 license found in the LICENSE file.

// Package testutil provides fixtures shared by tests: most importantly a
// writer for synthetic pacman sync databases, so backend and query tests can
// run against a real on-disk database tree in a temp directory.
package testutil

import (
	"archive/tar"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
)

// PkgEntry describes one package of a synthetic sync database.
type PkgEntry struct {
	Name     string
	Version  string
	Depends  []string
	Provides []string
}

// WriteSyncDB writes sync/<repo>.db under dbPath in pacman's sync-database
// format: a gzip-compressed tar archive with one desc file per package, in
// the given order.
func WriteSyncDB(t *testing.T, dbPath, repo string, pkgs []PkgEntry) {
	t.Helper()

	syncDir := filepath.Join(dbPath, "sync")
	if err := os.MkdirAll(syncDir, 0o755); err != nil {
		t.Fatalf("create sync dir: %v", err)
	}
	f, err := os.Create(filepath.Join(syncDir, repo+".db"))
	if err != nil {
		t.Fatalf("create sync db: %v", err)
	}
	defer func() { _ = f.Close() }()

	zw := gzip.NewWriter(f)
	tw := tar.NewWriter(zw)
	for _, pkg := range pkgs {
		desc := renderDesc(pkg)
		hdr := &tar.Header{
			Name:     pkg.Name + "-" + pkg.Version + "/desc",
			Mode:     0o644,
			Size:     int64(len(desc)),
			Typeflag: tar.TypeReg,
		}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatalf("write tar header for %s: %v", pkg.Name, err)
		}
		if _, err := tw.Write([]byte(desc)); err != nil {
			t.Fatalf("write desc for %s: %v", pkg.Name, err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("close tar writer: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close gzip writer: %v", err)
	}
}

func renderDesc(pkg PkgEntry) string {
	var b strings.Builder
	b.WriteString("%NAME%\n" + pkg.Name + "\n\n")
	b.WriteString("%VERSION%\n" + pkg.Version + "\n\n")
	if len(pkg.Depends) > 0 {
		b.WriteString("%DEPENDS%\n")
		for _, dep := range pkg.Depends {
			b.WriteString(dep + "\n")
		}
		b.WriteString("\n")
	}
	if len(pkg.Provides) > 0 {
		b.WriteString("%PROVIDES%\n")
		for _, prov := range pkg.Provides {
			b.WriteString(prov + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}
