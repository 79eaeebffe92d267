// Copyright (c) 2026 Archlinux AI
// alai - Arch Linux package metadata query tool
// This source code is licensed under the Apache-2.0 license found in the LICENSE file.

package alpm

import (
	"archive/tar"
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// DB is a registered sync repository. Its contents are read from
// <dbpath>/sync/<name>.db on first access and cached on the database for the
// lifetime of the owning handle.
type DB struct {
	handle   *Handle
	name     string
	sigLevel SigLevel
	usage    Usage

	loaded bool
	pkgs   []*Pkg
	byName map[string]*Pkg
}

// Name returns the repository label the database was registered under.
func (db *DB) Name() string { return db.name }

// SigLevel returns the trust policy the database was registered with.
func (db *DB) SigLevel() SigLevel { return db.sigLevel }

// Usage returns the usage policy of the database.
func (db *DB) Usage() Usage { return db.usage }

// SetUsage declares what the database may be used for.
func (db *DB) SetUsage(u Usage) { db.usage = u }

// Pkg returns the package with the exact given name, or nil when the
// database does not contain it.
func (db *DB) Pkg(name string) (*Pkg, error) {
	if err := db.load(); err != nil {
		return nil, err
	}
	return db.byName[name], nil
}

// PkgCache returns every package of the database in archive order.
func (db *DB) PkgCache() ([]*Pkg, error) {
	if err := db.load(); err != nil {
		return nil, err
	}
	return db.pkgs, nil
}

// satisfier returns the first package of this database satisfying dep: an
// exact name match checked against the version constraint first, then a
// provider scan in archive order.
func (db *DB) satisfier(dep *Depend) (*Pkg, error) {
	if err := db.load(); err != nil {
		return nil, err
	}
	if p := db.byName[dep.Name]; p != nil && dep.satisfiedBy(p.name, p.version) {
		return p, nil
	}
	for _, p := range db.pkgs {
		for _, prov := range p.provides {
			if dep.satisfiedByProvide(prov) {
				return p, nil
			}
		}
	}
	return nil, nil
}

// load reads the sync database archive once. The archive is a gzip
// compressed tar of one desc file per package.
func (db *DB) load() error {
	if db.loaded {
		return nil
	}
	path := filepath.Join(db.handle.dbPath, "sync", db.name+".db")
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("alpm: open sync database %s: %w", db.name, err)
	}
	defer func() { _ = f.Close() }()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return fmt.Errorf("alpm: decompress sync database %s: %w", db.name, err)
	}
	defer func() { _ = zr.Close() }()

	db.byName = make(map[string]*Pkg)
	tr := tar.NewReader(zr)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("alpm: read sync database %s: %w", db.name, err)
		}
		if hdr.Typeflag != tar.TypeReg || filepath.Base(hdr.Name) != "desc" {
			continue
		}
		pkg, err := parseDesc(tr)
		if err != nil {
			return fmt.Errorf("alpm: parse %s in sync database %s: %w", hdr.Name, db.name, err)
		}
		if pkg.name == "" {
			return fmt.Errorf("alpm: entry %s in sync database %s has no name", hdr.Name, db.name)
		}
		pkg.db = db
		db.pkgs = append(db.pkgs, pkg)
		db.byName[pkg.name] = pkg
	}
	db.loaded = true
	return nil
}

// parseDesc reads one desc entry: %SECTION% headers followed by one value
// per line, sections separated by blank lines.
func parseDesc(r io.Reader) (*Pkg, error) {
	pkg := &Pkg{}
	section := ""
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "%") && strings.HasSuffix(line, "%") {
			section = line
			continue
		}
		switch section {
		case "%NAME%":
			pkg.name = line
		case "%BASE%":
			pkg.base = line
		case "%VERSION%":
			pkg.version = line
		case "%DESC%":
			if pkg.desc == "" {
				pkg.desc = line
			}
		case "%ARCH%":
			pkg.arch = line
		case "%DEPENDS%":
			dep, err := ParseDepend(line)
			if err != nil {
				return nil, err
			}
			pkg.appendDepend(dep)
		case "%PROVIDES%":
			prov, err := ParseDepend(line)
			if err != nil {
				return nil, err
			}
			pkg.provides = append(pkg.provides, prov)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return pkg, nil
}
