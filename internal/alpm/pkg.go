// Copyright (c) 2026 Archlinux AI
// alai - Arch Linux package metadata query tool
// This source code is licensed under the Apache-2.0 license found in the LICENSE file.

package alpm

// DepCell is one node of a package's dependency list. Dependency descriptors
// are kept as a singly linked, forward-only sequence owned by the backend;
// callers walk it with Next and copy out what they need. The cells are
// invalidated together with the package they belong to, so references into
// the list must not outlive the handle.
type DepCell struct {
	dep  *Depend
	next *DepCell
}

// Depend returns the dependency descriptor stored in this cell.
func (c *DepCell) Depend() *Depend { return c.dep }

// Next returns the following cell, or nil at the end of the sequence.
func (c *DepCell) Next() *DepCell { return c.next }

// Pkg is a package entry of a sync database. All accessors return data owned
// by the backend.
type Pkg struct {
	db       *DB
	name     string
	base     string
	version  string
	desc     string
	arch     string
	depends  *DepCell
	ndeps    int
	provides []*Depend
}

// Name returns the canonical package name.
func (p *Pkg) Name() string { return p.name }

// Base returns the package base, or the empty string when not declared.
func (p *Pkg) Base() string { return p.base }

// Version returns the full version string (epoch:version-pkgrel).
func (p *Pkg) Version() string { return p.version }

// Description returns the one-line package description.
func (p *Pkg) Description() string { return p.desc }

// Arch returns the package architecture.
func (p *Pkg) Arch() string { return p.arch }

// DB returns the sync database the package was resolved from.
func (p *Pkg) DB() *DB { return p.db }

// Depends returns the head of the declared dependency list in declaration
// order, or nil when the package has no dependencies.
func (p *Pkg) Depends() *DepCell { return p.depends }

// DependsCount returns the length of the dependency list.
func (p *Pkg) DependsCount() int { return p.ndeps }

// Provides returns the declared provide entries in declaration order.
func (p *Pkg) Provides() []*Depend { return p.provides }

// appendDepend adds a dependency descriptor at the tail of the list,
// preserving declaration order.
func (p *Pkg) appendDepend(d *Depend) {
	cell := &DepCell{dep: d}
	if p.depends == nil {
		p.depends = cell
	} else {
		tail := p.depends
		for tail.next != nil {
			tail = tail.next
		}
		tail.next = cell
	}
	p.ndeps++
}
