// Copyright (c) 2026 Archlinux AI
// alai - Arch Linux package metadata query tool
// This source code is licensed under the Apache-2.0 license found in the LICENSE file.

// Package model holds the plain value types alai returns to callers. The
// types carry no references into the backend, so they stay valid after the
// session that produced them is released.
package model

import "strings"

// Package is the owned, detached result of a package lookup: the canonical
// package name and its immediate declared runtime dependencies.
type Package struct {
	// Name is the resolved canonical name, which may differ from the alias
	// or provided name used in the query.
	Name string `json:"name"`
	// Depends lists the dependency specification strings in declaration
	// order, neither sorted nor deduplicated. Empty means the package
	// declares no dependencies.
	Depends []string `json:"depends"`
}

// String renders the record as "name: dep1 dep2 ...".
func (p Package) String() string {
	if len(p.Depends) == 0 {
		return p.Name
	}
	return p.Name + ": " + strings.Join(p.Depends, " ")
}
