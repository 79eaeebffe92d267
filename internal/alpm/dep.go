// Copyright (c) 2026 Archlinux AI
// alai - Arch Linux package metadata query tool
// This source code is licensed under the Apache-2.0 license found in the LICENSE file.

package alpm

import (
	"errors"
	"strings"
)

// DepMod is the comparison operator of a dependency specification.
type DepMod int

const (
	// DepModAny matches any version.
	DepModAny DepMod = iota
	// DepModEQ matches an exact version.
	DepModEQ
	// DepModGE matches the given version or newer.
	DepModGE
	// DepModLE matches the given version or older.
	DepModLE
	// DepModGT matches strictly newer versions.
	DepModGT
	// DepModLT matches strictly older versions.
	DepModLT
)

// String returns the operator token used in dependency specification strings.
func (m DepMod) String() string {
	switch m {
	case DepModEQ:
		return "="
	case DepModGE:
		return ">="
	case DepModLE:
		return "<="
	case DepModGT:
		return ">"
	case DepModLT:
		return "<"
	default:
		return ""
	}
}

// Depend is a parsed dependency descriptor: a package name plus an optional
// version constraint.
type Depend struct {
	Name    string
	Version string
	Mod     DepMod
}

// depOps is ordered so that two-character operators are tried before their
// one-character prefixes.
var depOps = []struct {
	token string
	mod   DepMod
}{
	{">=", DepModGE},
	{"<=", DepModLE},
	{">", DepModGT},
	{"<", DepModLT},
	{"=", DepModEQ},
}

// ParseDepend parses a dependency specification string such as "glibc",
// "bash=5.2" or "linux>=6.1". Malformed constraint strings are not
// second-guessed beyond the minimal shape checks here; the satisfier's
// matching rules govern what the result means.
func ParseDepend(s string) (*Depend, error) {
	s = strings.TrimSpace(s)
	// An optional trailing description ("name>=1.2: reason") is not part of
	// the constraint.
	if ix := strings.Index(s, ": "); ix >= 0 {
		s = strings.TrimSpace(s[:ix])
	}
	if s == "" {
		return nil, errors.New("alpm: empty dependency string")
	}
	for _, op := range depOps {
		ix := strings.Index(s, op.token)
		if ix < 0 {
			continue
		}
		name := s[:ix]
		version := s[ix+len(op.token):]
		if name == "" || version == "" {
			return nil, errors.New("alpm: malformed dependency string: " + s)
		}
		return &Depend{Name: name, Version: version, Mod: op.mod}, nil
	}
	return &Depend{Name: s, Mod: DepModAny}, nil
}

// String computes the canonical dependency specification string, the same
// representation the backend reports in dependency lists.
func (d *Depend) String() string {
	if d.Mod == DepModAny {
		return d.Name
	}
	return d.Name + d.Mod.String() + d.Version
}

// satisfiedBy reports whether a package with the given name and version
// satisfies the dependency.
func (d *Depend) satisfiedBy(name, version string) bool {
	if name != d.Name {
		return false
	}
	return d.versionMatches(version)
}

// versionMatches checks only the version constraint, ignoring the name.
func (d *Depend) versionMatches(version string) bool {
	if d.Mod == DepModAny {
		return true
	}
	cmp := VerCmp(version, d.Version)
	switch d.Mod {
	case DepModEQ:
		return cmp == 0
	case DepModGE:
		return cmp >= 0
	case DepModLE:
		return cmp <= 0
	case DepModGT:
		return cmp > 0
	case DepModLT:
		return cmp < 0
	}
	return false
}

// satisfiedByProvide reports whether a provide entry satisfies the
// dependency. An unversioned provide only satisfies unversioned
// dependencies; a versioned provide is compared with VerCmp.
func (d *Depend) satisfiedByProvide(prov *Depend) bool {
	if prov.Name != d.Name {
		return false
	}
	if d.Mod == DepModAny {
		return true
	}
	if prov.Mod == DepModAny {
		return false
	}
	return d.versionMatches(prov.Version)
}
