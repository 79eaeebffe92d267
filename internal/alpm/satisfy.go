// Copyright (c) 2026 Archlinux AI
// alai - Arch Linux package metadata query tool
// This source code is licensed under the Apache-2.0 license found in the LICENSE file.

package alpm

// FindDBsSatisfier resolves a dependency specification string to the first
// package among the given databases that satisfies it. Databases are
// searched in the order given, which makes registration order the priority
// order; databases without search usage are skipped. A nil result with a nil
// error means no registered database can satisfy the constraint.
//
// The string is interpreted by ParseDepend: a bare name, a provided-name
// alias or a versioned constraint. No local validation happens beyond that.
func (h *Handle) FindDBsSatisfier(dbs []*DB, depstring string) (*Pkg, error) {
	if h == nil || h.released {
		return nil, ErrHandleReleased
	}
	dep, err := ParseDepend(depstring)
	if err != nil {
		return nil, err
	}
	for _, db := range dbs {
		if db.usage&UsageSearch == 0 {
			continue
		}
		pkg, err := db.satisfier(dep)
		if err != nil {
			return nil, err
		}
		if pkg != nil {
			return pkg, nil
		}
	}
	return nil, nil
}
