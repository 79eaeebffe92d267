// Copyright (c) 2026 Archlinux AI
// alai - Arch Linux package metadata query tool
// This source code is licensed under the Apache-2.0 license found in the LICENSE file.

package core

import (
	"errors"
	"fmt"

	"github.com/archlinux-ai/alai/internal/config"
	"github.com/archlinux-ai/alai/internal/i18n"
	"github.com/archlinux-ai/alai/internal/logging"
	"github.com/archlinux-ai/alai/internal/model"
)

// ErrNotFound is returned when no registered repository satisfies a query.
// It is a normal outcome of the lookup, distinguishable from backend
// failures with errors.Is.
var ErrNotFound = errors.New("core: no package found")

// FindPackage resolves a package name or version constraint string to its
// canonical record. It opens its own session, registers the configured sync
// repositories in priority order, runs the satisfier lookup across all of
// them and copies the resulting name and dependency list into a record that
// stays valid after the session is released.
//
// The session and every registered source are released on every exit path.
// The constraint string is handed to the backend unvalidated; its
// interpretation (exact name, versioned constraint, provided-name alias) is
// the backend's.
func FindPackage(cfg *config.Config, name string) (*model.Package, error) {
	session, err := NewSession(cfg)
	if err != nil {
		return nil, err
	}
	defer func() { _ = session.Close() }()

	if err := session.RegisterSources(cfg.Repos); err != nil {
		return nil, err
	}

	handle := session.Handle()
	pkg, err := handle.FindDBsSatisfier(handle.SyncDBs(), name)
	if err != nil {
		return nil, fmt.Errorf("satisfier lookup for %q: %w", name, err)
	}
	if pkg == nil {
		logging.Warnf(i18n.T("query.no_package"))
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	// Copy each descriptor out of the backend's linked list before the
	// session goes away. Order is preserved, duplicates are kept, and a
	// package without dependencies yields an empty (not nil) slice.
	depends := make([]string, 0, pkg.DependsCount())
	for cell := pkg.Depends(); cell != nil; cell = cell.Next() {
		depends = append(depends, cell.Depend().String())
	}

	return &model.Package{Name: pkg.Name(), Depends: depends}, nil
}
