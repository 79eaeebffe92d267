// Copyright (c) 2026 Archlinux AI
// alai - Arch Linux package metadata query tool
// This source code is licensed under the Apache-2.0 license found in the LICENSE file.

package alpm

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	// ErrHandleReleased is returned when a handle is used after Release.
	ErrHandleReleased = errors.New("alpm: handle already released")
	// ErrDBRegistered is returned when a sync database label is registered twice.
	ErrDBRegistered = errors.New("alpm: sync database already registered")
)

// Handle owns access to one pacman database tree. A Handle is not safe for
// concurrent use; callers that need parallel lookups must each initialize
// their own handle.
type Handle struct {
	root     string
	dbPath   string
	dbs      []*DB
	released bool
}

// Init opens a handle against the database tree rooted at root with the
// metadata store at dbPath. It fails if the metadata store is not an
// accessible directory, reporting the underlying reason.
func Init(root, dbPath string) (*Handle, error) {
	if root == "" || dbPath == "" {
		return nil, errors.New("alpm: root and database path must not be empty")
	}
	info, err := os.Stat(dbPath)
	if err != nil {
		return nil, fmt.Errorf("alpm: cannot access database path %q: %w", dbPath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("alpm: database path %q is not a directory", dbPath)
	}
	return &Handle{root: root, dbPath: dbPath}, nil
}

// Root returns the filesystem root the handle was initialized with.
func (h *Handle) Root() string { return h.root }

// DBPath returns the metadata store path the handle was initialized with.
func (h *Handle) DBPath() string { return h.dbPath }

// Release frees the handle and every database registered on it. Release is
// idempotent: releasing an already-released or nil handle is a no-op.
func (h *Handle) Release() error {
	if h == nil || h.released {
		return nil
	}
	h.released = true
	h.dbs = nil
	return nil
}

// RegisterSyncDB registers a sync repository under the given label and trust
// policy. The database contents are loaded lazily on first lookup.
// Registering the same label twice is an error.
func (h *Handle) RegisterSyncDB(name string, level SigLevel) (*DB, error) {
	if h == nil || h.released {
		return nil, ErrHandleReleased
	}
	if name == "" || strings.ContainsAny(name, "/\\") {
		return nil, fmt.Errorf("alpm: invalid sync database name %q", name)
	}
	for _, db := range h.dbs {
		if db.name == name {
			return nil, fmt.Errorf("%w: %s", ErrDBRegistered, name)
		}
	}
	db := &DB{handle: h, name: name, sigLevel: level}
	h.dbs = append(h.dbs, db)
	return db, nil
}

// SyncDBs returns the registered sync databases in registration order. The
// returned slice is a copy; the registration set itself is owned by the
// handle.
func (h *Handle) SyncDBs() []*DB {
	if h == nil || h.released {
		return nil
	}
	dbs := make([]*DB, len(h.dbs))
	copy(dbs, h.dbs)
	return dbs
}
