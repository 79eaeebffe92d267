// Copyright (c) 2026 Archlinux AI
// alai - Arch Linux package metadata query tool
// This source code is licensed under the Apache-2.0 license found in the LICENSE file.

package core

import (
	"errors"
	"fmt"

	"github.com/archlinux-ai/alai/internal/alpm"
	"github.com/archlinux-ai/alai/internal/config"
	"github.com/archlinux-ai/alai/internal/i18n"
	"github.com/archlinux-ai/alai/internal/logging"
)

// ErrSessionClosed is returned when a released session is used.
var ErrSessionClosed = errors.New("core: session closed")

// Session is the exclusive owner of one backend handle. It must not be
// copied and must not be shared between concurrent queries; each concurrent
// query opens its own session. Close releases the handle exactly once.
type Session struct {
	handle *alpm.Handle
}

// NewSession contacts the backend with the configured root and metadata
// store paths and returns a live session. Initialization failure is the only
// expected failure of the pipeline: it is logged with the backend-reported
// reason and returned as an error, never a panic.
func NewSession(cfg *config.Config) (*Session, error) {
	handle, err := alpm.Init(cfg.RootDir, cfg.DBPath)
	if err != nil {
		logging.Errorf(i18n.T("core.error_init_backend", err))
		return nil, fmt.Errorf("initialize backend: %w", err)
	}
	return &Session{handle: handle}, nil
}

// Handle returns the raw backend handle without transferring ownership.
func (s *Session) Handle() *alpm.Handle {
	if s == nil {
		return nil
	}
	return s.handle
}

// Close releases the backend handle. It is idempotent: closing a nil or
// already-closed session is a no-op.
func (s *Session) Close() error {
	if s == nil || s.handle == nil {
		return nil
	}
	err := s.handle.Release()
	s.handle = nil
	return err
}

// RegisterSource registers one sync repository under the given label and
// trust policy and marks it usable for everything (sync, search, install).
// Unlike the backend call it wraps, a registration failure is reported
// instead of silently continuing with a partial source set.
func (s *Session) RegisterSource(name string, level alpm.SigLevel) (*alpm.DB, error) {
	if s == nil || s.handle == nil {
		return nil, ErrSessionClosed
	}
	db, err := s.handle.RegisterSyncDB(name, level)
	if err != nil {
		return nil, fmt.Errorf("register sync repository %q: %w", name, err)
	}
	db.SetUsage(alpm.UsageAll)
	return db, nil
}

// RegisterSources registers the configured repositories in order. The order
// defines lookup priority. The first failure aborts registration.
func (s *Session) RegisterSources(repos []config.Repo) error {
	for _, repo := range repos {
		level, err := alpm.ParseSigLevel(repo.SigLevel)
		if err != nil {
			return fmt.Errorf("sync repository %q: %w", repo.Name, err)
		}
		if _, err := s.RegisterSource(repo.Name, level); err != nil {
			logging.Errorf(i18n.T("core.error_register_source", repo.Name, err))
			return err
		}
	}
	return nil
}
