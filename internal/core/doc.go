// Copyright (c) 2026 Archlinux AI
// alai - Arch Linux package metadata query tool
// This source code is licensed under the Apache-2.0 license found in the LICENSE file.

// Package core implements the two-step query pipeline: a database Session
// that owns the backend handle and the registered sync repositories, and a
// package query that resolves a name or version constraint to a detached
// package record.
package core // import "github.com/archlinux-ai/alai/internal/core"
