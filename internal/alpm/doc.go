// Copyright (c) 2026 Archlinux AI
// alai - Arch Linux package metadata query tool
// This source code is licensed under the Apache-2.0 license found in the LICENSE file.

// Package alpm implements the package-metadata backend for alai. It reads
// pacman's on-disk sync databases and exposes the small contract the rest
// of the application depends on: initialize a handle, register sync
// repositories, resolve a name or version constraint to a concrete package
// (the satisfier lookup), and release the handle.
//
// The observable surface deliberately mirrors libalpm: trust and usage
// policies are bit-level flags, dependency descriptors of a package form a
// singly linked sequence, and sync databases are searched in registration
// order.
package alpm // import "github.com/archlinux-ai/alai/internal/alpm"
