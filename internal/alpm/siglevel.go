// Copyright (c) 2026 Archlinux AI
// alai - Arch Linux package metadata query tool
// This source code is licensed under the Apache-2.0 license found in the LICENSE file.

package alpm

import "fmt"

// SigLevel is a bit-level signature verification policy. The bit layout
// follows libalpm so that policies compose the same way: package bits in the
// low byte, database bits shifted by ten.
type SigLevel int

const (
	// SigNone disables signature checking entirely.
	SigNone SigLevel = 0

	// SigPackage requires package signatures.
	SigPackage SigLevel = 1 << 0
	// SigPackageOptional tolerates missing package signatures.
	SigPackageOptional SigLevel = 1 << 1

	// SigDatabase requires database signatures.
	SigDatabase SigLevel = 1 << 10
	// SigDatabaseOptional tolerates missing database signatures.
	SigDatabaseOptional SigLevel = 1 << 11

	// SigUseDefault defers to the handle-wide policy.
	SigUseDefault SigLevel = 1 << 30
)

// ParseSigLevel maps a configuration trust-policy string to its bit-level
// policy. "optional" is the default policy of the query pipeline: require a
// database signature but accept its absence.
func ParseSigLevel(s string) (SigLevel, error) {
	switch s {
	case "never":
		return SigNone, nil
	case "optional", "":
		return SigDatabase | SigDatabaseOptional, nil
	case "required", "always":
		return SigDatabase, nil
	default:
		return SigNone, fmt.Errorf("alpm: unknown signature level %q", s)
	}
}

// Usage declares what a sync database may be used for.
type Usage int

const (
	// UsageSync allows using the database for syncing metadata.
	UsageSync Usage = 1 << 0
	// UsageSearch allows searching the database.
	UsageSearch Usage = 1 << 1
	// UsageInstall allows installing from the database.
	UsageInstall Usage = 1 << 2
	// UsageUpgrade allows upgrading from the database.
	UsageUpgrade Usage = 1 << 3
	// UsageAll combines every usage.
	UsageAll = UsageSync | UsageSearch | UsageInstall | UsageUpgrade
)
