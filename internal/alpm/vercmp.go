// Copyright (c) 2026 Archlinux AI
// alai - Arch Linux package metadata query tool
// This source code is licensed under the Apache-2.0 license found in the LICENSE file.

package alpm

import "strings"

// VerCmp compares two pacman version strings of the form
// [epoch:]version[-pkgrel] and returns -1, 0 or 1. The epoch dominates, then
// the version, then the pkgrel; a missing pkgrel on either side makes the
// pkgrel comparison a tie.
func VerCmp(a, b string) int {
	if a == b {
		return 0
	}
	epochA, verA, relA := splitEVR(a)
	epochB, verB, relB := splitEVR(b)

	if r := rpmVerCmp(epochA, epochB); r != 0 {
		return r
	}
	if r := rpmVerCmp(verA, verB); r != 0 {
		return r
	}
	if relA != "" && relB != "" {
		return rpmVerCmp(relA, relB)
	}
	return 0
}

// splitEVR splits a full version string into epoch, version and pkgrel.
// A missing epoch counts as "0"; a missing pkgrel stays empty.
func splitEVR(s string) (epoch, version, rel string) {
	epoch = "0"
	if ix := strings.IndexByte(s, ':'); ix >= 0 {
		if ix > 0 {
			epoch = s[:ix]
		}
		s = s[ix+1:]
	}
	if ix := strings.LastIndexByte(s, '-'); ix >= 0 {
		version, rel = s[:ix], s[ix+1:]
	} else {
		version = s
	}
	return epoch, version, rel
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlnum(c byte) bool { return isDigit(c) || isAlpha(c) }

// rpmVerCmp walks both strings segment by segment, where a segment is a
// maximal run of digits or of letters. Numeric segments compare as numbers
// and always win against alphabetic segments. Separator runs of different
// lengths decide the comparison before the segments they precede.
func rpmVerCmp(a, b string) int {
	if a == b {
		return 0
	}
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		startI, startJ := i, j
		for i < len(a) && !isAlnum(a[i]) {
			i++
		}
		for j < len(b) && !isAlnum(b[j]) {
			j++
		}
		if i >= len(a) || j >= len(b) {
			break
		}
		if i-startI != j-startJ {
			if i-startI < j-startJ {
				return -1
			}
			return 1
		}

		segI, segJ := i, j
		numeric := isDigit(a[i])
		if numeric {
			for i < len(a) && isDigit(a[i]) {
				i++
			}
			for j < len(b) && isDigit(b[j]) {
				j++
			}
		} else {
			for i < len(a) && isAlpha(a[i]) {
				i++
			}
			for j < len(b) && isAlpha(b[j]) {
				j++
			}
		}
		// A numeric segment is always newer than an alphabetic one.
		if segJ == j {
			if numeric {
				return 1
			}
			return -1
		}

		one, two := a[segI:i], b[segJ:j]
		if numeric {
			one = strings.TrimLeft(one, "0")
			two = strings.TrimLeft(two, "0")
			if len(one) != len(two) {
				if len(one) < len(two) {
					return -1
				}
				return 1
			}
		}
		if r := strings.Compare(one, two); r != 0 {
			return r
		}
	}

	// Identical segments with different tails: a remaining alphabetic
	// suffix never beats an empty string ("1.0a" is older than "1.0").
	if i >= len(a) && j >= len(b) {
		return 0
	}
	if (i >= len(a) && !isAlpha(b[j])) || (i < len(a) && isAlpha(a[i])) {
		return -1
	}
	return 1
}
