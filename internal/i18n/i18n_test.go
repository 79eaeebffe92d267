// Copyright (c) 2026 Archlinux AI
// alai - Arch Linux package metadata query tool
// This source code is licensed under the Apache-2.0 license found in the LICENSE file.

package i18n

import (
	"strings"
	"testing"
)

func TestTKnownMessage(t *testing.T) {
	Init("en")
	got := T("query.no_package")
	if got != "no package" {
		t.Errorf("T(query.no_package) = %q", got)
	}
}

func TestTFormatsArguments(t *testing.T) {
	Init("en")
	got := T("query.cli_no_result", "glibc")
	if !strings.Contains(got, "glibc") {
		t.Errorf("T(query.cli_no_result, glibc) = %q, want the name interpolated", got)
	}
}

func TestTUnknownMessageFallsBackToID(t *testing.T) {
	Init("en")
	if got := T("does.not.exist"); got != "does.not.exist" {
		t.Errorf("T(unknown) = %q, want the ID itself", got)
	}
}

func TestTWithoutInitDefaultsToEnglish(t *testing.T) {
	localizer = nil
	if got := T("query.no_package"); got != "no package" {
		t.Errorf("T() without Init = %q", got)
	}
}

func TestSetLang(t *testing.T) {
	SetLang("de")
	defer SetLang("en")
	if got := T("query.no_package"); got != "kein Paket" {
		t.Errorf("T(query.no_package) in de = %q", got)
	}
}
