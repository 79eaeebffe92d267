// Copyright (c) 2026 Archlinux AI
// alai - Arch Linux package metadata query tool
// This source code is licensed under the Apache-2.0 license found in the LICENSE file.

package main

import "testing"

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()

	if cmd.Use != "alai" {
		t.Errorf("Use = %q, want alai", cmd.Use)
	}

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	for _, want := range []string{"query", "repos"} {
		found := false
		for _, name := range names {
			if name == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered (have %v)", want, names)
		}
	}

	for _, flag := range []string{"config", "pacman-conf", "root-dir", "db-path", "repo", "lang", "debug"} {
		if cmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("persistent flag %q not defined", flag)
		}
	}
}

func TestQueryCmdArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"query"})
	if err := cmd.Execute(); err == nil {
		t.Error("query without a package argument should fail")
	}
}
