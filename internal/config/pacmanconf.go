// Copyright (c) 2026 Archlinux AI
// alai - Arch Linux package metadata query tool
// This source code is licensed under the Apache-2.0 license found in the LICENSE file.

package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// PacmanConf is the default location of pacman's own configuration.
const PacmanConf = "/etc/pacman.conf"

// pacmanSection is one [section] of pacman.conf with its options in file
// order. Sections other than [options] name sync repositories.
type pacmanSection struct {
	name    string
	options map[string]string
}

// LoadPacmanConf derives an alai configuration from pacman's configuration
// resolver instead of the built-in defaults: DBPath and RootDir come from
// the [options] section, and every repository section becomes a sync source
// in file order. Values absent from the file keep their defaults.
func LoadPacmanConf(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pacman config: %w", err)
	}
	defer func() { _ = f.Close() }()
	return parsePacmanConf(f)
}

func parsePacmanConf(r io.Reader) (*Config, error) {
	sections, err := splitPacmanSections(r)
	if err != nil {
		return nil, err
	}

	c := Default()
	c.Repos = nil
	for _, sec := range sections {
		if sec.name != "options" {
			c.Repos = append(c.Repos, Repo{
				Name:     sec.name,
				SigLevel: sigLevelFromPacman(sec.options["SigLevel"]),
			})
			continue
		}
		if val := sec.options["DBPath"]; val != "" {
			c.DBPath = val
		}
		if val := sec.options["RootDir"]; val != "" {
			c.RootDir = val
		}
	}
	if len(c.Repos) == 0 {
		c.Repos = DefaultRepos()
	}
	return c, nil
}

// splitPacmanSections parses the INI-like pacman.conf shape: [section]
// headers, key = value pairs, bare keys, comments starting with '#'.
// Include directives are not followed.
func splitPacmanSections(r io.Reader) ([]pacmanSection, error) {
	var sections []pacmanSection
	var current *pacmanSection

	sc := bufio.NewScanner(r)
	for lineno := 1; sc.Scan(); lineno++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			sections = append(sections, pacmanSection{
				name:    line[1 : len(line)-1],
				options: make(map[string]string),
			})
			current = &sections[len(sections)-1]
			continue
		}
		if current == nil {
			return nil, fmt.Errorf("pacman config line %d: option outside of a section", lineno)
		}
		key, val, _ := strings.Cut(line, "=")
		current.options[strings.TrimSpace(key)] = strings.TrimSpace(val)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return sections, nil
}

// sigLevelFromPacman collapses pacman's SigLevel word list onto the alai
// trust-policy strings.
func sigLevelFromPacman(s string) string {
	words := strings.Fields(s)
	for _, w := range words {
		if w == "Never" || w == "DatabaseNever" {
			return "never"
		}
	}
	for _, w := range words {
		if w == "Optional" || w == "DatabaseOptional" {
			return "optional"
		}
	}
	for _, w := range words {
		if w == "Required" || w == "DatabaseRequired" {
			return "required"
		}
	}
	return DefaultSigLevel
}
