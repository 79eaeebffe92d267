// Copyright (c) 2026 Archlinux AI
// alai - Arch Linux package metadata query tool
// This source code is licensed under the Apache-2.0 license found in the LICENSE file.

// Package config loads the alai configuration. Every value the query
// pipeline depends on is an explicit field with a documented default; there
// is no hidden global state. Precedence is defaults, then an optional
// alai.yaml file, then ALAI_* environment variables, then bound CLI flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Defaults for the query pipeline. The database path mirrors pacman's stock
// layout; LoadPacmanConf derives it from pacman's own configuration instead.
const (
	DefaultRootDir  = "/"
	DefaultDBPath   = "/var/lib/pacman/"
	DefaultSigLevel = "optional"
	DefaultLanguage = "en"
)

// Repo describes one sync repository to register, in priority order.
type Repo struct {
	// Name is the repository label, e.g. "core".
	Name string `mapstructure:"name" yaml:"name"`
	// SigLevel is the trust policy: "never", "optional" or "required".
	// "optional" requires a database signature but tolerates its absence.
	SigLevel string `mapstructure:"siglevel" yaml:"siglevel"`
}

// Config carries the settings of one query pipeline run.
type Config struct {
	// RootDir is the filesystem root the backend operates under.
	RootDir string `mapstructure:"root_dir" yaml:"root_dir"`
	// DBPath is the pacman metadata store directory.
	DBPath string `mapstructure:"db_path" yaml:"db_path"`
	// Repos are the sync repositories to register, in priority order.
	Repos []Repo `mapstructure:"repos" yaml:"repos"`
	// Language selects the CLI output language ("en", "de").
	Language string `mapstructure:"language" yaml:"language"`
}

// Default returns the built-in configuration: pacman's stock paths and the
// fixed core/extra repository pair.
func Default() *Config {
	return &Config{
		RootDir:  DefaultRootDir,
		DBPath:   DefaultDBPath,
		Repos:    DefaultRepos(),
		Language: DefaultLanguage,
	}
}

// DefaultRepos returns the default ordered source set.
func DefaultRepos() []Repo {
	return []Repo{
		{Name: "core", SigLevel: DefaultSigLevel},
		{Name: "extra", SigLevel: DefaultSigLevel},
	}
}

// getConfigPath returns the full path for the configuration file.
func getConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Alai")
		default: // Linux, macOS, etc.
			configDir = "/etc/alai"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "alai")
	}

	return filepath.Join(configDir, "alai.yaml"), nil
}

// Load builds the configuration for a command invocation. cfgFile may point
// at an explicit config file (highest file precedence); when nil or empty,
// the standard locations are searched.
func Load(cmd *cobra.Command, cfgFile *string) (*Config, error) {
	c := Default()
	v := viper.New()

	// 1. Set defaults.
	v.SetDefault("root_dir", DefaultRootDir)
	v.SetDefault("db_path", DefaultDBPath)
	v.SetDefault("language", DefaultLanguage)

	// 2. Set up file search (alai.yaml).
	v.SetConfigName("alai")
	v.SetConfigType("yaml")

	// 3. Explicit config file from the --config flag takes precedence.
	if cfgFile != nil && *cfgFile != "" {
		v.SetConfigFile(*cfgFile)
	}

	// 4. Standard config locations.
	if userConfigPath, err := getConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := getConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	// 5. Read the config file if one exists.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// 6. Environment variables.
	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix("alai")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 7. CLI flags. Bound explicitly so the flag spelling stays independent
	// of the config keys.
	if cmd != nil {
		for flagName, key := range map[string]string{
			"root-dir": "root_dir",
			"db-path":  "db_path",
			"lang":     "language",
		} {
			if f := cmd.Flags().Lookup(flagName); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	if err := v.Unmarshal(c); err != nil {
		return nil, err
	}
	if len(c.Repos) == 0 {
		c.Repos = DefaultRepos()
	}
	for i := range c.Repos {
		if c.Repos[i].SigLevel == "" {
			c.Repos[i].SigLevel = DefaultSigLevel
		}
	}
	return c, nil
}
