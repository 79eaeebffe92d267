// Copyright (c) 2026 Archlinux AI
// alai - Arch Linux package metadata query tool
// This source code is licensed under the Apache-2.0 license found in the LICENSE file.

// main.go sets up the command-line interface for alai using the Cobra
// library. It defines the root command, the query and repos subcommands,
// flags, and the main entry point for execution.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/archlinux-ai/alai/internal/config"
	"github.com/archlinux-ai/alai/internal/core"
	"github.com/archlinux-ai/alai/internal/i18n"
	"github.com/archlinux-ai/alai/internal/logging"
	"github.com/archlinux-ai/alai/internal/model"
)

var version = "dev" // this will be set by the linker

var (
	cfgFile    string
	pacmanConf string
	repoFlags  []string
	debug      bool

	cfg *config.Config
)

// main is the entry point of the application.
func main() {
	if err := rootCmd.Execute(); err != nil {
		// The error is already printed by Cobra on failure.
		os.Exit(1)
	}
}

var rootCmd *cobra.Command

func init() {
	rootCmd = newRootCmd()
}

// newRootCmd creates and configures a new root cobra command. This function
// is used to create the main application command as well as fresh instances
// for isolated testing.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alai",
		Short: "alai resolves packages against the local pacman metadata database.",
		Long: `alai queries the local pacman sync databases. Given a package name or a
version constraint, it resolves the canonical package across the registered
repositories and prints the package's declared runtime dependencies.

The repositories, database path and filesystem root come from alai.yaml,
ALAI_* environment variables or flags; --pacman-conf derives them from
pacman's own configuration instead.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if pacmanConf != "" {
				cfg, err = config.LoadPacmanConf(pacmanConf)
			} else {
				cfg, err = config.Load(cmd, &cfgFile)
			}
			if err != nil {
				return errors.New(i18n.T("query.cli_error_config", err))
			}
			// An explicit repo list overrides the configured source set,
			// keeping the configured order semantics: flag order is
			// priority order.
			if len(repoFlags) > 0 {
				repos := make([]config.Repo, 0, len(repoFlags))
				for _, name := range repoFlags {
					repos = append(repos, config.Repo{Name: name, SigLevel: config.DefaultSigLevel})
				}
				cfg.Repos = repos
			}
			i18n.Init(cfg.Language)
			logging.SetDebug(debug)
			return nil
		},
	}

	cmd.AddCommand(newQueryCmd())
	cmd.AddCommand(newReposCmd())

	cmd.Version = version

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is alai.yaml in the standard config directories)")
	cmd.PersistentFlags().StringVar(&pacmanConf, "pacman-conf", "", "derive paths and repositories from a pacman.conf file")
	cmd.PersistentFlags().String("root-dir", config.DefaultRootDir, "filesystem root for the backend")
	cmd.PersistentFlags().String("db-path", config.DefaultDBPath, "pacman metadata store directory")
	cmd.PersistentFlags().StringSliceVar(&repoFlags, "repo", nil, "sync repository to register (repeatable, in priority order)")
	cmd.PersistentFlags().String("lang", config.DefaultLanguage, `output language ("en", "de")`)
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	return cmd
}

// newQueryCmd builds the 'query' command. It performs the satisfier lookup
// and prints the resolved package record.
func newQueryCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "query <package>",
		Short: "Resolve a package and print its declared dependencies",
		Long: `Resolves a package name or version constraint (e.g. "bash" or "glibc>=2.38")
across the registered sync repositories and prints the canonical name with
the immediate declared dependency list, in declaration order.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			pkg, err := core.FindPackage(cfg, args[0])
			if err != nil {
				// Both infrastructure failure and not-found collapse to an
				// empty result at this boundary: one diagnostic, exit 1.
				if errors.Is(err, core.ErrNotFound) {
					log.Fatalf(i18n.T("query.cli_no_result", args[0]))
				}
				log.Fatalf("%v", err)
			}
			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(pkg); err != nil {
					log.Fatalf("%v", err)
				}
				return
			}
			printPackage(pkg)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the package record as JSON")
	return cmd
}

// newReposCmd builds the 'repos' command. It opens a session, registers the
// configured sources and lists them, without performing a lookup.
func newReposCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repos",
		Short: "List the sync repositories that queries run against",
		Run: func(cmd *cobra.Command, args []string) {
			session, err := core.NewSession(cfg)
			if err != nil {
				log.Fatalf(i18n.T("repos.cli_error_session", err))
			}
			defer func() { _ = session.Close() }()

			if err := session.RegisterSources(cfg.Repos); err != nil {
				log.Fatalf("%v", err)
			}
			fmt.Println(i18n.T("repos.cli_header"))
			for ix, db := range session.Handle().SyncDBs() {
				fmt.Println("  " + i18n.T("repos.cli_entry", db.Name(), cfg.Repos[ix].SigLevel))
			}
		},
	}
}

var (
	nameStyle   = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Faint(true)
)

// printPackage renders a package record for human consumption.
func printPackage(pkg *model.Package) {
	fmt.Println(nameStyle.Render(pkg.Name))
	if len(pkg.Depends) == 0 {
		fmt.Println(headerStyle.Render(i18n.T("query.cli_depends_none")))
		return
	}
	fmt.Println(headerStyle.Render(i18n.T("query.cli_depends_header", len(pkg.Depends))))
	for _, dep := range pkg.Depends {
		fmt.Println("  " + dep)
	}
}
