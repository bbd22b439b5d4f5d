// Package main is the entry point for the wpmcp command.
//
// wpmcp exposes WordPress content-management operations as MCP tools. Run
// without a subcommand it serves them over stdin/stdout, which is how MCP
// clients launch it:
//
//	{"command": "wpmcp", "env": {"WORDPRESS_URL": "https://example.com", ...}}
//
// The startup sequence is:
//
// 1. Initialize logging (stderr, or a debug log file when DEBUG is set)
// 2. Resolve configuration from the config file, the environment and the keyring
// 3. Register the tools and serve MCP until EOF or a signal
//
// The remaining subcommands manage configuration and credentials, check a
// setup (doctor) and create drafts from markdown files.
package main

import (
	"fmt"
	"os"

	"wpmcp/internal/config"
	"wpmcp/internal/credentials"
	"wpmcp/internal/logging"
	"wpmcp/pkg/fileops"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var version = "1.0.0"

// app carries the state shared by all subcommands.
type app struct {
	logger *logging.AppLogger
	store  *credentials.Manager

	configPath string
	logLevel   string
	noColor    bool
}

func main() {
	appLogger := logging.NewAppLogger()

	if err := newRootCmd(appLogger).Execute(); err != nil {
		appLogger.Debug("Command failed", "error", err)
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func newRootCmd(logger *logging.AppLogger) *cobra.Command {
	a := &app{
		logger: logger,
		store:  credentials.NewManager(),
	}

	root := &cobra.Command{
		Use:   "wpmcp",
		Short: "WordPress tools for MCP clients",
		Long: `wpmcp serves WordPress post and category management as Model Context
Protocol tools. Without a subcommand it behaves like 'wpmcp serve'.

Settings come from the config file, then WORDPRESS_URL, WORDPRESS_USERNAME
and APPLICATION_PASSWORD, then the system keyring.`,
		Version:           version,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runServe(cmd, "")
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to config.yaml (default: $XDG_CONFIG_HOME/wpmcp/config.yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(a.serveCmd())
	root.AddCommand(a.configCmd())
	root.AddCommand(a.credentialsCmd())
	root.AddCommand(a.doctorCmd())
	root.AddCommand(a.draftCmd())
	root.AddCommand(a.clientConfigCmd())

	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	a.configPath = fileops.ExpandPath(a.configPath)
	if a.logLevel != "" {
		if err := a.logger.SetLevel(a.logLevel); err != nil {
			return err
		}
	}
	if a.noColor || os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	return nil
}

// loadConfig resolves the runtime configuration for the --config path.
func (a *app) loadConfig() (*config.Config, error) {
	cfg, err := config.Resolve(a.configPath, a.store)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// resolvedConfigPath returns the --config path or the standard location.
func (a *app) resolvedConfigPath() string {
	if a.configPath != "" {
		return a.configPath
	}
	path, _ := config.FindConfigFile()
	return path
}
