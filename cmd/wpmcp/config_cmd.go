package main

import (
	"fmt"
	"os"

	"wpmcp/internal/config"
	"wpmcp/internal/credentials"

	"github.com/spf13/cobra"
)

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create and inspect the configuration file",
	}

	cmd.AddCommand(a.configInitCmd())

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration (password masked)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			path := a.resolvedConfigPath()
			if _, err := os.Stat(path); err != nil {
				path += " (not found)"
			}
			printField(w, "Config file", path)
			printField(w, "Site URL", orUnset(cfg.SiteURL))
			printField(w, "Username", orUnset(cfg.Username))
			if cfg.ApplicationPassword == "" {
				printField(w, "Password", orUnset(""))
			} else {
				printField(w, "Password", fmt.Sprintf("%s (from %s)", cfg.MaskedPassword(), cfg.PasswordSource))
			}
			if cfg.RequestTimeout > 0 {
				printField(w, "Request timeout", cfg.RequestTimeout.String())
			} else {
				printField(w, "Request timeout", "none")
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show config file path",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), a.resolvedConfigPath())
		},
	})

	return cmd
}

func (a *app) configInitCmd() *cobra.Command {
	var (
		siteURL  string
		username string
		password string
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file for a WordPress site",
		Long: `Writes the site URL and username to the config file. When --password is
given the application password is stored in the system keyring, or in the
config file (mode 0600) if no keyring is available.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.resolvedConfigPath()
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
			}

			if password != "" {
				if err := credentials.ValidateApplicationPassword(password); err != nil {
					return fmt.Errorf("invalid application password: %w", err)
				}
			}

			cfg, err := config.CreateNewConfig(path, siteURL, username)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, SuccessStyle.Render("Configuration written to "+path))

			if password == "" {
				fmt.Fprintln(w, HelpStyle.Render("Run 'wpmcp credentials set' or set APPLICATION_PASSWORD to add the password."))
				return nil
			}

			if err := a.store.Store(username, password); err != nil {
				a.logger.Warn("Keyring unavailable, storing password in config file", "error", err)
				cfg.ApplicationPassword = password
				cfg.PasswordSource = config.SourceFile
				if err := cfg.SaveTo(path); err != nil {
					return err
				}
				fmt.Fprintln(w, WarningStyle.Render("Application password saved in the config file"))
				return nil
			}
			fmt.Fprintln(w, SuccessStyle.Render("Application password saved in the system keyring"))
			return nil
		},
	}

	cmd.Flags().StringVar(&siteURL, "url", "", "WordPress site URL, e.g. https://example.com")
	cmd.Flags().StringVar(&username, "username", "", "WordPress username")
	cmd.Flags().StringVar(&password, "password", "", "application password")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	_ = cmd.MarkFlagRequired("url")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func orUnset(v string) string {
	if v == "" {
		return HelpStyle.Render("(not set)")
	}
	return v
}
