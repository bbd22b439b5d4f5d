package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) credentialsCmd() *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "credentials",
		Short: "Manage the application password in the system keyring",
		Long: `Stores, removes and checks the WordPress application password kept in the
system keyring. The username defaults to the configured one.`,
	}
	cmd.PersistentFlags().StringVarP(&username, "username", "u", "", "WordPress username (default: from config)")

	var password string
	set := &cobra.Command{
		Use:   "set",
		Short: "Store an application password",
		Long: `Stores an application password for the user. Without --password the
password is read from the first line of stdin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.credentialUser(username)
			if err != nil {
				return err
			}
			if password == "" {
				if password, err = readLine(cmd.InOrStdin()); err != nil {
					return err
				}
			}
			if err := a.store.Store(user, password); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("Application password stored for "+user))
			return nil
		},
	}
	set.Flags().StringVar(&password, "password", "", "application password (default: read from stdin)")
	cmd.AddCommand(set)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete",
		Short: "Remove the stored application password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.credentialUser(username)
			if err != nil {
				return err
			}
			if err := a.store.Delete(user); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("Application password removed for "+user))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Check the keyring and whether a password is stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			status := a.store.Status()
			if available, _ := status["available"].(bool); available {
				printPass(w, "Keyring", "available")
			} else {
				printFail(w, "Keyring", fmt.Sprint(status["error"]))
			}

			user, err := a.credentialUser(username)
			if err != nil {
				printWarn(w, "Password", err.Error())
				return nil
			}
			if a.store.Has(user) {
				printPass(w, "Password", "stored for "+user)
			} else {
				printWarn(w, "Password", "nothing stored for "+user)
			}
			return nil
		},
	})

	return cmd
}

// credentialUser returns flagValue, or the configured username.
func (a *app) credentialUser(flagValue string) (string, error) {
	if u := strings.TrimSpace(flagValue); u != "" {
		return u, nil
	}
	cfg, err := a.loadConfig()
	if err != nil {
		return "", err
	}
	if cfg.Username == "" {
		return "", fmt.Errorf("no username configured; pass --username or run 'wpmcp config init'")
	}
	return cfg.Username, nil
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", fmt.Errorf("no password given on stdin")
	}
	return line, nil
}
