package main

import (
	"fmt"
	"os"

	"wpmcp/internal/clients"
	"wpmcp/internal/config"

	"github.com/spf13/cobra"
)

func (a *app) clientConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "client-config [CLIENT]",
		Short: "Print the snippet that registers wpmcp with an MCP client",
		Long: `Without an argument, lists the supported MCP clients. With a client ID,
prints the JSON that registers wpmcp as a stdio server in that client.

The site URL and username are included when configured. The application
password never is: the server reads it from the keyring or the config file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			if len(args) == 0 {
				for _, c := range clients.GetAllClientConfigs() {
					fmt.Fprintf(w, "%s %s\n", LabelStyle.Render(c.ID), c.Name)
					fmt.Fprintf(w, "%s %s\n", LabelStyle.Render(""), HelpStyle.Render(c.Explanation))
				}
				return nil
			}

			client, err := clients.Find(args[0])
			if err != nil {
				return err
			}

			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			launch := clients.Launch{
				Command: executablePath(),
				Args:    []string{"serve"},
				Env: map[string]string{
					config.EnvSiteURL:  cfg.SiteURL,
					config.EnvUsername: cfg.Username,
				},
			}
			if a.configPath != "" {
				launch.Args = append(launch.Args, "--config", a.configPath)
			}

			snippet, err := client.Snippet(launch)
			if err != nil {
				return err
			}

			fmt.Fprint(w, string(snippet))
			fmt.Fprintln(cmd.ErrOrStderr(), HelpStyle.Render(fmt.Sprintf("%s: paste into %s", client.Name, client.ConfigPath)))
			return nil
		},
	}
}

// executablePath returns the absolute path of the running binary, falling
// back to the bare command name.
func executablePath() string {
	if path, err := os.Executable(); err == nil {
		return path
	}
	return "wpmcp"
}
