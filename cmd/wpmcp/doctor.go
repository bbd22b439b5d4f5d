package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"wpmcp/internal/config"
	"wpmcp/internal/mcp"

	"github.com/spf13/cobra"
)

const doctorTimeout = 15 * time.Second

func (a *app) doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Run diagnostic checks on your wpmcp setup",
		Long: `Verifies that the configuration is complete, the keyring is usable and the
WordPress site accepts the credentials (one list_categories call).
Reports pass/fail for each check.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, TitleStyle.Render("wpmcp doctor v"+version))
			fmt.Fprintln(w)

			var passed, failed, warned int

			// 1. Config file
			path := a.resolvedConfigPath()
			if _, err := os.Stat(path); err != nil {
				printWarn(w, "Config file", "not found at "+path+" (environment only)")
				warned++
			} else {
				printPass(w, "Config file", path)
				passed++
			}

			cfg, err := a.loadConfig()
			if err != nil {
				printFail(w, "Config load", err.Error())
				failed++
				return doctorSummary(w, passed, warned, failed)
			}

			// 2. Keyring
			status := a.store.Status()
			if available, _ := status["available"].(bool); available {
				printPass(w, "Keyring", "available")
				passed++
			} else {
				printWarn(w, "Keyring", fmt.Sprintf("unavailable: %v", status["error"]))
				warned++
			}

			// 3. Settings
			if missing := cfg.Missing(); len(missing) > 0 {
				printFail(w, "Settings", "missing "+strings.Join(missing, ", "))
				failed++
			} else if err := cfg.Validate(); err != nil {
				printFail(w, "Settings", err.Error())
				failed++
			} else {
				printPass(w, "Settings", fmt.Sprintf("%s as %s (password from %s)", cfg.SiteURL, cfg.Username, cfg.PasswordSource))
				passed++
			}

			// 4. Connectivity, only with complete settings
			if failed == 0 {
				if detail, err := a.checkSite(cmd.Context(), cfg); err != nil {
					printFail(w, "WordPress API", err.Error())
					failed++
				} else {
					printPass(w, "WordPress API", detail)
					passed++
				}
			}

			return doctorSummary(w, passed, warned, failed)
		},
	}
}

// checkSite lists categories through the tool dispatcher, exactly as an MCP
// client would.
func (a *app) checkSite(ctx context.Context, cfg *config.Config) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, doctorTimeout)
	defer cancel()

	res := mcp.NewServer(cfg, a.logger).Call(ctx, "list_categories", nil)
	if !res.OK {
		if res.Reason == mcp.ReasonRemoteRejected {
			return "", fmt.Errorf("HTTP %d: %s", res.StatusCode, res.Text)
		}
		return "", fmt.Errorf("%s", res.String())
	}

	n := 0
	if res.Text != "" {
		n = strings.Count(res.Text, "\n") + 1
	}
	return fmt.Sprintf("reachable, %d categories visible", n), nil
}

func doctorSummary(w io.Writer, passed, warned, failed int) error {
	summary := fmt.Sprintf("Results: %d passed, %d warnings, %d failed", passed, warned, failed)
	fmt.Fprintln(w)
	fmt.Fprintln(w, SummaryStyle.Render(summary))

	if failed > 0 {
		fmt.Fprintln(w, HelpStyle.Render("Run 'wpmcp config init' or set WORDPRESS_URL, WORDPRESS_USERNAME and APPLICATION_PASSWORD."))
		return fmt.Errorf("%d check(s) failed", failed)
	}
	if warned > 0 {
		fmt.Fprintln(w, HelpStyle.Render("wpmcp should work but consider fixing the warnings."))
	} else {
		fmt.Fprintln(w, SuccessStyle.Render("All checks passed! wpmcp is ready to serve."))
	}
	return nil
}
