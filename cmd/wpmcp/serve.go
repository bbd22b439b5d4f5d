package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"wpmcp/internal/mcp"

	"github.com/spf13/cobra"
)

func (a *app) serveCmd() *cobra.Command {
	var httpAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the WordPress tools over MCP",
		Long: `Serves the WordPress tools over MCP on stdin/stdout until EOF or a signal.
Nothing but protocol messages is written to stdout; logs go to stderr.

With --http the tools are served over streamable HTTP at /mcp instead, with a
health check at /health.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runServe(cmd, httpAddr)
		},
	}

	cmd.Flags().StringVar(&httpAddr, "http", "", "serve streamable HTTP on this address instead of stdio (e.g. 127.0.0.1:8080)")
	return cmd
}

func (a *app) runServe(cmd *cobra.Command, httpAddr string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	// Incomplete settings are not fatal; calls then fail with the site's response.
	if missing := cfg.Missing(); len(missing) > 0 {
		a.logger.Warn("WordPress settings incomplete, tool calls will fail",
			"missing", strings.Join(missing, ", "))
	} else if err := cfg.Validate(); err != nil {
		a.logger.Warn("WordPress settings invalid", "error", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := mcp.NewServer(cfg, a.logger)
	if httpAddr != "" {
		return server.ListenAndServe(ctx, httpAddr)
	}
	return server.ServeStdio(ctx)
}
