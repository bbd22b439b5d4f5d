package main

import (
	"fmt"

	"wpmcp/internal/draft"
	"wpmcp/internal/wordpress"

	"github.com/spf13/cobra"
)

func (a *app) draftCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "draft FILE.md",
		Short: "Create a draft post from a markdown file",
		Long: `Creates a draft post from a markdown file whose YAML frontmatter holds the
title:

  ---
  title: Release notes
  ---
  Body text...

The body is sent as the post content unchanged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := draft.ParseFile(args[0])
			if err != nil {
				return err
			}

			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("configuration incomplete: %w", err)
			}

			client := wordpress.NewClient(cfg.Credentials(), wordpress.NewHTTPClient(cfg.RequestTimeout))
			post, err := client.CreatePost(cmd.Context(), d.Title, d.Content)
			if err != nil {
				return fmt.Errorf("post failed: %w", err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, SuccessStyle.Render(fmt.Sprintf("Draft created: ID %d", post.ID)))
			if post.Link != "" {
				printField(w, "Link", post.Link)
			}
			return nil
		},
	}
}
