package main

import (
	"github.com/openmined/autogit/internal/git"
	"github.com/openmined/autogit/internal/syncd"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newNowCmd())
}

func newNowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Commit and push pending changes once, then exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := resolveConfig()
			if err != nil {
				return err
			}

			client := git.NewClient(cfg.RepoDir, cfg.GitDeadline())
			publisher := syncd.NewPublisher(client, cfg.Remote, cfg.Branch, cfg.CommitPrefix)

			return syncd.Once(cmd.Context(), client, publisher)
		},
	}
}
