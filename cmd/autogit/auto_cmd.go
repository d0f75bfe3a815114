package main

import (
	"log/slog"

	"github.com/openmined/autogit/internal/git"
	"github.com/openmined/autogit/internal/syncd"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newAutoCmd())
}

func newAutoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auto [interval]",
		Short: "Periodically commit and push whatever git reports as changed",
		Long: `Runs an immediate sync, then asks git for uncommitted changes every
interval seconds and publishes when the tree is dirty. Cheaper than watch
for large trees since it never walks the filesystem itself.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := resolveConfig()
			if err != nil {
				return err
			}
			interval := intervalArg(args, cfg.AutoEvery())

			client := git.NewClient(cfg.RepoDir, cfg.GitDeadline())
			publisher := syncd.NewPublisher(client, cfg.Remote, cfg.Branch, cfg.CommitPrefix)
			loop := syncd.NewStatusLoop(client, publisher, interval)

			showHeader(cfg)
			defer slog.Info("Bye!")
			return loop.Run(cmd.Context())
		},
	}
}
