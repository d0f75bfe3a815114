package main

import (
	"log/slog"
	"time"

	"github.com/openmined/autogit/internal/git"
	"github.com/openmined/autogit/internal/scan"
	"github.com/openmined/autogit/internal/syncd"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newWatchCmd())
}

func newWatchCmd() *cobra.Command {
	var useEvents bool
	var debounce time.Duration

	watchCmd := &cobra.Command{
		Use:   "watch [interval]",
		Short: "Watch the repository and sync when files change",
		Long: `Snapshots the tree every interval seconds, diffs it against the previous
round, and stages/commits/pushes when anything changed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := resolveConfig()
			if err != nil {
				return err
			}
			interval := intervalArg(args, cfg.WatchEvery())

			client := git.NewClient(cfg.RepoDir, cfg.GitDeadline())
			publisher := syncd.NewPublisher(client, cfg.Remote, cfg.Branch, cfg.CommitPrefix)
			ignore := scan.NewIgnoreList(cfg.RepoDir, cfg.Ignore...)
			engine := syncd.NewEngine(cfg.RepoDir, ignore, publisher, interval)

			if useEvents {
				trigger := syncd.NewTrigger(cfg.RepoDir, debounce)
				if err := trigger.Start(cmd.Context()); err != nil {
					return err
				}
				defer trigger.Stop()
				engine.SetTrigger(trigger.C())
			}

			showHeader(cfg)
			defer slog.Info("Bye!")
			return engine.Run(cmd.Context())
		},
	}

	watchCmd.Flags().BoolVarP(&useEvents, "events", "e", false, "Sync on filesystem events instead of waiting for the next tick")
	watchCmd.Flags().DurationVar(&debounce, "debounce", time.Second, "Quiet period before an event burst triggers a sync")

	return watchCmd
}
