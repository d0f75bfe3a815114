package main

import (
	"fmt"
	"os"

	"github.com/openmined/autogit/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInitCmd())
}

func newInitCmd() *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the AutoGit config file",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if cfg, err := config.Load(config.DefaultConfigPath); err == nil {
				fmt.Println("AutoGit already initialized")
				fmt.Printf("Config Path: %s\n", green(config.DefaultConfigPath))
				fmt.Printf("Repository:  %s\n", cyan(cfg.RepoDir))
				fmt.Printf("Remote:      %s\n", cyan(fmt.Sprintf("%s/%s", cfg.Remote, cfg.Branch)))
				os.Exit(0)
			}

			repoDir, _ := cmd.Flags().GetString("repo")
			remote, _ := cmd.Flags().GetString("remote")
			branch, _ := cmd.Flags().GetString("branch")

			cfg := &config.Config{
				RepoDir:      repoDir,
				Remote:       remote,
				Branch:       branch,
				CommitPrefix: prefix,
			}
			if err := cfg.Validate(); err != nil {
				fmt.Printf("%s: %s\n", red("ERROR"), err)
				os.Exit(1)
			}

			if err := cfg.Save(config.DefaultConfigPath); err != nil {
				fmt.Printf("%s: %s\n", red("ERROR"), err)
				os.Exit(1)
			}

			fmt.Println("AutoGit initialized")
			fmt.Printf("Config Path: %s\n", green(config.DefaultConfigPath))
			fmt.Printf("Repository:  %s\n", cyan(cfg.RepoDir))
			fmt.Printf("Remote:      %s\n", cyan(fmt.Sprintf("%s/%s", cfg.Remote, cfg.Branch)))
		},
	}

	cmd.Flags().StringVarP(&prefix, "prefix", "p", config.DefaultCommitPrefix, "commit message prefix")

	return cmd
}
