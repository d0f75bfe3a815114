package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fatih/color"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/openmined/autogit/internal/config"
	"github.com/openmined/autogit/internal/git"
	"github.com/openmined/autogit/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	home, _        = os.UserHomeDir()
	configFileName = "config"
)

var (
	red   = color.New(color.FgHiRed, color.Bold).SprintFunc()
	green = color.New(color.FgHiGreen).SprintFunc()
	cyan  = color.New(color.FgHiCyan).SprintFunc()
)

var rootCmd = &cobra.Command{
	Use:     "autogit",
	Short:   "Automatically commit and push directory changes to a git remote",
	Version: version.Detailed(),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().SortFlags = false
	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultConfigPath, "AutoGit config file")
	rootCmd.PersistentFlags().StringP("repo", "C", ".", "Repository directory to watch")
	rootCmd.PersistentFlags().StringP("remote", "r", "", "Remote to push to")
	rootCmd.PersistentFlags().StringP("branch", "b", "", "Branch to push to")
}

func main() {
	stdoutHandler := tint.NewHandler(os.Stdout, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
		NoColor:    !isatty.IsTerminal(os.Stdout.Fd()),
	})
	slog.SetDefault(slog.New(stdoutHandler))

	// Setup root context with signal handling
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) error {
	// config path
	if cmd.Flag("config").Changed {
		configFilePath, _ := cmd.Flags().GetString("config")
		viper.SetConfigFile(configFilePath)
	} else {
		viper.AddConfigPath(filepath.Join(home, ".autogit"))
		viper.AddConfigPath(filepath.Join(home, ".config/autogit"))
		viper.SetConfigName(configFileName)
		viper.SetConfigType("json")
	}

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		enoent := errors.Is(err, os.ErrNotExist)
		_, ok := err.(viper.ConfigFileNotFoundError)
		if !enoent && !ok {
			return fmt.Errorf("config read '%s': %w", viper.ConfigFileUsed(), err)
		}
	}

	// Bind flags to viper
	viper.BindPFlag("repo_dir", cmd.Flags().Lookup("repo"))
	viper.BindPFlag("remote", cmd.Flags().Lookup("remote"))
	viper.BindPFlag("branch", cmd.Flags().Lookup("branch"))

	// Set up environment variables
	viper.SetEnvPrefix("AUTOGIT")
	viper.AutomaticEnv()

	return nil
}

// resolveConfig assembles the effective config: flags/env/config file via
// viper, then the repo-local .autogit.yml overrides on top.
func resolveConfig() (*config.Config, error) {
	cfg := &config.Config{
		Path:          viper.ConfigFileUsed(),
		RepoDir:       viper.GetString("repo_dir"),
		Remote:        viper.GetString("remote"),
		Branch:        viper.GetString("branch"),
		CommitPrefix:  viper.GetString("commit_prefix"),
		WatchInterval: viper.GetInt("watch_interval"),
		AutoInterval:  viper.GetInt("auto_interval"),
		GitTimeout:    viper.GetInt("git_timeout"),
		Ignore:        viper.GetStringSlice("ignore"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	repoFile, err := config.LoadRepoFile(cfg.RepoDir)
	if err != nil {
		return nil, err
	}
	cfg.Apply(repoFile)

	if !git.Available() {
		return nil, git.ErrGitNotAvailable
	}

	return cfg, nil
}

func showHeader(cfg *config.Config) {
	fmt.Printf("%s %s\n", cyan(version.AppName), version.Short())
	fmt.Printf("Watching:  %s\n", cfg.RepoDir)
	fmt.Printf("Pushing:   %s/%s\n", cfg.Remote, cfg.Branch)
	fmt.Println("Press Ctrl+C to stop")
}
