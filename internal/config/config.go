package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/openmined/autogit/internal/utils"
)

var (
	home, _           = os.UserHomeDir()
	DefaultConfigPath = filepath.Join(home, ".autogit", "config.json")
)

const (
	DefaultRemote       = "origin"
	DefaultBranch       = "main"
	DefaultCommitPrefix = "Auto-sync"

	// DefaultWatchInterval is the polling cadence for the snapshot watcher.
	DefaultWatchInterval = 5 * time.Second

	// DefaultAutoInterval is the polling cadence for the status-check loop.
	DefaultAutoInterval = 30 * time.Second

	// DefaultGitTimeout bounds every external git invocation so a hung
	// command cannot stall the sync loop forever.
	DefaultGitTimeout = 2 * time.Minute
)

type Config struct {
	RepoDir       string   `json:"repo_dir"`
	Remote        string   `json:"remote"`
	Branch        string   `json:"branch"`
	CommitPrefix  string   `json:"commit_prefix"`
	WatchInterval int      `json:"watch_interval"` // seconds
	AutoInterval  int      `json:"auto_interval"`  // seconds
	GitTimeout    int      `json:"git_timeout"`    // seconds
	Ignore        []string `json:"ignore"`
	Path          string   `json:"-"`
}

// Validate normalizes paths and fills zero values with defaults.
func (c *Config) Validate() error {
	if c.RepoDir == "" {
		c.RepoDir = "."
	}

	repoDir, err := utils.ResolvePath(c.RepoDir)
	if err != nil {
		return fmt.Errorf("repo dir: %w", err)
	}
	if !utils.DirExists(repoDir) {
		return fmt.Errorf("repo dir %q does not exist", repoDir)
	}
	c.RepoDir = repoDir

	if c.Remote == "" {
		c.Remote = DefaultRemote
	}
	if c.Branch == "" {
		c.Branch = DefaultBranch
	}
	if c.CommitPrefix == "" {
		c.CommitPrefix = DefaultCommitPrefix
	}
	if c.WatchInterval <= 0 {
		c.WatchInterval = int(DefaultWatchInterval.Seconds())
	}
	if c.AutoInterval <= 0 {
		c.AutoInterval = int(DefaultAutoInterval.Seconds())
	}
	if c.GitTimeout <= 0 {
		c.GitTimeout = int(DefaultGitTimeout.Seconds())
	}

	if c.Path != "" {
		path, err := utils.ResolvePath(c.Path)
		if err != nil {
			return fmt.Errorf("config path: %w", err)
		}
		c.Path = path
	}

	return nil
}

func (c *Config) WatchEvery() time.Duration {
	return time.Duration(c.WatchInterval) * time.Second
}

func (c *Config) AutoEvery() time.Duration {
	return time.Duration(c.AutoInterval) * time.Second
}

func (c *Config) GitDeadline() time.Duration {
	return time.Duration(c.GitTimeout) * time.Second
}

func (c *Config) Save(path string) error {
	if err := utils.EnsureParent(path); err != nil {
		return err
	}

	data, err := json.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.Path = path
	return &cfg, nil
}
