package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// RepoFileName is the per-repository override file, checked into the watched
// repo itself so a team can pin remote/branch without touching the user's
// global config.
const RepoFileName = ".autogit.yml"

type RepoFile struct {
	Remote       string   `yaml:"remote"`
	Branch       string   `yaml:"branch"`
	CommitPrefix string   `yaml:"commit_prefix"`
	Ignore       []string `yaml:"ignore"`
}

// LoadRepoFile reads .autogit.yml from repoDir. A missing file is not an
// error and returns nil.
func LoadRepoFile(repoDir string) (*RepoFile, error) {
	path := filepath.Join(repoDir, RepoFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", RepoFileName, err)
	}

	var rf RepoFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", RepoFileName, err)
	}
	return &rf, nil
}

// Apply overlays the repo file's non-empty values onto the config. Ignore
// patterns are additive.
func (c *Config) Apply(rf *RepoFile) {
	if rf == nil {
		return
	}
	if rf.Remote != "" {
		c.Remote = rf.Remote
	}
	if rf.Branch != "" {
		c.Branch = rf.Branch
	}
	if rf.CommitPrefix != "" {
		c.CommitPrefix = rf.CommitPrefix
	}
	c.Ignore = append(c.Ignore, rf.Ignore...)
}
