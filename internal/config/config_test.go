package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate_NormalizesAndDefaults(t *testing.T) {
	tmp := t.TempDir()
	cfg := &Config{
		RepoDir: tmp,
	}

	require.NoError(t, cfg.Validate())
	assert.True(t, filepath.IsAbs(cfg.RepoDir))
	assert.Equal(t, DefaultRemote, cfg.Remote)
	assert.Equal(t, DefaultBranch, cfg.Branch)
	assert.Equal(t, DefaultCommitPrefix, cfg.CommitPrefix)
	assert.Equal(t, DefaultWatchInterval, cfg.WatchEvery())
	assert.Equal(t, DefaultAutoInterval, cfg.AutoEvery())
	assert.Equal(t, DefaultGitTimeout, cfg.GitDeadline())
}

func TestConfig_Validate_ErrorsOnMissingRepoDir(t *testing.T) {
	cfg := &Config{
		RepoDir: filepath.Join(t.TempDir(), "does-not-exist"),
	}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestConfig_Validate_KeepsExplicitValues(t *testing.T) {
	tmp := t.TempDir()
	cfg := &Config{
		RepoDir:       tmp,
		Remote:        "upstream",
		Branch:        "develop",
		CommitPrefix:  "Checkpoint",
		WatchInterval: 10,
		AutoInterval:  60,
	}

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "upstream", cfg.Remote)
	assert.Equal(t, "develop", cfg.Branch)
	assert.Equal(t, "Checkpoint", cfg.CommitPrefix)
	assert.Equal(t, 10, cfg.WatchInterval)
	assert.Equal(t, 60, cfg.AutoInterval)
}

func TestConfig_SaveAndLoad_Roundtrip(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.json")

	cfg := &Config{
		RepoDir:      tmp,
		Remote:       "origin",
		Branch:       "main",
		CommitPrefix: "Auto-sync",
		Ignore:       []string{"*.tmp"},
	}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.RepoDir, loaded.RepoDir)
	assert.Equal(t, cfg.Remote, loaded.Remote)
	assert.Equal(t, cfg.Branch, loaded.Branch)
	assert.Equal(t, cfg.Ignore, loaded.Ignore)
	assert.Equal(t, path, loaded.Path)
}

func TestConfig_Save_CreatesParentDir(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "nested", "dir", "config.json")

	cfg := &Config{RepoDir: tmp}
	require.NoError(t, cfg.Save(path))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
