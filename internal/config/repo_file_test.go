package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRepoFile_Missing(t *testing.T) {
	rf, err := LoadRepoFile(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, rf)
}

func TestLoadRepoFile_Invalid(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, RepoFileName)
	require.NoError(t, os.WriteFile(path, []byte("remote: [not, a, string"), 0o644))

	_, err := LoadRepoFile(tmp)
	assert.Error(t, err)
}

func TestRepoFile_Apply(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, RepoFileName)
	content := `
remote: upstream
branch: release
ignore:
  - "*.log"
  - "build/"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	rf, err := LoadRepoFile(tmp)
	require.NoError(t, err)
	require.NotNil(t, rf)

	cfg := &Config{
		RepoDir: tmp,
		Remote:  "origin",
		Branch:  "main",
		Ignore:  []string{".env"},
	}
	cfg.Apply(rf)

	assert.Equal(t, "upstream", cfg.Remote)
	assert.Equal(t, "release", cfg.Branch)
	// commit prefix untouched when not set in the repo file
	assert.Equal(t, "", cfg.CommitPrefix)
	assert.Equal(t, []string{".env", "*.log", "build/"}, cfg.Ignore)
}

func TestRepoFile_ApplyNil(t *testing.T) {
	cfg := &Config{Remote: "origin"}
	cfg.Apply(nil)
	assert.Equal(t, "origin", cfg.Remote)
}
