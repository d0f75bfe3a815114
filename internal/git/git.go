package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

var (
	ErrGitNotAvailable = errors.New("git is not available on this system")

	// ErrNothingToCommit is returned by Commit when the working tree turned
	// out clean between staging and committing. Callers treat it as a no-op,
	// not a failure.
	ErrNothingToCommit = errors.New("nothing to commit")
)

// Client drives the repository's git binary. Each call is a single blocking
// command invocation with captured output.
type Client struct {
	repoDir string
	runner  Runner
}

func NewClient(repoDir string, timeout time.Duration) *Client {
	return &Client{
		repoDir: repoDir,
		runner:  &execRunner{timeout: timeout},
	}
}

// NewClientWithRunner substitutes the command runner, used by tests.
func NewClientWithRunner(repoDir string, runner Runner) *Client {
	return &Client{repoDir: repoDir, runner: runner}
}

// Available checks if the "git" executable can be found in the system's PATH.
func Available() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// HasChanges reports whether the working tree has uncommitted changes.
func (c *Client) HasChanges(ctx context.Context) (bool, error) {
	stdout, stderr, err := c.runner.Run(ctx, c.repoDir, "status", "--porcelain")
	if err != nil {
		return false, fmt.Errorf("git status failed: %q: %w", stderr, err)
	}
	return strings.TrimSpace(stdout) != "", nil
}

// StageAll stages every pending change, including deletions.
func (c *Client) StageAll(ctx context.Context) error {
	_, stderr, err := c.runner.Run(ctx, c.repoDir, "add", ".")
	if err != nil {
		return fmt.Errorf("git add failed: %q: %w", stderr, err)
	}
	return nil
}

func (c *Client) Commit(ctx context.Context, message string) error {
	stdout, stderr, err := c.runner.Run(ctx, c.repoDir, "commit", "-m", message)
	if err != nil {
		// git reports a clean tree on stdout with a non-zero exit
		if strings.Contains(stdout, "nothing to commit") || strings.Contains(stderr, "nothing to commit") {
			return ErrNothingToCommit
		}
		return fmt.Errorf("git commit failed: %q: %w", stderr, err)
	}
	return nil
}

func (c *Client) Push(ctx context.Context, remote, branch string) error {
	_, stderr, err := c.runner.Run(ctx, c.repoDir, "push", remote, branch)
	if err != nil {
		return fmt.Errorf("git push failed: %q: %w", stderr, err)
	}
	return nil
}
