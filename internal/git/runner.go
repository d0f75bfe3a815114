package git

import (
	"bytes"
	"context"
	"os/exec"
	"time"
)

// Runner executes a git command in dir and returns its captured output.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) (stdout, stderr string, err error)
}

// execRunner shells out to the git binary. The timeout bounds every
// invocation so a hung command (e.g. a stalled credential helper) cannot
// block the sync loop indefinitely.
type execRunner struct {
	timeout time.Duration
}

func (r *execRunner) Run(ctx context.Context, dir string, args ...string) (string, string, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}
