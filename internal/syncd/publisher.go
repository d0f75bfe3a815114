package syncd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/openmined/autogit/internal/git"
)

const timestampFormat = "2006-01-02 15:04:05"

// Git is the subset of version-control operations the sync loops drive.
// *git.Client satisfies it; tests substitute a fake.
type Git interface {
	HasChanges(ctx context.Context) (bool, error)
	StageAll(ctx context.Context) error
	Commit(ctx context.Context, message string) error
	Push(ctx context.Context, remote, branch string) error
}

// Publisher performs the stage -> commit -> push sequence. Each step is gated
// on the previous one succeeding; nothing is rolled back on failure.
type Publisher struct {
	git    Git
	remote string
	branch string
	prefix string
	now    func() time.Time
}

func NewPublisher(g Git, remote, branch, prefix string) *Publisher {
	return &Publisher{
		git:    g,
		remote: remote,
		branch: branch,
		prefix: prefix,
		now:    time.Now,
	}
}

func (p *Publisher) message(changeCount int) string {
	ts := p.now().Format(timestampFormat)
	if changeCount > 0 {
		return fmt.Sprintf("%s: %d files updated - %s", p.prefix, changeCount, ts)
	}
	return fmt.Sprintf("%s - %s", p.prefix, ts)
}

// Publish stages all pending changes, commits them with a timestamped
// message, and pushes to the configured remote/branch. A commit that fails
// because the tree turned out clean is a no-op, not an error. changeCount is
// included in the message when known (the snapshot watcher passes it; the
// status-check loops pass 0).
func (p *Publisher) Publish(ctx context.Context, changeCount int) error {
	if err := p.git.StageAll(ctx); err != nil {
		return fmt.Errorf("stage: %w", err)
	}

	if err := p.git.Commit(ctx, p.message(changeCount)); err != nil {
		if errors.Is(err, git.ErrNothingToCommit) {
			// raced with the detection pass, tree is clean
			slog.Info("no changes to commit")
			return nil
		}
		return fmt.Errorf("commit: %w", err)
	}

	if err := p.git.Push(ctx, p.remote, p.branch); err != nil {
		return fmt.Errorf("push: %w", err)
	}

	slog.Info("synced to remote", "remote", p.remote, "branch", p.branch)
	return nil
}
