package syncd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// StatusLoop is the cheaper polling variant: instead of snapshotting the
// tree it asks git itself whether the working tree is dirty, and only then
// runs the publish sequence.
type StatusLoop struct {
	git       Git
	publisher *Publisher
	interval  time.Duration
}

func NewStatusLoop(g Git, publisher *Publisher, interval time.Duration) *StatusLoop {
	return &StatusLoop{
		git:       g,
		publisher: publisher,
		interval:  interval,
	}
}

// Run performs an eager initial sync, then polls until ctx is cancelled.
// Publish failures are logged and the loop waits for the next interval.
func (l *StatusLoop) Run(ctx context.Context) error {
	slog.Info("auto-sync start", "interval", l.interval)

	if err := l.syncIfDirty(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("initial sync failed", "error", err)
	}

	timer := time.NewTimer(l.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("auto-sync stop")
			return nil
		case <-timer.C:
		}

		if err := l.syncIfDirty(ctx); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("sync failed", "error", err)
		}
		timer.Reset(l.interval)
	}
}

func (l *StatusLoop) syncIfDirty(ctx context.Context) error {
	dirty, err := l.git.HasChanges(ctx)
	if err != nil {
		return fmt.Errorf("check changes: %w", err)
	}
	if !dirty {
		slog.Debug("no changes detected")
		return nil
	}

	slog.Info("changes detected, committing")
	return l.publisher.Publish(ctx, 0)
}

// Once runs a single pre-check + publish cycle and returns. Used by the
// one-shot sync command.
func Once(ctx context.Context, g Git, publisher *Publisher) error {
	dirty, err := g.HasChanges(ctx)
	if err != nil {
		return fmt.Errorf("check changes: %w", err)
	}
	if !dirty {
		slog.Info("no changes to sync")
		return nil
	}
	return publisher.Publish(ctx, 0)
}
