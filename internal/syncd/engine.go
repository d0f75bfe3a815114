package syncd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/openmined/autogit/internal/scan"
)

var ErrSyncAlreadyRunning = errors.New("sync already running")

const changePreviewLimit = 5

// Engine is the snapshot-diff watcher. It owns the baseline snapshot and
// advances it only after a publish fully succeeds (or turns out to be a
// no-op), so changes that failed to sync are re-detected next round.
type Engine struct {
	root      string
	ignore    *scan.IgnoreList
	publisher *Publisher
	interval  time.Duration
	trigger   <-chan struct{}
	baseline  scan.Snapshot
	muSync    sync.Mutex
}

func NewEngine(root string, ignore *scan.IgnoreList, publisher *Publisher, interval time.Duration) *Engine {
	return &Engine{
		root:      root,
		ignore:    ignore,
		publisher: publisher,
		interval:  interval,
	}
}

// SetTrigger attaches an optional channel that fires a sync ahead of the next
// timer tick. Must be called before Run.
func (e *Engine) SetTrigger(ch <-chan struct{}) {
	e.trigger = ch
}

// Run scans once to establish the baseline, then loops until ctx is
// cancelled. Cancellation is a clean shutdown and returns nil.
func (e *Engine) Run(ctx context.Context) error {
	slog.Info("watch start", "dir", e.root, "interval", e.interval)

	baseline, err := scan.Scan(ctx, e.root, e.ignore)
	if err != nil {
		return fmt.Errorf("initial scan: %w", err)
	}
	e.baseline = baseline
	slog.Info("monitoring", "files", len(baseline))

	// using a timer and not a ticker to avoid queued ticks when a sync
	// takes longer than the interval
	timer := time.NewTimer(e.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("watch stop")
			return nil
		case <-timer.C:
		case <-e.trigger:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
		}

		if err := e.syncOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("sync failed", "error", err)
		}
		timer.Reset(e.interval)
	}
}

func (e *Engine) syncOnce(ctx context.Context) error {
	if !e.muSync.TryLock() {
		return ErrSyncAlreadyRunning
	}
	defer e.muSync.Unlock()

	current, err := scan.Scan(ctx, e.root, e.ignore)
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}

	changes := scan.Diff(e.baseline, current)
	if len(changes) == 0 {
		return nil
	}
	logChanges(changes)

	if err := e.publisher.Publish(ctx, len(changes)); err != nil {
		return err
	}

	e.baseline = current
	return nil
}

func logChanges(changes scan.ChangeList) {
	preview := make([]string, 0, changePreviewLimit)
	for i, c := range changes {
		if i == changePreviewLimit {
			break
		}
		preview = append(preview, c.String())
	}
	slog.Info("changes detected", "count", len(changes), "files", preview)
}
