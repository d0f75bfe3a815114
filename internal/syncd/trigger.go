package syncd

import (
	"context"
	"log/slog"
	"time"

	"github.com/rjeczalik/notify"
)

// Trigger turns filesystem notifications into debounced sync signals so the
// engine can react before its next tick. A burst of events (editor saves,
// build output) collapses into a single signal.
type Trigger struct {
	dir      string
	debounce time.Duration
	events   chan notify.EventInfo
	fire     chan struct{}
}

func NewTrigger(dir string, debounce time.Duration) *Trigger {
	return &Trigger{
		dir:      dir,
		debounce: debounce,
		events:   make(chan notify.EventInfo, 64),
		fire:     make(chan struct{}, 1),
	}
}

func (t *Trigger) Start(ctx context.Context) error {
	slog.Info("event trigger start", "dir", t.dir, "debounce", t.debounce)

	recursivePath := t.dir + "/..."
	if err := notify.Watch(recursivePath, t.events, notify.All); err != nil {
		return err
	}

	go t.loop(ctx)
	return nil
}

func (t *Trigger) Stop() {
	notify.Stop(t.events)
	slog.Info("event trigger stop")
}

// C delivers one signal per debounced burst of events.
func (t *Trigger) C() <-chan struct{} {
	return t.fire
}

func (t *Trigger) loop(ctx context.Context) {
	debounce := time.NewTimer(t.debounce)
	if !debounce.Stop() {
		<-debounce.C
	}

	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-t.events:
			if !ok {
				return
			}
			if !debounce.Stop() {
				select {
				case <-debounce.C:
				default:
				}
			}
			debounce.Reset(t.debounce)
		case <-debounce.C:
			select {
			case t.fire <- struct{}{}:
			default:
				// a signal is already pending
			}
		}
	}
}
