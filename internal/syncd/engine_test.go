package syncd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/openmined/autogit/internal/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, fg *fakeGit) (*Engine, string) {
	t.Helper()
	tmp := t.TempDir()
	p := NewPublisher(fg, "origin", "main", "Real-time sync")
	p.now = fixedClock
	e := NewEngine(tmp, scan.NewIgnoreList(tmp), p, time.Hour)
	return e, tmp
}

func seedBaseline(t *testing.T, e *Engine) {
	t.Helper()
	snap, err := scan.Scan(context.Background(), e.root, e.ignore)
	require.NoError(t, err)
	e.baseline = snap
}

func write(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestEngine_SyncOnce_NoChanges(t *testing.T) {
	fg := &fakeGit{}
	e, dir := newTestEngine(t, fg)
	write(t, dir, "a.txt", "aaa")
	seedBaseline(t, e)

	require.NoError(t, e.syncOnce(context.Background()))
	assert.Empty(t, fg.recorded())
}

func TestEngine_SyncOnce_NewFilePublishes(t *testing.T) {
	fg := &fakeGit{}
	e, dir := newTestEngine(t, fg)
	write(t, dir, "a.txt", "aaa")
	seedBaseline(t, e)

	write(t, dir, "b.txt", "bbb")
	require.NoError(t, e.syncOnce(context.Background()))

	assert.Equal(t, []string{"stage", "commit", "push origin/main"}, fg.recorded())
	require.Len(t, fg.messages, 1)
	assert.Equal(t, "Real-time sync: 1 files updated - 2026-01-02 15:04:05", fg.messages[0])

	// baseline advanced, a second cycle is a no-op
	fg.calls = nil
	require.NoError(t, e.syncOnce(context.Background()))
	assert.Empty(t, fg.recorded())
}

func TestEngine_SyncOnce_DeletedFilePublishes(t *testing.T) {
	fg := &fakeGit{}
	e, dir := newTestEngine(t, fg)
	write(t, dir, "a.txt", "aaa")
	write(t, dir, "b.txt", "bbb")
	seedBaseline(t, e)

	require.NoError(t, os.Remove(filepath.Join(dir, "b.txt")))
	require.NoError(t, e.syncOnce(context.Background()))

	assert.Equal(t, []string{"stage", "commit", "push origin/main"}, fg.recorded())
}

func TestEngine_SyncOnce_FailureKeepsBaseline(t *testing.T) {
	fg := &fakeGit{pushErr: errors.New("network unreachable")}
	e, dir := newTestEngine(t, fg)
	write(t, dir, "a.txt", "aaa")
	seedBaseline(t, e)

	write(t, dir, "b.txt", "bbb")
	err := e.syncOnce(context.Background())
	require.Error(t, err)

	// same changes are re-detected and re-published next round
	fg.calls = nil
	fg.pushErr = nil
	require.NoError(t, e.syncOnce(context.Background()))
	assert.Equal(t, []string{"stage", "commit", "push origin/main"}, fg.recorded())
}

func TestEngine_SyncOnce_ReentryGuard(t *testing.T) {
	fg := &fakeGit{}
	e, _ := newTestEngine(t, fg)

	e.muSync.Lock()
	defer e.muSync.Unlock()
	err := e.syncOnce(context.Background())
	assert.ErrorIs(t, err, ErrSyncAlreadyRunning)
}

func TestEngine_Run_StopsOnCancel(t *testing.T) {
	fg := &fakeGit{}
	e, dir := newTestEngine(t, fg)
	write(t, dir, "a.txt", "aaa")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- e.Run(ctx) }()

	// Run establishes the baseline before entering the loop; give it a moment
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("engine did not stop on cancel")
	}
}

func TestEngine_Run_TriggerFiresEarlySync(t *testing.T) {
	fg := &fakeGit{}
	e, dir := newTestEngine(t, fg)
	write(t, dir, "a.txt", "aaa")

	trigger := make(chan struct{}, 1)
	e.SetTrigger(trigger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- e.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	write(t, dir, "b.txt", "bbb")
	trigger <- struct{}{}

	require.Eventually(t, func() bool {
		return len(fg.recorded()) >= 3
	}, 2*time.Second, 10*time.Millisecond, "trigger did not cause a publish")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("engine did not stop on cancel")
	}
	assert.Equal(t, []string{"stage", "commit", "push origin/main"}, fg.recorded()[:3])
}
