package watcher_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/paulohenriquegf/garmin-statistics/internal/adapters/logger"
	"github.com/paulohenriquegf/garmin-statistics/internal/adapters/watcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuietWatcher() *watcher.Watcher {
	log := logger.New()
	log.SetOutput(io.Discard)
	return watcher.NewWatcher(log)
}

func TestWatcher_NotifiesOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.zip")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var notified atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- newQuietWatcher().Watch(ctx, path, func() {
			notified.Add(1)
		})
	}()

	// Give the watcher time to register before touching the file.
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("v2"), 0o644))

	require.Eventually(t, func() bool {
		return notified.Load() >= 1
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestWatcher_NotifiesOnDirectoryEntryWrite(t *testing.T) {
	exportDir := filepath.Join(t.TempDir(), "export")
	require.NoError(t, os.Mkdir(exportDir, 0o755))
	file := filepath.Join(exportDir, "user_0_summarizedActivities.json")
	require.NoError(t, os.WriteFile(file, []byte("[]"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var notified atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- newQuietWatcher().Watch(ctx, exportDir, func() {
			notified.Add(1)
		})
	}()

	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(file, []byte(`[{}]`), 0o644))

	require.Eventually(t, func() bool {
		return notified.Load() >= 1
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestWatcher_IgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.zip")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var notified atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- newQuietWatcher().Watch(ctx, path, func() {
			notified.Add(1)
		})
	}()

	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))

	// The debounce window plus margin; sibling writes must not notify.
	time.Sleep(time.Second)
	assert.Zero(t, notified.Load())

	cancel()
	require.NoError(t, <-done)
}

func TestWatcher_MissingDirectory(t *testing.T) {
	err := newQuietWatcher().Watch(
		context.Background(),
		filepath.Join(t.TempDir(), "nope", "export.zip"),
		func() {},
	)
	require.Error(t, err)
}
