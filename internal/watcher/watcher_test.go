package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Watcher:
// - Changes to monitored extensions reach the callback after the debounce
// - Changes to other extensions are ignored
// - Stop is idempotent

func collectChanges(t *testing.T, root string) (*Watcher, func() []string) {
	t.Helper()

	w, err := New(root, []string{".swift"})
	require.NoError(t, err)

	var mu sync.Mutex
	var got []string
	err = w.Start(context.Background(), func(files []string) {
		mu.Lock()
		got = append(got, files...)
		mu.Unlock()
	})
	require.NoError(t, err)
	t.Cleanup(func() { w.Stop() })

	return w, func() []string {
		mu.Lock()
		defer mu.Unlock()
		out := make([]string, len(got))
		copy(out, got)
		return out
	}
}

func TestWatcher_ReportsMatchingChanges(t *testing.T) {
	root := t.TempDir()
	_, changes := collectChanges(t, root)

	path := filepath.Join(root, "a.swift")
	require.NoError(t, os.WriteFile(path, []byte("func a() {}"), 0o644))

	assert.Eventually(t, func() bool {
		for _, f := range changes() {
			if f == path {
				return true
			}
		}
		return false
	}, 5*time.Second, 50*time.Millisecond)
}

func TestWatcher_IgnoresOtherExtensions(t *testing.T) {
	root := t.TempDir()
	_, changes := collectChanges(t, root)

	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644))

	time.Sleep(1 * time.Second)
	assert.Empty(t, changes())
}

func TestWatcher_StopIdempotent(t *testing.T) {
	w, err := New(t.TempDir(), []string{".swift"})
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background(), func([]string) {}))

	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
}
