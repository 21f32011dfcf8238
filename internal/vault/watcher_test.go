package vault_test

import (
	"context"
	"testing"
	"time"

	"github.com/gruntwork-io/notecards/internal/document"
	"github.com/gruntwork-io/notecards/internal/vault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nextSnapshot(t *testing.T, ch <-chan []*document.Document, want []string) {
	t.Helper()

	deadline := time.After(5 * time.Second)

	for {
		select {
		case docs, ok := <-ch:
			require.True(t, ok, "watcher stopped")

			if assert.ObjectsAreEqual(want, paths(docs)) {
				return
			}
		case <-deadline:
			t.Fatalf("no snapshot with %v", want)
		}
	}
}

func TestWatcherEmitsSnapshots(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "a.md", "a")

	w := vault.NewWatcher(newVault(t, root), vault.WithDebounce(20*time.Millisecond), vault.WithRescanLimit(100))

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)

	go func() { done <- w.Run(ctx) }()

	nextSnapshot(t, w.Snapshots(), []string{"a.md"})

	writeFile(t, root, "b.md", "b")
	nextSnapshot(t, w.Snapshots(), []string{"a.md", "b.md"})

	writeFile(t, root, "sub/c.md", "c")
	nextSnapshot(t, w.Snapshots(), []string{"a.md", "b.md", "sub/c.md"})

	cancel()
	require.NoError(t, <-done)

	for range w.Snapshots() {
	}
}
