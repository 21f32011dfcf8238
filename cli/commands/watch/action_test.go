package watch_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gruntwork-io/notecards/cli/commands/watch"
	"github.com/gruntwork-io/notecards/options"
	"github.com/gruntwork-io/notecards/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func writeNote(t *testing.T, root, rel, content string) {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRunReprintsOnChange(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeNote(t, root, "a.md", "lorem")
	writeNote(t, root, "c.md", "ipsum")

	stdout := &syncBuffer{}

	opts := options.NewOptionsWithWriters(stdout, io.Discard)
	opts.WorkingDir = root
	opts.Logger = log.New(log.WithOutput(io.Discard))
	opts.FlushInterval = 0
	opts.WatchDebounce = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)

	go func() { done <- watch.Run(ctx, &watch.Options{Options: opts}, "lorem") }()

	require.Eventually(t, func() bool {
		return strings.Contains(stdout.String(), "1 shown of 2 notes")
	}, 5*time.Second, 10*time.Millisecond)

	assert.Contains(t, stdout.String(), "a.md")
	assert.NotContains(t, stdout.String(), "c.md")

	writeNote(t, root, "b.md", "lorem dolor")

	require.Eventually(t, func() bool {
		return strings.Contains(stdout.String(), "2 shown of 3 notes")
	}, 5*time.Second, 10*time.Millisecond)

	assert.Contains(t, stdout.String(), "b.md")

	cancel()
	require.NoError(t, <-done)
}

func TestRunPrintsNothingMatching(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeNote(t, root, "a.md", "lorem")

	stdout := &syncBuffer{}

	opts := options.NewOptionsWithWriters(stdout, io.Discard)
	opts.WorkingDir = root
	opts.Logger = log.New(log.WithOutput(io.Discard))
	opts.FlushInterval = 0

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)

	go func() { done <- watch.Run(ctx, &watch.Options{Options: opts}, "dolor") }()

	require.Eventually(t, func() bool {
		return strings.Contains(stdout.String(), "No matching notes")
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}
