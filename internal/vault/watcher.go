package vault

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gruntwork-io/notecards/internal/document"
	"github.com/gruntwork-io/notecards/internal/errors"
	"github.com/gruntwork-io/notecards/pkg/log"
	"golang.org/x/time/rate"
)

const (
	// DefaultDebounce is how long the watcher waits after the last event of a burst.
	DefaultDebounce = 300 * time.Millisecond
	// DefaultRescanLimit is the sustained number of rescans per second.
	DefaultRescanLimit = 2
	rescanBurst        = 5
)

// Watcher rescans the vault whenever files under it change and emits each
// fresh list of documents. Only the latest list is kept if the receiver lags.
type Watcher struct {
	vault     *Vault
	logger    log.Logger
	limiter   *rate.Limiter
	snapshots chan []*document.Document
	debounce  time.Duration
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the quiet period that ends a burst of events.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithRescanLimit sets the maximum sustained rescans per second.
func WithRescanLimit(perSecond float64) WatcherOption {
	return func(w *Watcher) {
		w.limiter = rate.NewLimiter(rate.Limit(perSecond), rescanBurst)
	}
}

// NewWatcher creates a watcher for the vault. Call Run to start it.
func NewWatcher(v *Vault, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		vault:     v,
		logger:    v.logger,
		limiter:   rate.NewLimiter(rate.Limit(DefaultRescanLimit), rescanBurst),
		snapshots: make(chan []*document.Document, 1),
		debounce:  DefaultDebounce,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Snapshots returns the channel of document lists. It is closed when Run returns.
func (w *Watcher) Snapshots() <-chan []*document.Document {
	return w.snapshots
}

// Run emits an initial snapshot and then one per burst of file events, until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.snapshots)

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.New(err)
	}
	defer fsw.Close()

	if err := w.addTree(fsw, w.vault.Root); err != nil {
		return err
	}

	if err := w.rescan(ctx); err != nil {
		return err
	}

	timer := time.NewTimer(w.debounce)
	timer.Stop()

	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}

			if !w.relevant(fsw, event) {
				continue
			}

			timer.Reset(w.debounce)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}

			w.logger.Warnf("Vault watcher error: %v", err)
		case <-timer.C:
			if err := w.limiter.Wait(ctx); err != nil {
				return nil //nolint:nilerr
			}

			if err := w.rescan(ctx); err != nil {
				if errors.IsContextCanceled(err) {
					return nil
				}

				w.logger.Warnf("Vault rescan failed: %v", err)
			}
		}
	}
}

// relevant reports whether the event can change the document list or contents.
// New directories are watched as they appear.
func (w *Watcher) relevant(fsw *fsnotify.Watcher, event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}

	if isHidden(filepath.Base(event.Name)) {
		return false
	}

	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addTree(fsw, event.Name); err != nil {
				w.logger.Debugf("Could not watch %s: %v", event.Name, err)
			}

			return true
		}
	}

	rel, err := w.vault.Rel(event.Name)
	if err != nil {
		return false
	}

	// A removed or renamed directory cannot be stat'ed anymore, so any removal is relevant.
	if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
		return true
	}

	return w.vault.Matches(rel)
}

func (w *Watcher) rescan(ctx context.Context) error {
	docs, err := w.vault.List(ctx)
	if err != nil {
		return err
	}

	w.vault.Forget(docs)
	w.emit(docs)

	return nil
}

func (w *Watcher) emit(docs []*document.Document) {
	select {
	case <-w.snapshots:
	default:
	}

	w.snapshots <- docs
}

func (w *Watcher) addTree(fsw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return errors.New(err)
			}

			return nil
		}

		if !entry.IsDir() {
			return nil
		}

		if path != w.vault.Root && isHidden(entry.Name()) {
			return filepath.SkipDir
		}

		if err := fsw.Add(path); err != nil {
			return errors.New(err)
		}

		return nil
	})
}
