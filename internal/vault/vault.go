// Package vault lists the markdown notes under a directory and reads their contents.
package vault

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"
	"github.com/gruntwork-io/notecards/internal/cache"
	"github.com/gruntwork-io/notecards/internal/document"
	"github.com/gruntwork-io/notecards/internal/errors"
	"github.com/gruntwork-io/notecards/internal/worker"
	"github.com/gruntwork-io/notecards/pkg/log"
)

const contentsCacheName = "contents"

var (
	// DefaultInclude matches every markdown file.
	DefaultInclude = []string{"**.md"}
	// DefaultIgnore skips drawings that are stored as markdown.
	DefaultIgnore = []string{"**.excalidraw.md"}
)

// Vault is a directory tree of notes. It implements document.Accessor.
type Vault struct {
	logger   log.Logger
	contents *cache.Cache[cache.Key, *document.Contents]
	Root     string
	include  []glob.Glob
	ignore   []glob.Glob
	workers  int
}

// Option configures a Vault.
type Option func(*Vault) error

// WithInclude replaces the include patterns.
func WithInclude(patterns ...string) Option {
	return func(v *Vault) error {
		globs, err := compileGlobs(patterns)
		if err != nil {
			return err
		}

		v.include = globs

		return nil
	}
}

// WithIgnore replaces the ignore patterns.
func WithIgnore(patterns ...string) Option {
	return func(v *Vault) error {
		globs, err := compileGlobs(patterns)
		if err != nil {
			return err
		}

		v.ignore = globs

		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(logger log.Logger) Option {
	return func(v *Vault) error {
		v.logger = logger
		return nil
	}
}

// WithWorkers sets how many files Warm reads concurrently.
func WithWorkers(n int) Option {
	return func(v *Vault) error {
		v.workers = n
		return nil
	}
}

// New opens the vault rooted at root.
func New(root string, opts ...Option) (*Vault, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.New(err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, errors.New(err)
	}

	if !info.IsDir() {
		return nil, errors.Errorf("vault root %s is not a directory", abs)
	}

	v := &Vault{
		Root:     abs,
		logger:   log.Default(),
		contents: cache.NewCache[cache.Key, *document.Contents](contentsCacheName),
		workers:  worker.DefaultWorkers,
	}

	defaults := []Option{WithInclude(DefaultInclude...), WithIgnore(DefaultIgnore...)}

	for _, opt := range append(defaults, opts...) {
		if err := opt(v); err != nil {
			return nil, err
		}
	}

	return v, nil
}

// List walks the vault and returns every included document, ordered by path.
func (v *Vault) List(ctx context.Context) ([]*document.Document, error) {
	var docs []*document.Document

	err := TraceVaultList(ctx, v.Root, func(ctx context.Context) error {
		var err error

		docs, err = v.list(ctx)

		return err
	})

	return docs, err
}

func (v *Vault) list(ctx context.Context) ([]*document.Document, error) {
	var docs []*document.Document

	walkErr := filepath.WalkDir(v.Root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if path == v.Root {
				return err
			}

			v.logger.Debugf("Skipping %s: %v", path, err)

			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		if entry.IsDir() {
			if path != v.Root && isHidden(entry.Name()) {
				return filepath.SkipDir
			}

			return nil
		}

		if !entry.Type().IsRegular() {
			return nil
		}

		rel, err := v.Rel(path)
		if err != nil || !v.Matches(rel) {
			return nil //nolint:nilerr
		}

		info, err := entry.Info()
		if err != nil {
			v.logger.Debugf("Skipping %s: %v", rel, err)
			return nil
		}

		docs = append(docs, document.New(rel, info.ModTime(), createdTime(info), info.Size()))

		return nil
	})
	if walkErr != nil {
		return nil, errors.New(walkErr)
	}

	slices.SortFunc(docs, func(a, b *document.Document) int {
		return strings.Compare(a.Path, b.Path)
	})

	return docs, nil
}

// Matches reports whether a vault-relative slash path is included and not ignored.
func (v *Vault) Matches(rel string) bool {
	included := false

	for _, g := range v.include {
		if g.Match(rel) {
			included = true
			break
		}
	}

	if !included {
		return false
	}

	for _, g := range v.ignore {
		if g.Match(rel) {
			return false
		}
	}

	return true
}

// Rel converts an absolute path under the root to a vault-relative slash path.
func (v *Vault) Rel(path string) (string, error) {
	rel, err := filepath.Rel(v.Root, path)
	if err != nil {
		return "", errors.New(err)
	}

	return filepath.ToSlash(rel), nil
}

// Read implements document.Accessor. Contents are cached per path and modification stamp.
func (v *Vault) Read(ctx context.Context, doc *document.Document) (*document.Contents, error) {
	key := cache.KeyOf(doc)

	if contents, ok := v.contents.Get(ctx, key); ok {
		return contents, nil
	}

	data, err := os.ReadFile(filepath.Join(v.Root, filepath.FromSlash(doc.Path)))
	if err != nil {
		return nil, errors.New(err)
	}

	contents := document.Parse(string(data))

	v.contents.DeleteFunc(func(k cache.Key, _ *document.Contents) bool {
		return k.Path == doc.Path && k.Stamp != key.Stamp
	})
	v.contents.Put(ctx, key, contents)

	return contents, nil
}

// Warm reads the given documents concurrently so later reads are served from memory.
// Unreadable documents are logged and skipped.
func (v *Vault) Warm(ctx context.Context, docs []*document.Document) error {
	pool := worker.NewPool(ctx, v.workers)

	for _, doc := range docs {
		pool.Submit(func(ctx context.Context) error {
			if _, err := v.Read(ctx, doc); err != nil {
				v.logger.Debugf("Could not read %s: %v", doc.Path, err)
			}

			return nil
		})
	}

	if err := pool.Close(); err != nil {
		return err
	}

	return ctx.Err()
}

// Forget drops cached contents of documents no longer in the list.
func (v *Vault) Forget(docs []*document.Document) {
	present := make(map[string]struct{}, len(docs))
	for _, doc := range docs {
		present[doc.Path] = struct{}{}
	}

	v.contents.DeleteFunc(func(k cache.Key, _ *document.Contents) bool {
		_, ok := present[k.Path]
		return !ok
	})
}

// Cached returns the number of documents whose contents are in memory.
func (v *Vault) Cached() int {
	return v.contents.Len()
}

func compileGlobs(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))

	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}

		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, errors.Errorf("invalid glob %q: %w", pattern, err)
		}

		globs = append(globs, g)
	}

	return globs, nil
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
