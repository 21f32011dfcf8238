// Package options holds the settings shared by every notecards command.
package options

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/gruntwork-io/notecards/internal/document"
	"github.com/gruntwork-io/notecards/internal/errors"
	"github.com/gruntwork-io/notecards/internal/search"
	"github.com/gruntwork-io/notecards/internal/telemetry"
	"github.com/gruntwork-io/notecards/internal/vault"
	"github.com/gruntwork-io/notecards/internal/window"
	"github.com/gruntwork-io/notecards/internal/worker"
	"github.com/gruntwork-io/notecards/pkg/log"
	"github.com/mitchellh/go-homedir"
)

const ContextKey ctxKey = iota

const (
	DefaultStorePath     = "~/.notecards/notecards.db"
	DefaultMinCardWidth  = 200
	DefaultMaxCardHeight = 0
	DefaultPreviewLimit  = document.DefaultPreviewLimit

	defaultLogLevel = log.InfoLevel
)

type ctxKey byte

// Options are the settings of one notecards invocation.
type Options struct {
	Writer    io.Writer
	ErrWriter io.Writer
	Logger    log.Logger
	Telemetry *telemetry.Options

	// WorkingDir is the vault root.
	WorkingDir string
	LogLevel   string
	LogFormat  string
	// StorePath is the bbolt database; a leading `~` is the home directory.
	StorePath string

	Sort         string
	DisplayTitle string
	Pinned       []string
	Include      []string
	Ignore       []string

	PageSize      int
	ReadWorkers   int
	MinCardWidth  int
	MaxCardHeight int
	FlushInterval time.Duration
	// WatchDebounce is the quiet period after file changes before the vault is rescanned.
	WatchDebounce time.Duration

	CaseSensitive  bool
	ShowEmptyNotes bool
}

// NewOptions creates options with the defaults for real usage.
func NewOptions() *Options {
	return NewOptionsWithWriters(os.Stdout, os.Stderr)
}

// NewOptionsWithWriters creates default options writing to the given streams.
func NewOptionsWithWriters(stdout, stderr io.Writer) *Options {
	workingDir, err := os.Getwd()
	if err != nil {
		workingDir = "."
	}

	return &Options{
		Writer:         stdout,
		ErrWriter:      stderr,
		Logger:         log.New(log.WithOutput(stderr), log.WithLevel(defaultLogLevel)),
		Telemetry:      &telemetry.Options{TraceExporter: "none", MetricExporter: "none"},
		WorkingDir:     workingDir,
		LogLevel:       defaultLogLevel.String(),
		LogFormat:      log.PrettyFormat,
		StorePath:      DefaultStorePath,
		Sort:           string(document.DefaultSortMode),
		DisplayTitle:   string(document.TitleBoth),
		Pinned:         []string{},
		Include:        slices.Clone(vault.DefaultInclude),
		Ignore:         slices.Clone(vault.DefaultIgnore),
		PageSize:       window.DefaultPageSize,
		ReadWorkers:    worker.DefaultWorkers,
		MinCardWidth:   DefaultMinCardWidth,
		MaxCardHeight:  DefaultMaxCardHeight,
		FlushInterval:  search.DefaultFlushInterval,
		WatchDebounce:  vault.DefaultDebounce,
		CaseSensitive:  false,
		ShowEmptyNotes: false,
	}
}

// Validate checks every setting and reports all problems at once.
func (opts *Options) Validate() error {
	errs := &errors.MultiError{}

	if _, err := document.ParseSortMode(opts.Sort); err != nil {
		errs = errs.Append(err)
	}

	if _, err := document.ParseTitleMode(opts.DisplayTitle); err != nil {
		errs = errs.Append(err)
	}

	if _, err := log.ParseLevel(opts.LogLevel); err != nil {
		errs = errs.Append(err)
	}

	if _, err := log.NewFormatter(opts.LogFormat, io.Discard); err != nil {
		errs = errs.Append(err)
	}

	if opts.PageSize <= 0 {
		errs = errs.Append(errors.Errorf("page size must be positive, got %d", opts.PageSize))
	}

	if opts.FlushInterval < 0 {
		errs = errs.Append(errors.Errorf("flush interval must not be negative, got %s", opts.FlushInterval))
	}

	if opts.WatchDebounce < 0 {
		errs = errs.Append(errors.Errorf("watch debounce must not be negative, got %s", opts.WatchDebounce))
	}

	if opts.ReadWorkers <= 0 {
		errs = errs.Append(errors.Errorf("read workers must be positive, got %d", opts.ReadWorkers))
	}

	if opts.MinCardWidth <= 0 {
		errs = errs.Append(errors.Errorf("minimum card width must be positive, got %d", opts.MinCardWidth))
	}

	if opts.MaxCardHeight < 0 {
		errs = errs.Append(errors.Errorf("maximum card height must not be negative, got %d", opts.MaxCardHeight))
	}

	if len(opts.Include) == 0 {
		errs = errs.Append(errors.New("at least one include pattern is required"))
	}

	return errs.ErrorOrNil()
}

// SortMode returns the parsed sort mode, the default if it is invalid.
func (opts *Options) SortMode() document.SortMode {
	mode, err := document.ParseSortMode(opts.Sort)
	if err != nil {
		return document.DefaultSortMode
	}

	return mode
}

// TitleMode returns the parsed title mode, TitleBoth if it is invalid.
func (opts *Options) TitleMode() document.TitleMode {
	mode, err := document.ParseTitleMode(opts.DisplayTitle)
	if err != nil {
		return document.TitleBoth
	}

	return mode
}

// StoreFile returns the absolute path of the database.
func (opts *Options) StoreFile() (string, error) {
	path, err := homedir.Expand(opts.StorePath)
	if err != nil {
		return "", errors.New(err)
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(opts.WorkingDir, path)
	}

	return path, nil
}

// OpenVault opens the vault at the working directory with the configured patterns.
func (opts *Options) OpenVault() (*vault.Vault, error) {
	return vault.New(opts.WorkingDir,
		vault.WithInclude(opts.Include...),
		vault.WithIgnore(opts.Ignore...),
		vault.WithLogger(opts.Logger),
		vault.WithWorkers(opts.ReadWorkers),
	)
}

// Clone returns a copy whose slices can be modified independently.
func (opts *Options) Clone() *Options {
	clone := *opts
	clone.Pinned = slices.Clone(opts.Pinned)
	clone.Include = slices.Clone(opts.Include)
	clone.Ignore = slices.Clone(opts.Ignore)

	if opts.Telemetry != nil {
		telemetryOpts := *opts.Telemetry
		clone.Telemetry = &telemetryOpts
	}

	return &clone
}

// OptionsFromContext returns the options carried by ctx, falling back to opts.
func (opts *Options) OptionsFromContext(ctx context.Context) *Options {
	if val, ok := ctx.Value(ContextKey).(*Options); ok && val != nil {
		return val
	}

	return opts
}

// ContextWithOptions returns a copy of ctx carrying opts.
func ContextWithOptions(ctx context.Context, opts *Options) context.Context {
	return context.WithValue(ctx, ContextKey, opts)
}
