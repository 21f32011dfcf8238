// Package flags declares the global flags of notecards. Every flag can also be
// set through a NOTECARDS_* environment variable.
package flags

import (
	"strings"

	"github.com/gruntwork-io/notecards/internal/document"
	"github.com/gruntwork-io/notecards/options"
	"github.com/gruntwork-io/notecards/pkg/log"
	"github.com/urfave/cli/v2"
)

const (
	WorkingDirFlagName     = "working-dir"
	LogLevelFlagName       = "log-level"
	LogFormatFlagName      = "log-format"
	SortFlagName           = "sort"
	CaseSensitiveFlagName  = "case-sensitive"
	ShowEmptyNotesFlagName = "show-empty-notes"
	DisplayTitleFlagName   = "display-title"
	PageSizeFlagName       = "page-size"
	FlushIntervalFlagName  = "flush-interval"
	WatchDebounceFlagName  = "watch-debounce"
	StoreFlagName          = "store"
	IncludeFlagName        = "include"
	IgnoreFlagName         = "ignore"
	PinnedFlagName         = "pinned"
	ReadWorkersFlagName    = "read-workers"

	TraceExporterFlagName             = "telemetry-trace-exporter"
	TraceExporterHTTPEndpointFlagName = "telemetry-trace-exporter-http-endpoint"
	TraceExporterInsecureFlagName     = "telemetry-trace-exporter-insecure-endpoint"
	MetricExporterFlagName            = "telemetry-metric-exporter"
	MetricExporterInsecureFlagName    = "telemetry-metric-exporter-insecure-endpoint"
)

// NewGlobalFlags creates the flags shared by every command, bound to opts.
func NewGlobalFlags(opts *options.Options, prefix Prefix) []cli.Flag {
	sortModes := make([]string, len(document.AllSortModes))
	for i, mode := range document.AllSortModes {
		sortModes[i] = string(mode)
	}

	return []cli.Flag{
		&cli.StringFlag{
			Name:        WorkingDirFlagName,
			EnvVars:     prefix.EnvVars(WorkingDirFlagName),
			Destination: &opts.WorkingDir,
			Value:       opts.WorkingDir,
			Usage:       "The vault directory to search.",
			DefaultText: "current directory",
		},
		&cli.StringFlag{
			Name:        LogLevelFlagName,
			EnvVars:     prefix.EnvVars(LogLevelFlagName),
			Destination: &opts.LogLevel,
			Value:       opts.LogLevel,
			Usage:       "Sets the logging level: " + log.AllLevels.String() + ".",
		},
		&cli.StringFlag{
			Name:        LogFormatFlagName,
			EnvVars:     prefix.EnvVars(LogFormatFlagName),
			Destination: &opts.LogFormat,
			Value:       opts.LogFormat,
			Usage:       "Sets the log format: " + strings.Join(log.AllFormats, ", ") + ".",
		},
		&cli.StringFlag{
			Name:        SortFlagName,
			EnvVars:     prefix.EnvVars(SortFlagName),
			Destination: &opts.Sort,
			Value:       opts.Sort,
			Usage:       "Card order: " + strings.Join(sortModes, ", ") + ".",
		},
		&cli.BoolFlag{
			Name:        CaseSensitiveFlagName,
			EnvVars:     prefix.EnvVars(CaseSensitiveFlagName),
			Destination: &opts.CaseSensitive,
			Usage:       "Match query terms case-sensitively.",
		},
		&cli.BoolFlag{
			Name:        ShowEmptyNotesFlagName,
			EnvVars:     prefix.EnvVars(ShowEmptyNotesFlagName),
			Destination: &opts.ShowEmptyNotes,
			Usage:       "List notes whose body is blank.",
		},
		&cli.StringFlag{
			Name:        DisplayTitleFlagName,
			EnvVars:     prefix.EnvVars(DisplayTitleFlagName),
			Destination: &opts.DisplayTitle,
			Value:       opts.DisplayTitle,
			Usage:       "Card title: both, title, filename.",
		},
		&cli.IntFlag{
			Name:        PageSizeFlagName,
			EnvVars:     prefix.EnvVars(PageSizeFlagName),
			Destination: &opts.PageSize,
			Value:       opts.PageSize,
			Usage:       "Number of cards added per page.",
		},
		&cli.DurationFlag{
			Name:        FlushIntervalFlagName,
			EnvVars:     prefix.EnvVars(FlushIntervalFlagName),
			Destination: &opts.FlushInterval,
			Value:       opts.FlushInterval,
			Usage:       "Minimum time between two partial result updates.",
		},
		&cli.DurationFlag{
			Name:        WatchDebounceFlagName,
			EnvVars:     prefix.EnvVars(WatchDebounceFlagName),
			Destination: &opts.WatchDebounce,
			Value:       opts.WatchDebounce,
			Usage:       "Quiet period after file changes before the vault is rescanned by watch and browse.",
		},
		&cli.StringFlag{
			Name:        StoreFlagName,
			EnvVars:     prefix.EnvVars(StoreFlagName),
			Destination: &opts.StorePath,
			Value:       opts.StorePath,
			Usage:       "Database of pinned notes, saved searches and settings.",
		},
		&cli.StringSliceFlag{
			Name:    IncludeFlagName,
			EnvVars: prefix.EnvVars(IncludeFlagName),
			Value:   cli.NewStringSlice(opts.Include...),
			Usage:   "Glob of vault-relative paths to list. May be repeated.",
			Action: func(_ *cli.Context, patterns []string) error {
				opts.Include = patterns
				return nil
			},
		},
		&cli.StringSliceFlag{
			Name:    IgnoreFlagName,
			EnvVars: prefix.EnvVars(IgnoreFlagName),
			Value:   cli.NewStringSlice(opts.Ignore...),
			Usage:   "Glob of vault-relative paths to skip. May be repeated.",
			Action: func(_ *cli.Context, patterns []string) error {
				opts.Ignore = patterns
				return nil
			},
		},
		&cli.StringSliceFlag{
			Name:    PinnedFlagName,
			EnvVars: prefix.EnvVars(PinnedFlagName),
			Usage:   "Path of a note always listed first, in addition to the stored pins. May be repeated.",
			Action: func(_ *cli.Context, paths []string) error {
				opts.Pinned = append(opts.Pinned, paths...)
				return nil
			},
		},
		&cli.IntFlag{
			Name:        ReadWorkersFlagName,
			EnvVars:     prefix.EnvVars(ReadWorkersFlagName),
			Destination: &opts.ReadWorkers,
			Value:       opts.ReadWorkers,
			Usage:       "Number of notes read concurrently before a search.",
		},
		&cli.StringFlag{
			Name:        TraceExporterFlagName,
			EnvVars:     prefix.EnvVars(TraceExporterFlagName),
			Destination: &opts.Telemetry.TraceExporter,
			Value:       opts.Telemetry.TraceExporter,
			Usage:       "Trace exporter: none, console, otlpHttp, http.",
		},
		&cli.StringFlag{
			Name:        TraceExporterHTTPEndpointFlagName,
			EnvVars:     prefix.EnvVars(TraceExporterHTTPEndpointFlagName),
			Destination: &opts.Telemetry.TraceExporterHTTPEndpoint,
			Usage:       "Endpoint of the http trace exporter.",
		},
		&cli.BoolFlag{
			Name:        TraceExporterInsecureFlagName,
			EnvVars:     prefix.EnvVars(TraceExporterInsecureFlagName),
			Destination: &opts.Telemetry.TraceExporterInsecureEndpoint,
			Usage:       "Disable TLS for the OTLP trace exporter.",
		},
		&cli.StringFlag{
			Name:        MetricExporterFlagName,
			EnvVars:     prefix.EnvVars(MetricExporterFlagName),
			Destination: &opts.Telemetry.MetricExporter,
			Value:       opts.Telemetry.MetricExporter,
			Usage:       "Metric exporter: none, console, otlpHttp.",
		},
		&cli.BoolFlag{
			Name:        MetricExporterInsecureFlagName,
			EnvVars:     prefix.EnvVars(MetricExporterInsecureFlagName),
			Destination: &opts.Telemetry.MetricExporterInsecureEndpoint,
			Usage:       "Disable TLS for the OTLP metric exporter.",
		},
	}
}
