// Package cli assembles the notecards command line application.
package cli

import (
	"os"
	"path/filepath"

	"github.com/gruntwork-io/notecards/cli/commands"
	"github.com/gruntwork-io/notecards/cli/flags"
	"github.com/gruntwork-io/notecards/internal/errors"
	"github.com/gruntwork-io/notecards/internal/store"
	"github.com/gruntwork-io/notecards/internal/telemetry"
	"github.com/gruntwork-io/notecards/options"
	"github.com/gruntwork-io/notecards/pkg/log"
	"github.com/urfave/cli/v2"
)

const AppName = "notecards"

// Version is set at build time.
var Version = "dev"

// NewApp creates the notecards CLI app.
func NewApp(opts *options.Options) *cli.App {
	app := cli.NewApp()
	app.Name = AppName
	app.Usage = "Search a directory of markdown notes with a small query language."
	app.UsageText = "notecards [global options] <command> [arguments...]"
	app.Version = Version
	app.Writer = opts.Writer
	app.ErrWriter = opts.ErrWriter
	app.EnableBashCompletion = true
	app.Flags = flags.NewGlobalFlags(opts, nil)
	app.Commands = commands.New(opts)
	app.Before = beforeRunningCommand(opts)
	app.After = afterRunningCommand
	app.ExitErrHandler = func(*cli.Context, error) {}

	return app
}

func beforeRunningCommand(opts *options.Options) cli.BeforeFunc {
	return func(cliCtx *cli.Context) error {
		if err := initialSetup(cliCtx, opts); err != nil {
			return err
		}

		tlm, err := telemetry.NewTelemeter(cliCtx.Context, AppName, Version, opts.ErrWriter, opts.Telemetry)
		if err != nil {
			return err
		}

		ctx := telemetry.ContextWithTelemeter(cliCtx.Context, tlm)
		ctx = log.ContextWithLogger(ctx, opts.Logger)
		cliCtx.Context = options.ContextWithOptions(ctx, opts)

		return nil
	}
}

func afterRunningCommand(cliCtx *cli.Context) error {
	return telemetry.TelemeterFromContext(cliCtx.Context).Shutdown(cliCtx.Context)
}

// initialSetup configures the logger, resolves the vault and merges persisted settings.
func initialSetup(cliCtx *cli.Context, opts *options.Options) error {
	if err := opts.Validate(); err != nil {
		return errors.ErrorWithExitCode{Err: err, ExitCode: 2}
	}

	level, err := log.ParseLevel(opts.LogLevel)
	if err != nil {
		return err
	}

	formatter, err := log.NewFormatter(opts.LogFormat, opts.ErrWriter)
	if err != nil {
		return err
	}

	opts.Logger.SetOptions(log.WithLevel(level), log.WithFormatter(formatter), log.WithOutput(opts.ErrWriter))

	workingDir, err := filepath.Abs(opts.WorkingDir)
	if err != nil {
		return errors.New(err)
	}

	opts.WorkingDir = workingDir

	return mergeStore(cliCtx, opts)
}

// mergeStore adds stored pins and the stored sort mode to opts. Flags given
// explicitly win over stored settings. A store that does not exist yet is skipped.
func mergeStore(cliCtx *cli.Context, opts *options.Options) error {
	path, err := opts.StoreFile()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err != nil {
		opts.Logger.Debugf("No store at %s", path)
		return nil
	}

	st, err := store.Open(path)
	if err != nil {
		return err
	}

	defer st.Close()

	pinned, err := st.Pinned()
	if err != nil {
		return err
	}

	opts.Pinned = append(pinned, opts.Pinned...)

	if cliCtx.IsSet(flags.SortFlagName) {
		return nil
	}

	sort, err := st.Setting(store.SettingSort)
	if errors.Is(err, store.ErrNoSetting) {
		return nil
	}

	if err != nil {
		return err
	}

	opts.Sort = sort

	// A stored mode from an older release may no longer exist.
	if err := opts.Validate(); err != nil {
		opts.Logger.Warnf("Ignoring stored sort mode %q", sort)
		opts.Sort = string(opts.SortMode())
	}

	return nil
}
