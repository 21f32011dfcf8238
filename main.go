package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gruntwork-io/notecards/cli"
	"github.com/gruntwork-io/notecards/internal/errors"
	"github.com/gruntwork-io/notecards/options"
	"github.com/gruntwork-io/notecards/pkg/log"
	urfavecli "github.com/urfave/cli/v2"
)

// The main entrypoint for notecards
func main() {
	opts := options.NewOptions()

	defer errors.Recover(checkForErrorsAndExit(opts.Logger))

	app := cli.NewApp(opts)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := app.RunContext(log.ContextWithLogger(ctx, opts.Logger), os.Args)

	stop()
	checkForErrorsAndExit(opts.Logger)(err)
}

// If there is an error, display it in the console and exit with a non-zero exit code. Otherwise, exit 0.
func checkForErrorsAndExit(logger log.Logger) func(error) {
	return func(err error) {
		if err == nil || errors.IsContextCanceled(err) {
			os.Exit(0)
		}

		logger.Error(err.Error())

		if errStack := errors.ErrorStack(err); errStack != "" {
			logger.Trace(errStack)
		}

		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var withCode errors.ErrorWithExitCode
	if errors.As(err, &withCode) {
		return withCode.ExitCode
	}

	var exitCoder urfavecli.ExitCoder
	if errors.As(err, &exitCoder) {
		return exitCoder.ExitCode()
	}

	return 1
}
