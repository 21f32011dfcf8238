// Package watch implements `notecards watch`, which keeps a query running
// against the vault and reprints the displayed cards whenever they change.
package watch

import (
	"github.com/gruntwork-io/notecards/cli/commands/common"
	"github.com/gruntwork-io/notecards/cli/flags"
	"github.com/gruntwork-io/notecards/options"
	"github.com/urfave/cli/v2"
)

const (
	CommandName = "watch"

	PreviewFlagName = "preview"
)

// Options of the watch command.
type Options struct {
	*options.Options

	// Preview prints a preview under every card.
	Preview bool
}

func NewFlags(opts *Options, prefix flags.Prefix) []cli.Flag {
	prefix = prefix.Append(CommandName)

	return []cli.Flag{
		&cli.BoolFlag{
			Name:        PreviewFlagName,
			Aliases:     []string{"p"},
			EnvVars:     prefix.EnvVars(PreviewFlagName),
			Destination: &opts.Preview,
			Usage:       "Print a preview of every card.",
		},
	}
}

func NewCommand(opts *options.Options) *cli.Command {
	cmdOpts := &Options{Options: opts}

	return &cli.Command{
		Name:      CommandName,
		Usage:     "Keep a query running and reprint the cards whenever notes change.",
		ArgsUsage: "[QUERY...]",
		Flags:     NewFlags(cmdOpts, nil),
		Action: func(cliCtx *cli.Context) error {
			return Run(cliCtx.Context, cmdOpts, common.QueryText(cliCtx))
		},
	}
}
