// Package parse implements `notecards parse`, which shows how a query is understood.
package parse

import (
	"github.com/gruntwork-io/notecards/cli/commands/common"
	"github.com/gruntwork-io/notecards/cli/flags"
	"github.com/gruntwork-io/notecards/options"
	"github.com/urfave/cli/v2"
)

const (
	CommandName = "parse"

	CompactFlagName = "compact"
	JSONFlagName    = "json"
)

// Options of the parse command.
type Options struct {
	*options.Options

	// Compact prints the expression on one line.
	Compact bool
	JSON    bool
}

func NewFlags(opts *Options, prefix flags.Prefix) []cli.Flag {
	prefix = prefix.Append(CommandName)

	return []cli.Flag{
		&cli.BoolFlag{
			Name:        CompactFlagName,
			EnvVars:     prefix.EnvVars(CompactFlagName),
			Destination: &opts.Compact,
			Usage:       "Print the expression on a single line.",
		},
		&cli.BoolFlag{
			Name:        JSONFlagName,
			EnvVars:     prefix.EnvVars(JSONFlagName),
			Destination: &opts.JSON,
			Usage:       "Print the expression and diagnostics as JSON.",
		},
	}
}

func NewCommand(opts *options.Options) *cli.Command {
	cmdOpts := &Options{Options: opts}

	return &cli.Command{
		Name:      CommandName,
		Usage:     "Print the expression tree of a query and what the parser recovered from.",
		ArgsUsage: "QUERY...",
		Flags:     NewFlags(cmdOpts, nil),
		Action: func(cliCtx *cli.Context) error {
			return Run(cliCtx.Context, cmdOpts, common.QueryText(cliCtx))
		},
	}
}
