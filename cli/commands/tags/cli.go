// Package tags implements `notecards tags`, the tag cloud of the notes matching a query.
package tags

import (
	"github.com/gruntwork-io/notecards/cli/commands/common"
	"github.com/gruntwork-io/notecards/cli/flags"
	"github.com/gruntwork-io/notecards/options"
	"github.com/urfave/cli/v2"
)

const (
	CommandName = "tags"

	JSONFlagName = "json"
	TopFlagName  = "top"
)

// Options of the tags command.
type Options struct {
	*options.Options

	JSON bool
	// Top limits the output to the most frequent tags; zero prints all.
	Top int
}

func NewFlags(opts *Options, prefix flags.Prefix) []cli.Flag {
	prefix = prefix.Append(CommandName)

	return []cli.Flag{
		&cli.BoolFlag{
			Name:        JSONFlagName,
			EnvVars:     prefix.EnvVars(JSONFlagName),
			Destination: &opts.JSON,
			Usage:       "Print the tag counts as JSON.",
		},
		&cli.IntFlag{
			Name:        TopFlagName,
			EnvVars:     prefix.EnvVars(TopFlagName),
			Destination: &opts.Top,
			Usage:       "Only print the most frequent tags.",
		},
	}
}

func NewCommand(opts *options.Options) *cli.Command {
	cmdOpts := &Options{Options: opts}

	return &cli.Command{
		Name:      CommandName,
		Usage:     "Count the tags of the notes matching a query, most frequent first.",
		ArgsUsage: "[QUERY...]",
		Flags:     NewFlags(cmdOpts, nil),
		Action: func(cliCtx *cli.Context) error {
			return Run(cliCtx.Context, cmdOpts, common.QueryText(cliCtx))
		},
	}
}
