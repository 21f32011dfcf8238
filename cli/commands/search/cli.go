// Package search implements `notecards search`, which runs a query over the
// whole vault and prints the first page of matching cards.
package search

import (
	"github.com/gruntwork-io/notecards/cli/commands/common"
	"github.com/gruntwork-io/notecards/cli/flags"
	"github.com/gruntwork-io/notecards/options"
	"github.com/urfave/cli/v2"
)

const (
	CommandName  = "search"
	CommandAlias = "s"

	FormatFlagName       = "format"
	JSONFlagName         = "json"
	LimitFlagName        = "limit"
	PreviewFlagName      = "preview"
	PreviewLimitFlagName = "preview-limit"
)

// NewFlags creates the flags of the command.
func NewFlags(opts *Options, prefix flags.Prefix) []cli.Flag {
	prefix = prefix.Append(CommandName)

	return []cli.Flag{
		&cli.StringFlag{
			Name:        FormatFlagName,
			EnvVars:     prefix.EnvVars(FormatFlagName),
			Destination: &opts.Format,
			Value:       opts.Format,
			Usage:       "Output format: text, json.",
		},
		&cli.BoolFlag{
			Name:        JSONFlagName,
			EnvVars:     prefix.EnvVars(JSONFlagName),
			Destination: &opts.JSON,
			Usage:       "Output in JSON format (equivalent to --format=json).",
		},
		&cli.IntFlag{
			Name:        LimitFlagName,
			Aliases:     []string{"n"},
			EnvVars:     prefix.EnvVars(LimitFlagName),
			Destination: &opts.Limit,
			Usage:       "Number of cards to print. Defaults to the page size.",
		},
		&cli.BoolFlag{
			Name:        PreviewFlagName,
			Aliases:     []string{"p"},
			EnvVars:     prefix.EnvVars(PreviewFlagName),
			Destination: &opts.Preview,
			Usage:       "Print a preview of every card.",
		},
		&cli.IntFlag{
			Name:        PreviewLimitFlagName,
			EnvVars:     prefix.EnvVars(PreviewLimitFlagName),
			Destination: &opts.PreviewLimit,
			Value:       opts.PreviewLimit,
			Usage:       "Maximum number of characters of a preview.",
		},
	}
}

// NewCommand creates the command.
func NewCommand(opts *options.Options) *cli.Command {
	cmdOpts := NewOptions(opts)

	return &cli.Command{
		Name:      CommandName,
		Aliases:   []string{CommandAlias},
		Usage:     "Print the cards of the notes matching a query.",
		ArgsUsage: "QUERY...",
		Flags:     NewFlags(cmdOpts, nil),
		Before: func(*cli.Context) error {
			if cmdOpts.JSON {
				cmdOpts.Format = FormatJSON
			}

			if err := cmdOpts.Validate(); err != nil {
				return cli.Exit(err, 2)
			}

			return nil
		},
		Action: func(cliCtx *cli.Context) error {
			return Run(cliCtx.Context, cmdOpts, common.QueryText(cliCtx))
		},
	}
}
