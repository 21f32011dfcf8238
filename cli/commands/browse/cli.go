// Package browse implements `notecards browse`, the interactive card browser.
package browse

import (
	"github.com/gruntwork-io/notecards/cli/commands/common"
	"github.com/gruntwork-io/notecards/cli/flags"
	"github.com/gruntwork-io/notecards/options"
	"github.com/urfave/cli/v2"
)

const (
	CommandName  = "browse"
	CommandAlias = "b"

	StyleFlagName = "style"
)

// Options of the browse command.
type Options struct {
	*options.Options

	// Style is the glamour style of the note pager; empty follows the terminal.
	Style string
}

func NewFlags(opts *Options, prefix flags.Prefix) []cli.Flag {
	prefix = prefix.Append(CommandName)

	return []cli.Flag{
		&cli.StringFlag{
			Name:        StyleFlagName,
			EnvVars:     prefix.EnvVars(StyleFlagName),
			Destination: &opts.Style,
			Usage:       "Style of the note pager: dark, light, notty. Defaults to the terminal background.",
		},
	}
}

func NewCommand(opts *options.Options) *cli.Command {
	cmdOpts := &Options{Options: opts}

	return &cli.Command{
		Name:      CommandName,
		Aliases:   []string{CommandAlias},
		Usage:     "Browse the notes interactively, filtering them as you type.",
		ArgsUsage: "[QUERY...]",
		Flags:     NewFlags(cmdOpts, nil),
		Action: func(cliCtx *cli.Context) error {
			return Run(cliCtx.Context, cmdOpts, common.QueryText(cliCtx))
		},
	}
}
