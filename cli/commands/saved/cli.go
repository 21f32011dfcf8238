// Package saved implements `notecards saved`, which stores queries under a
// name and runs them later.
package saved

import (
	"github.com/gruntwork-io/notecards/cli/commands/search"
	"github.com/gruntwork-io/notecards/options"
	"github.com/urfave/cli/v2"
)

const (
	CommandName = "saved"

	SaveCommandName   = "save"
	ListCommandName   = "list"
	DeleteCommandName = "delete"
	RunCommandName    = "run"

	JSONFlagName = "json"
)

func NewCommand(opts *options.Options) *cli.Command {
	return &cli.Command{
		Name:  CommandName,
		Usage: "Manage saved searches.",
		Subcommands: cli.Commands{
			newSaveCommand(opts),
			newListCommand(opts),
			newDeleteCommand(opts),
			newRunCommand(opts),
		},
	}
}

func newSaveCommand(opts *options.Options) *cli.Command {
	return &cli.Command{
		Name:      SaveCommandName,
		Usage:     "Save a query under a name, replacing any query saved under it.",
		ArgsUsage: "NAME QUERY...",
		Action: func(cliCtx *cli.Context) error {
			args := cliCtx.Args().Slice()
			if len(args) == 0 {
				return Save(cliCtx.Context, opts, "", nil)
			}

			return Save(cliCtx.Context, opts, args[0], args[1:])
		},
	}
}

func newListCommand(opts *options.Options) *cli.Command {
	var asJSON bool

	return &cli.Command{
		Name:  ListCommandName,
		Usage: "List the saved searches.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        JSONFlagName,
				Destination: &asJSON,
				Usage:       "Print the saved searches as a JSON array.",
			},
		},
		Action: func(cliCtx *cli.Context) error {
			return List(cliCtx.Context, opts, asJSON)
		},
	}
}

func newDeleteCommand(opts *options.Options) *cli.Command {
	return &cli.Command{
		Name:      DeleteCommandName,
		Usage:     "Delete a saved search.",
		ArgsUsage: "NAME",
		Action: func(cliCtx *cli.Context) error {
			return Delete(cliCtx.Context, opts, cliCtx.Args().First())
		},
	}
}

func newRunCommand(opts *options.Options) *cli.Command {
	cmdOpts := search.NewOptions(opts)

	return &cli.Command{
		Name:      RunCommandName,
		Usage:     "Print the cards of the notes matching a saved search.",
		ArgsUsage: "NAME",
		Flags:     search.NewFlags(cmdOpts, nil),
		Before: func(*cli.Context) error {
			if cmdOpts.JSON {
				cmdOpts.Format = search.FormatJSON
			}

			if err := cmdOpts.Validate(); err != nil {
				return cli.Exit(err, 2)
			}

			return nil
		},
		Action: func(cliCtx *cli.Context) error {
			return Run(cliCtx.Context, cmdOpts, cliCtx.Args().First())
		},
	}
}
