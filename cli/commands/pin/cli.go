// Package pin implements the `pin`, `unpin` and `pins` commands, which manage
// the notes always listed before the others.
package pin

import (
	"github.com/gruntwork-io/notecards/options"
	"github.com/urfave/cli/v2"
)

const (
	PinCommandName   = "pin"
	UnpinCommandName = "unpin"
	PinsCommandName  = "pins"

	JSONFlagName = "json"
)

func NewPinCommand(opts *options.Options) *cli.Command {
	return &cli.Command{
		Name:      PinCommandName,
		Usage:     "Pin notes so they are listed first.",
		ArgsUsage: "PATH...",
		Action: func(cliCtx *cli.Context) error {
			return Pin(cliCtx.Context, opts, cliCtx.Args().Slice())
		},
	}
}

func NewUnpinCommand(opts *options.Options) *cli.Command {
	return &cli.Command{
		Name:      UnpinCommandName,
		Usage:     "Unpin notes.",
		ArgsUsage: "PATH...",
		Action: func(cliCtx *cli.Context) error {
			return Unpin(cliCtx.Context, opts, cliCtx.Args().Slice())
		},
	}
}

func NewPinsCommand(opts *options.Options) *cli.Command {
	var asJSON bool

	return &cli.Command{
		Name:  PinsCommandName,
		Usage: "List the pinned notes in pin order.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        JSONFlagName,
				Destination: &asJSON,
				Usage:       "Print the pins as a JSON array.",
			},
		},
		Action: func(cliCtx *cli.Context) error {
			return List(cliCtx.Context, opts, asJSON)
		},
	}
}
