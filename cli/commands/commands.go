// Package commands lists the notecards commands.
package commands

import (
	"github.com/gruntwork-io/notecards/cli/commands/browse"
	"github.com/gruntwork-io/notecards/cli/commands/parse"
	"github.com/gruntwork-io/notecards/cli/commands/pin"
	"github.com/gruntwork-io/notecards/cli/commands/saved"
	"github.com/gruntwork-io/notecards/cli/commands/search"
	"github.com/gruntwork-io/notecards/cli/commands/tags"
	"github.com/gruntwork-io/notecards/cli/commands/watch"
	"github.com/gruntwork-io/notecards/options"
	"github.com/urfave/cli/v2"
)

const (
	// QueryCategory groups the commands that run queries.
	QueryCategory = "Query commands:"
	// ManageCategory groups the commands that change stored state.
	ManageCategory = "Management commands:"
)

// New returns every command of the app, grouped by category.
func New(opts *options.Options) cli.Commands {
	queryCommands := cli.Commands{
		browse.NewCommand(opts),
		search.NewCommand(opts),
		watch.NewCommand(opts),
		tags.NewCommand(opts),
		parse.NewCommand(opts),
	}

	manageCommands := cli.Commands{
		pin.NewPinCommand(opts),
		pin.NewUnpinCommand(opts),
		pin.NewPinsCommand(opts),
		saved.NewCommand(opts),
	}

	for _, cmd := range queryCommands {
		cmd.Category = QueryCategory
	}

	for _, cmd := range manageCommands {
		cmd.Category = ManageCategory
	}

	return append(queryCommands, manageCommands...)
}
