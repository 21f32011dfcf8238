package search

import (
	"context"
	"fmt"
	"time"

	"github.com/gruntwork-io/notecards/cli/commands/common"
	"github.com/gruntwork-io/notecards/pkg/log"
)

// Output is the JSON form of the command output.
type Output struct {
	Query   string        `json:"query"`
	Cards   []common.Card `json:"cards"`
	Matched int           `json:"matched"`
	Total   int           `json:"total"`
}

// Run searches the vault and prints the cards.
func Run(ctx context.Context, opts *Options, queryText string) error {
	result, err := common.Search(ctx, opts.Options, queryText, opts.Limit)
	if err != nil {
		return err
	}

	useColor := log.IsTerminal(opts.Writer)

	common.ReportDiagnostics(opts.ErrWriter, result.Filter, log.IsTerminal(opts.ErrWriter))

	previewLimit := 0
	if opts.Preview || opts.Format == FormatJSON {
		previewLimit = opts.PreviewLimit
	}

	cards := common.NewCards(ctx, result.Vault, result.Displayed, opts.TitleMode(), previewLimit, opts.Pinned)

	if opts.Format == FormatJSON {
		return common.WriteJSON(opts.Writer, Output{
			Query:   queryText,
			Cards:   cards,
			Matched: result.Matched,
			Total:   result.State.Total,
		})
	}

	if err := common.WriteText(opts.Writer, cards, common.NewColorizer(useColor).WithWrap(common.TerminalWidth(opts.Writer)), time.Now()); err != nil {
		return err
	}

	if result.Matched > len(cards) {
		opts.Logger.Infof("Showing %d of %d matching notes", len(cards), result.Matched)
	} else if len(cards) == 0 {
		fmt.Fprintln(opts.ErrWriter, "No matching notes")
	}

	return nil
}
