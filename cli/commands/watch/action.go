package watch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gruntwork-io/notecards/cli/commands/common"
	"github.com/gruntwork-io/notecards/internal/document"
	"github.com/gruntwork-io/notecards/internal/query"
	"github.com/gruntwork-io/notecards/internal/session"
	"github.com/gruntwork-io/notecards/internal/vault"
	"github.com/gruntwork-io/notecards/pkg/log"
	"github.com/mgutz/ansi"
)

// Run prints the cards matching queryText every time the displayed list
// settles on something new, until ctx is done.
func Run(ctx context.Context, opts *Options, queryText string) error {
	return common.Live(ctx, opts.Options, queryText, func(ctx context.Context, v *vault.Vault, sess *session.Session) error {
		return printViews(ctx, opts, v, sess, queryText)
	})
}

func printViews(ctx context.Context, opts *Options, v *vault.Vault, sess *session.Session, queryText string) error {
	views, unsubscribe := sess.Subscribe()
	defer unsubscribe()

	var (
		useColor  = log.IsTerminal(opts.Writer)
		colorizer = common.NewColorizer(useColor).WithWrap(common.TerminalWidth(opts.Writer))
		header    = func(s string) string { return s }
		lastKey   string
		printed   bool
	)

	if useColor {
		header = ansi.ColorFunc("cyan+b")
	}

	previewLimit := 0
	if opts.Preview {
		previewLimit = document.DefaultPreviewLimit
	}

	for {
		var (
			view session.View
			ok   bool
		)

		select {
		case <-ctx.Done():
			return nil
		case view, ok = <-views:
			if !ok {
				return nil
			}
		}

		// Views of the listing that precede the query, and partial results, are not printed.
		if view.Generation == 0 || !view.Complete || view.Query != queryText {
			continue
		}

		key := viewKey(view)
		if printed && key == lastKey {
			continue
		}

		if !printed {
			for _, diag := range view.Diagnostics {
				fmt.Fprintln(opts.ErrWriter, query.FormatDiagnostic(diag, log.IsTerminal(opts.ErrWriter)))
			}
		}

		lastKey, printed = key, true

		now := time.Now()
		fmt.Fprintln(opts.Writer, header(fmt.Sprintf("== %s: %d shown of %d notes ==", now.Format(time.TimeOnly), len(view.Displayed), view.Total)))

		cards := common.NewCards(ctx, v, view.Displayed, opts.TitleMode(), previewLimit, opts.Pinned)
		if err := common.WriteText(opts.Writer, cards, colorizer, now); err != nil {
			return err
		}

		if len(cards) == 0 {
			fmt.Fprintln(opts.Writer, "No matching notes")
		}

		fmt.Fprintln(opts.Writer)
	}
}

// viewKey identifies what a printout shows: the displayed notes at their current versions.
func viewKey(view session.View) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%d", view.Total)

	for _, doc := range view.Displayed {
		fmt.Fprintf(&sb, "\x00%s@%d", doc.Path, doc.Stamp())
	}

	return sb.String()
}
