package tags

import (
	"context"
	"fmt"
	"math"

	"github.com/gruntwork-io/notecards/cli/commands/common"
	"github.com/gruntwork-io/notecards/internal/document"
	"github.com/gruntwork-io/notecards/pkg/log"
	"github.com/mgutz/ansi"
)

// Run prints the tag cloud of every note matching queryText.
func Run(ctx context.Context, opts *Options, queryText string) error {
	result, err := common.Search(ctx, opts.Options, queryText, math.MaxInt)
	if err != nil {
		return err
	}

	common.ReportDiagnostics(opts.ErrWriter, result.Filter, log.IsTerminal(opts.ErrWriter))

	sets := make([][]string, 0, len(result.Displayed))

	for _, doc := range result.Displayed {
		contents, err := result.Vault.Read(ctx, doc)
		if err != nil {
			opts.Logger.Debugf("Could not read %s: %v", doc.Path, err)
			continue
		}

		sets = append(sets, contents.Tags)
	}

	ranked := document.RankTags(sets...)
	if opts.Top > 0 && len(ranked) > opts.Top {
		ranked = ranked[:opts.Top]
	}

	if opts.JSON {
		return common.WriteJSON(opts.Writer, ranked)
	}

	color := func(s string) string { return s }
	if log.IsTerminal(opts.Writer) {
		color = ansi.ColorFunc("green")
	}

	for _, tag := range ranked {
		fmt.Fprintf(opts.Writer, "%5d %s\n", tag.Count, color("#"+tag.Name))
	}

	return nil
}
