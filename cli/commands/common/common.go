// Package common holds what several notecards commands share: loading the
// vault, running a complete search pass and rendering cards.
package common

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gruntwork-io/notecards/internal/document"
	"github.com/gruntwork-io/notecards/internal/query"
	"github.com/gruntwork-io/notecards/internal/search"
	"github.com/gruntwork-io/notecards/internal/store"
	"github.com/gruntwork-io/notecards/internal/vault"
	"github.com/gruntwork-io/notecards/internal/window"
	"github.com/gruntwork-io/notecards/options"
	"github.com/gruntwork-io/notecards/pkg/log"
	"github.com/urfave/cli/v2"
)

// QueryText joins the command arguments into one query.
func QueryText(cliCtx *cli.Context) string {
	return strings.Join(cliCtx.Args().Slice(), " ")
}

// OpenStore opens the configured database.
func OpenStore(opts *options.Options) (*store.Store, error) {
	path, err := opts.StoreFile()
	if err != nil {
		return nil, err
	}

	return store.Open(path)
}

// Result is the outcome of one complete search pass.
type Result struct {
	Vault     *vault.Vault
	Filter    *query.Filter
	Displayed []*document.Document
	State     search.State
	// Matched is the number of matching documents, displayed or not.
	Matched int
}

// Search lists the vault and evaluates queryText over every document. At
// most limit documents are returned, in display order; limit <= 0 means one
// page and math.MaxInt means every match.
func Search(ctx context.Context, opts *options.Options, queryText string, limit int) (*Result, error) {
	v, err := opts.OpenVault()
	if err != nil {
		return nil, err
	}

	docs, err := v.List(ctx)
	if err != nil {
		return nil, err
	}

	filter := query.Prepare(ctx, queryText)
	if filter != nil || !opts.ShowEmptyNotes {
		if err := v.Warm(ctx, docs); err != nil {
			return nil, err
		}
	}

	sorted := document.Sort(docs, opts.SortMode(), opts.Pinned)

	executor := search.NewExecutor(v, search.WithLogger(opts.Logger), search.WithFlushInterval(opts.FlushInterval))

	state, err := executor.Run(ctx, search.Request{
		Filter:        filter,
		Documents:     sorted,
		CaseSensitive: opts.CaseSensitive,
		HideEmpty:     !opts.ShowEmptyNotes,
	})
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = opts.PageSize
	}

	win := window.New(window.WithPageSize(max(min(limit, len(sorted)), 1)))

	opts.Logger.WithFields(log.Fields{
		"documents": len(sorted),
		"excluded":  state.Excluded.Len(),
	}).Debugf("Search %q complete", queryText)

	return &Result{
		Vault:     v,
		Filter:    filter,
		Displayed: win.Update(sorted, state),
		State:     state,
		Matched:   len(sorted) - state.Excluded.Len(),
	}, nil
}

// ReportDiagnostics writes what the parser recovered from.
func ReportDiagnostics(w io.Writer, filter *query.Filter, useColor bool) {
	for _, diag := range filter.Diagnostics() {
		fmt.Fprintln(w, query.FormatDiagnostic(diag, useColor))
	}
}
