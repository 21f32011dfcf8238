package browse

import (
	"context"
	"io"
	"path/filepath"

	"github.com/gruntwork-io/notecards/cli/commands/browse/tui"
	"github.com/gruntwork-io/notecards/cli/commands/common"
	"github.com/gruntwork-io/notecards/internal/document"
	"github.com/gruntwork-io/notecards/internal/errors"
	"github.com/gruntwork-io/notecards/internal/session"
	"github.com/gruntwork-io/notecards/internal/store"
	"github.com/gruntwork-io/notecards/internal/vault"
	"github.com/pkg/browser"
)

// Run opens the browser on the vault, starting with queryText.
func Run(ctx context.Context, opts *Options, queryText string) error {
	// The opener's own output would tear the alternate screen.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard

	frontEnd := func(ctx context.Context, v *vault.Vault, sess *session.Session) error {
		views, unsubscribe := sess.Subscribe()
		defer unsubscribe()

		model := tui.New(ctx, sess, v, views,
			tui.WithQuery(queryText),
			tui.WithTitleMode(opts.TitleMode()),
			tui.WithPinned(opts.Pinned),
			tui.WithCaseSensitive(opts.CaseSensitive),
			tui.WithGlamourStyle(opts.Style),
			tui.WithSortChanged(func(mode document.SortMode) {
				saveSort(opts, mode)
			}),
			tui.WithOpener(func(doc *document.Document) error {
				return openNote(v, doc)
			}),
		)

		return tui.Run(ctx, model)
	}

	return common.Live(ctx, opts.Options, queryText, frontEnd, session.WithScrollThreshold(tui.DefaultScrollThreshold))
}

// openNote hands the note to the application registered for its type.
func openNote(v *vault.Vault, doc *document.Document) error {
	if err := browser.OpenFile(filepath.Join(v.Root, filepath.FromSlash(doc.Path))); err != nil {
		return errors.Errorf("opening %s: %w", doc.Path, err)
	}

	return nil
}

// saveSort remembers the sort mode for the next run. Failures only cost the preference.
func saveSort(opts *Options, mode document.SortMode) {
	st, err := common.OpenStore(opts.Options)
	if err != nil {
		opts.Logger.Warnf("Could not remember the sort mode: %v", err)
		return
	}

	defer st.Close()

	if err := st.SetSetting(store.SettingSort, string(mode)); err != nil {
		opts.Logger.Warnf("Could not remember the sort mode: %v", err)
	}
}
