package common

import (
	"context"

	"github.com/gruntwork-io/notecards/internal/errors"
	"github.com/gruntwork-io/notecards/internal/session"
	"github.com/gruntwork-io/notecards/internal/vault"
	"github.com/gruntwork-io/notecards/options"
	"golang.org/x/sync/errgroup"
)

// FrontEnd renders a live session until it returns or ctx is done.
type FrontEnd func(ctx context.Context, v *vault.Vault, sess *session.Session) error

// SessionOptions translates the global options into session options.
func SessionOptions(opts *options.Options) []session.Option {
	return []session.Option{
		session.WithLogger(opts.Logger),
		session.WithSort(opts.SortMode()),
		session.WithPinned(opts.Pinned...),
		session.WithCaseSensitive(opts.CaseSensitive),
		session.WithShowEmpty(opts.ShowEmptyNotes),
		session.WithPageSize(opts.PageSize),
		session.WithFlushInterval(opts.FlushInterval),
	}
}

// Live runs a session over the vault, fed by a watcher, together with the
// front end. The query is sent once the first listing of the vault has
// reached the session. Everything stops as soon as the front end returns.
func Live(ctx context.Context, opts *options.Options, queryText string, frontEnd FrontEnd, extra ...session.Option) error {
	v, err := opts.OpenVault()
	if err != nil {
		return err
	}

	watcher := vault.NewWatcher(v, vault.WithDebounce(opts.WatchDebounce))
	sess := session.New(v, append(SessionOptions(opts), extra...)...)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	listed := make(chan struct{})

	g.Go(func() error {
		return watcher.Run(ctx)
	})

	g.Go(func() error {
		return sess.Run(ctx)
	})

	g.Go(func() error {
		first := true

		for docs := range watcher.Snapshots() {
			if err := sess.Send(ctx, session.SetDocuments{Documents: docs}); err != nil {
				return ignoreShutdown(err)
			}

			if first {
				close(listed)
				first = false
			}
		}

		return nil
	})

	g.Go(func() error {
		defer cancel()

		select {
		case <-listed:
		case <-ctx.Done():
			return nil
		}

		if err := sess.Send(ctx, session.SetQuery{Query: queryText}); err != nil {
			return ignoreShutdown(err)
		}

		return frontEnd(ctx, v, sess)
	})

	return g.Wait()
}

// ignoreShutdown drops the errors a send returns while everything is stopping.
func ignoreShutdown(err error) error {
	if errors.Is(err, session.ErrClosed) || errors.IsContextCanceled(err) {
		return nil
	}

	return err
}
