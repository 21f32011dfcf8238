package saved

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/gruntwork-io/notecards/cli/commands/common"
	"github.com/gruntwork-io/notecards/cli/commands/search"
	"github.com/gruntwork-io/notecards/internal/errors"
	"github.com/gruntwork-io/notecards/internal/store"
	"github.com/gruntwork-io/notecards/options"
)

// ErrNoName is returned when a subcommand needs a search name and got none.
var ErrNoName = errors.New("a saved search name is required")

// Save stores the joined args under name.
func Save(ctx context.Context, opts *options.Options, name string, args []string) error {
	if name == "" {
		return errors.ErrorWithExitCode{Err: ErrNoName, ExitCode: 2}
	}

	queryText := strings.Join(args, " ")

	return withStore(opts, func(st *store.Store) error {
		if err := st.SaveSearch(name, queryText); err != nil {
			return err
		}

		opts.Logger.Infof("Saved search %s: %s", name, queryText)

		return nil
	})
}

// List prints the saved searches ordered by name.
func List(ctx context.Context, opts *options.Options, asJSON bool) error {
	return withStore(opts, func(st *store.Store) error {
		searches, err := st.Searches()
		if err != nil {
			return err
		}

		if asJSON {
			if searches == nil {
				searches = []store.SavedSearch{}
			}

			return common.WriteJSON(opts.Writer, searches)
		}

		w := tabwriter.NewWriter(opts.Writer, 0, 0, 2, ' ', 0)
		for _, s := range searches {
			fmt.Fprintf(w, "%s\t%s\n", s.Name, s.Query)
		}

		return w.Flush()
	})
}

// Delete removes the search saved under name.
func Delete(ctx context.Context, opts *options.Options, name string) error {
	if name == "" {
		return errors.ErrorWithExitCode{Err: ErrNoName, ExitCode: 2}
	}

	return withStore(opts, func(st *store.Store) error {
		if err := st.DeleteSearch(name); err != nil {
			return errors.Errorf("%s: %w", name, err)
		}

		opts.Logger.Infof("Deleted saved search %s", name)

		return nil
	})
}

// Run prints the cards of the search saved under name.
func Run(ctx context.Context, opts *search.Options, name string) error {
	if name == "" {
		return errors.ErrorWithExitCode{Err: ErrNoName, ExitCode: 2}
	}

	var queryText string

	err := withStore(opts.Options, func(st *store.Store) error {
		var err error

		queryText, err = st.Search(name)
		if err != nil {
			return errors.Errorf("%s: %w", name, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	opts.Logger.Debugf("Running saved search %s: %s", name, queryText)

	return search.Run(ctx, opts, queryText)
}

func withStore(opts *options.Options, fn func(st *store.Store) error) error {
	st, err := common.OpenStore(opts)
	if err != nil {
		return err
	}

	defer st.Close()

	return fn(st)
}
