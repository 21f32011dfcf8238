package pin

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gruntwork-io/notecards/cli/commands/common"
	"github.com/gruntwork-io/notecards/internal/errors"
	"github.com/gruntwork-io/notecards/internal/store"
	"github.com/gruntwork-io/notecards/options"
)

// ErrNoPaths is returned when pin or unpin get no argument.
var ErrNoPaths = errors.New("at least one note path is required")

// Pin stores every path as pinned, in argument order.
func Pin(ctx context.Context, opts *options.Options, args []string) error {
	return withPaths(opts, args, func(st *store.Store, rel string) error {
		if err := st.Pin(rel); err != nil {
			return err
		}

		opts.Logger.Infof("Pinned %s", rel)

		return nil
	})
}

// Unpin removes every path from the pins. Paths that are not pinned are ignored.
func Unpin(ctx context.Context, opts *options.Options, args []string) error {
	return withPaths(opts, args, func(st *store.Store, rel string) error {
		if err := st.Unpin(rel); err != nil {
			return err
		}

		opts.Logger.Infof("Unpinned %s", rel)

		return nil
	})
}

// List prints the stored pins.
func List(ctx context.Context, opts *options.Options, asJSON bool) error {
	st, err := common.OpenStore(opts)
	if err != nil {
		return err
	}

	defer st.Close()

	pinned, err := st.Pinned()
	if err != nil {
		return err
	}

	if asJSON {
		return common.WriteJSON(opts.Writer, pinned)
	}

	for _, rel := range pinned {
		fmt.Fprintln(opts.Writer, rel)
	}

	return nil
}

func withPaths(opts *options.Options, args []string, fn func(st *store.Store, rel string) error) error {
	if len(args) == 0 {
		return errors.ErrorWithExitCode{Err: ErrNoPaths, ExitCode: 2}
	}

	rels := make([]string, 0, len(args))

	for _, arg := range args {
		rel, err := VaultPath(opts.WorkingDir, arg)
		if err != nil {
			return err
		}

		rels = append(rels, rel)
	}

	st, err := common.OpenStore(opts)
	if err != nil {
		return err
	}

	defer st.Close()

	errs := &errors.MultiError{}

	for _, rel := range rels {
		if err := fn(st, rel); err != nil {
			errs = errs.Append(err)
		}
	}

	return errs.ErrorOrNil()
}

// VaultPath converts a note path to the vault-relative slash form pins are
// stored in. Relative paths are taken relative to the vault root.
func VaultPath(root, path string) (string, error) {
	if filepath.IsAbs(path) {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return "", errors.New(err)
		}

		path = rel
	}

	rel := filepath.ToSlash(filepath.Clean(path))
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		return "", errors.Errorf("%s is not inside the vault %s", path, root)
	}

	return rel, nil
}
