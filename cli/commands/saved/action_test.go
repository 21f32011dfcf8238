package saved_test

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/gruntwork-io/notecards/cli/commands/saved"
	"github.com/gruntwork-io/notecards/cli/commands/search"
	"github.com/gruntwork-io/notecards/internal/store"
	"github.com/gruntwork-io/notecards/options"
	"github.com/gruntwork-io/notecards/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOptions(t *testing.T) (*options.Options, *bytes.Buffer) {
	t.Helper()

	stdout := &bytes.Buffer{}

	opts := options.NewOptionsWithWriters(stdout, io.Discard)
	opts.WorkingDir = t.TempDir()
	opts.StorePath = filepath.Join(t.TempDir(), "store.db")
	opts.Logger = log.New(log.WithOutput(io.Discard))
	opts.FlushInterval = 0

	return opts, stdout
}

func TestSaveListDelete(t *testing.T) {
	t.Parallel()

	opts, stdout := newOptions(t)

	require.NoError(t, saved.Save(t.Context(), opts, "todo", []string{"#todo", "-done"}))
	require.NoError(t, saved.Save(t.Context(), opts, "drafts", []string{"[status:draft]"}))
	require.NoError(t, saved.Save(t.Context(), opts, "todo", []string{"#todo"}))

	require.NoError(t, saved.List(t.Context(), opts, true))
	assert.JSONEq(t, `[{"name":"drafts","query":"[status:draft]"},{"name":"todo","query":"#todo"}]`, stdout.String())

	stdout.Reset()

	require.NoError(t, saved.Delete(t.Context(), opts, "drafts"))
	require.NoError(t, saved.List(t.Context(), opts, false))
	assert.Equal(t, "todo  #todo\n", stdout.String())

	err := saved.Delete(t.Context(), opts, "drafts")
	require.ErrorIs(t, err, store.ErrNoSearch)
}

func TestListEmptyJSON(t *testing.T) {
	t.Parallel()

	opts, stdout := newOptions(t)

	require.NoError(t, saved.List(t.Context(), opts, true))
	assert.JSONEq(t, `[]`, stdout.String())
}

func TestNameRequired(t *testing.T) {
	t.Parallel()

	opts, _ := newOptions(t)

	require.ErrorIs(t, saved.Save(t.Context(), opts, "", []string{"x"}), saved.ErrNoName)
	require.ErrorIs(t, saved.Delete(t.Context(), opts, ""), saved.ErrNoName)
	require.ErrorIs(t, saved.Run(t.Context(), search.NewOptions(opts), ""), saved.ErrNoName)
}

func TestRunSavedSearch(t *testing.T) {
	t.Parallel()

	opts, stdout := newOptions(t)
	require.NoError(t, os.WriteFile(filepath.Join(opts.WorkingDir, "a.md"), []byte("# Alpha\nwater"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(opts.WorkingDir, "b.md"), []byte("# Beta\nfire"), 0o644))

	require.NoError(t, saved.Save(t.Context(), opts, "wet", []string{"water"}))

	cmdOpts := search.NewOptions(opts)
	cmdOpts.Format = search.FormatJSON

	require.NoError(t, saved.Run(t.Context(), cmdOpts, "wet"))

	var out search.Output
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	assert.Equal(t, "water", out.Query)
	require.Len(t, out.Cards, 1)
	assert.Equal(t, "a.md", out.Cards[0].Path)

	require.ErrorIs(t, saved.Run(t.Context(), cmdOpts, "missing"), store.ErrNoSearch)
}
