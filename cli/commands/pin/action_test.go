package pin_test

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/gruntwork-io/notecards/cli/commands/pin"
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

	return opts, stdout
}

func TestPinUnpinList(t *testing.T) {
	t.Parallel()

	opts, stdout := newOptions(t)

	require.NoError(t, pin.Pin(t.Context(), opts, []string{"b.md", filepath.Join(opts.WorkingDir, "dir", "a.md"), "b.md"}))
	require.NoError(t, pin.List(t.Context(), opts, false))
	assert.Equal(t, "b.md\ndir/a.md\n", stdout.String())

	stdout.Reset()

	require.NoError(t, pin.Unpin(t.Context(), opts, []string{"b.md", "missing.md"}))
	require.NoError(t, pin.List(t.Context(), opts, true))
	assert.JSONEq(t, `["dir/a.md"]`, stdout.String())
}

func TestPinRequiresPaths(t *testing.T) {
	t.Parallel()

	opts, _ := newOptions(t)
	require.ErrorIs(t, pin.Pin(t.Context(), opts, nil), pin.ErrNoPaths)
}

func TestVaultPath(t *testing.T) {
	t.Parallel()

	root := filepath.FromSlash("/vault")

	testCases := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{name: "relative", path: "notes/a.md", want: "notes/a.md"},
		{name: "cleaned", path: "notes/../a.md", want: "a.md"},
		{name: "absolute", path: filepath.Join(root, "x", "y.md"), want: "x/y.md"},
		{name: "outside", path: "../a.md", wantErr: true},
		{name: "root", path: ".", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := pin.VaultPath(root, tc.path)
			if tc.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
