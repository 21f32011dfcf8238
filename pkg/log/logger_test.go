package log_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/gruntwork-io/notecards/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T, buf *bytes.Buffer, format string) log.Logger {
	t.Helper()

	formatter, err := log.NewFormatter(format, buf)
	require.NoError(t, err)

	return log.New(log.WithOutput(buf), log.WithLevel(log.DebugLevel), log.WithFormatter(formatter))
}

func TestLoggerLevels(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := newTestLogger(t, &buf, log.KeyValueFormat)

	logger.Tracef("hidden %d", 1)
	logger.Debugf("visible %d", 2)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible 2")

	require.NoError(t, logger.SetLevel("warn"))
	assert.Equal(t, log.WarnLevel, logger.Level())

	require.Error(t, logger.SetLevel("loud"))
}

func TestLoggerFieldsAreScoped(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := newTestLogger(t, &buf, log.JSONFormat)

	logger.WithField("pass", 7).Infof("scoped")
	logger.Infof("plain")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), `"pass":7`)
	assert.NotContains(t, string(lines[1]), `"pass"`)
}

func TestCloneDoesNotLeakOptions(t *testing.T) {
	t.Parallel()

	var buf, other bytes.Buffer

	logger := newTestLogger(t, &buf, log.KeyValueFormat)
	clone := logger.WithOptions(log.WithOutput(&other))

	clone.Infof("to other")
	logger.Infof("to buf")

	assert.Contains(t, other.String(), "to other")
	assert.NotContains(t, buf.String(), "to other")
}

func TestLoggerFromContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := newTestLogger(t, &buf, log.KeyValueFormat)
	ctx := log.ContextWithLogger(context.Background(), logger)

	assert.Same(t, logger, log.LoggerFromContext(ctx))
	assert.Equal(t, log.Default(), log.LoggerFromContext(context.Background()))
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	_, err := log.NewFormatter("yaml", nil)
	require.Error(t, err)
}
