package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

const (
	// PrettyFormat is human readable text, colored when writing to a terminal.
	PrettyFormat = "pretty"
	// KeyValueFormat is plain `key=value` text without colors.
	KeyValueFormat = "key-value"
	// JSONFormat emits one JSON object per entry.
	JSONFormat = "json"

	timestampFormat = "15:04:05.000"
)

// AllFormats lists the supported format names.
var AllFormats = []string{PrettyFormat, KeyValueFormat, JSONFormat}

// NewFormatter returns the logrus formatter for the given format name.
func NewFormatter(name string, out io.Writer) (logrus.Formatter, error) {
	switch strings.ToLower(name) {
	case "", PrettyFormat:
		return &logrus.TextFormatter{
			ForceColors:     IsTerminal(out),
			DisableColors:   !IsTerminal(out),
			FullTimestamp:   true,
			TimestampFormat: timestampFormat,
		}, nil
	case KeyValueFormat:
		return &logrus.TextFormatter{
			DisableColors:   true,
			FullTimestamp:   true,
			TimestampFormat: timestampFormat,
		}, nil
	case JSONFormat:
		return &logrus.JSONFormatter{}, nil
	}

	return nil, fmt.Errorf("invalid log format %q, supported formats: %s", name, strings.Join(AllFormats, ", "))
}

// IsTerminal reports whether the writer is a terminal.
func IsTerminal(out io.Writer) bool {
	file, ok := out.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
