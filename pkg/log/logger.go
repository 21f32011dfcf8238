package log

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus so that components depend on a small interface and tests can swap outputs and levels.
type Logger interface {
	// Clone creates a new Logger instance with a copy of the fields from the current one.
	Clone() Logger

	// SetOptions applies the given options to the instance.
	SetOptions(opts ...Option)

	// WithOptions clones the logger and applies the options to the copy.
	WithOptions(opts ...Option) Logger

	// Level returns the log level.
	Level() Level

	// SetLevel parses and sets the log level.
	SetLevel(str string) error

	// WithField adds a single field to the returned instance only.
	WithField(key string, value any) Logger

	// WithFields adds several fields to the returned instance only.
	WithFields(fields Fields) Logger

	// WithError adds an error field to the returned instance only.
	WithError(err error) Logger

	// WithContext attaches a context to the returned instance only.
	WithContext(ctx context.Context) Logger

	// Writer returns an io.Writer that writes to the Logger at the info level.
	Writer() *io.PipeWriter

	Logf(level Level, format string, args ...any)
	Tracef(format string, args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)

	Trace(args ...any)
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
}

type logger struct {
	*logrus.Entry
}

// New returns a new Logger instance.
func New(opts ...Option) Logger {
	logger := &logger{
		Entry: logrus.NewEntry(logrus.New()),
	}
	logger.SetOptions(opts...)

	return logger
}

// Clone implements the Logger interface method.
func (l *logger) Clone() Logger {
	return l.clone()
}

// SetOptions implements the Logger interface method.
func (l *logger) SetOptions(opts ...Option) {
	for _, opt := range opts {
		opt(l)
	}
}

// WithOptions implements the Logger interface method.
func (l *logger) WithOptions(opts ...Option) Logger {
	if len(opts) == 0 {
		return l
	}

	clone := l.clone()
	clone.SetOptions(opts...)

	return clone
}

// Level implements the Logger interface method.
func (l *logger) Level() Level {
	return FromLogrusLevel(l.Logger.Level)
}

// SetLevel implements the Logger interface method.
func (l *logger) SetLevel(str string) error {
	level, err := ParseLevel(str)
	if err != nil {
		return err
	}

	l.Logger.SetLevel(level.ToLogrusLevel())

	return nil
}

// WithField implements the Logger interface method.
func (l *logger) WithField(key string, value any) Logger {
	return &logger{Entry: l.Entry.WithField(key, value)}
}

// WithFields implements the Logger interface method.
func (l *logger) WithFields(fields Fields) Logger {
	return &logger{Entry: l.Entry.WithFields(logrus.Fields(fields))}
}

// WithError implements the Logger interface method.
func (l *logger) WithError(err error) Logger {
	return &logger{Entry: l.Entry.WithError(err)}
}

// WithContext implements the Logger interface method.
func (l *logger) WithContext(ctx context.Context) Logger {
	return &logger{Entry: l.Entry.WithContext(ctx)}
}

// Writer implements the Logger interface method.
func (l *logger) Writer() *io.PipeWriter {
	return l.Entry.Writer()
}

// Logf implements the Logger interface method.
func (l *logger) Logf(level Level, format string, args ...any) {
	l.Entry.Logf(level.ToLogrusLevel(), format, args...)
}

// clone copies the underlying logrus logger so that options set on the copy do not leak into the original.
func (l *logger) clone() *logger {
	parent := l.Logger

	newLogger := logrus.New()
	newLogger.SetOutput(parent.Out)
	newLogger.SetLevel(parent.Level)
	newLogger.SetFormatter(parent.Formatter)
	newLogger.ReplaceHooks(make(logrus.LevelHooks))

	for level, hooks := range parent.Hooks {
		for _, hook := range hooks {
			newLogger.Hooks[level] = append(newLogger.Hooks[level], hook)
		}
	}

	entry := logrus.NewEntry(newLogger).WithFields(l.Data)

	return &logger{Entry: entry}
}
