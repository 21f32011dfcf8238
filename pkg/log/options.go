package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Option configures a logger.
type Option func(logger *logger)

// WithLevel sets the log level.
func WithLevel(level Level) Option {
	return func(logger *logger) {
		logger.Logger.SetLevel(level.ToLogrusLevel())
	}
}

// WithOutput sets the destination of log entries.
func WithOutput(output io.Writer) Option {
	return func(logger *logger) {
		logger.Logger.SetOutput(output)
	}
}

// WithFormatter sets a logrus formatter. See NewFormatter for the supported formats.
func WithFormatter(formatter logrus.Formatter) Option {
	return func(logger *logger) {
		logger.Logger.SetFormatter(formatter)
	}
}

// WithHooks adds logrus hooks.
func WithHooks(hooks ...logrus.Hook) Option {
	return func(logger *logger) {
		for _, hook := range hooks {
			logger.Logger.AddHook(hook)
		}
	}
}
