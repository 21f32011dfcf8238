package log

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// These are the supported logging levels.
const (
	// ErrorLevel is used for errors that should definitely be noted.
	ErrorLevel Level = iota
	// WarnLevel is used for non-critical entries that deserve eyes.
	WarnLevel
	// InfoLevel is used for general operational entries.
	InfoLevel
	// DebugLevel is usually only enabled when debugging.
	DebugLevel
	// TraceLevel designates finer-grained events than Debug.
	TraceLevel
)

// AllLevels exposes all logging levels.
var AllLevels = Levels{
	ErrorLevel,
	WarnLevel,
	InfoLevel,
	DebugLevel,
	TraceLevel,
}

var levelNames = map[Level]string{
	ErrorLevel: "error",
	WarnLevel:  "warn",
	InfoLevel:  "info",
	DebugLevel: "debug",
	TraceLevel: "trace",
}

var logrusLevels = map[Level]logrus.Level{
	ErrorLevel: logrus.ErrorLevel,
	WarnLevel:  logrus.WarnLevel,
	InfoLevel:  logrus.InfoLevel,
	DebugLevel: logrus.DebugLevel,
	TraceLevel: logrus.TraceLevel,
}

// Level type
type Level uint32

// ParseLevel takes a string and returns the Level constant.
func ParseLevel(str string) (Level, error) {
	for level, name := range levelNames {
		if strings.EqualFold(name, str) {
			return level, nil
		}
	}

	return Level(0), fmt.Errorf("invalid level %q, supported levels: %s", str, AllLevels)
}

// String implements fmt.Stringer.
func (level Level) String() string {
	return levelNames[level]
}

// ToLogrusLevel converts Level to logrus.Level.
func (level Level) ToLogrusLevel() logrus.Level {
	if lvl, ok := logrusLevels[level]; ok {
		return lvl
	}

	return logrus.InfoLevel
}

// FromLogrusLevel converts logrus.Level to Level. Levels above error collapse into ErrorLevel.
func FromLogrusLevel(lvl logrus.Level) Level {
	for level, logrusLevel := range logrusLevels {
		if logrusLevel == lvl {
			return level
		}
	}

	return ErrorLevel
}

// Levels is a list of levels.
type Levels []Level

// Names returns the level names.
func (levels Levels) Names() []string {
	strs := make([]string, len(levels))

	for i, level := range levels {
		strs[i] = level.String()
	}

	return strs
}

func (levels Levels) String() string {
	return strings.Join(levels.Names(), ", ")
}
