// Package logging configures the logrus logger used for conversion progress.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// EnvLevel is the environment variable consulted for the log level.
const EnvLevel = "LOG_LEVEL"

// New creates a text logger writing to w at the given level.
// Unknown or empty levels fall back to info.
func New(w io.Writer, level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
	})
	logger.SetLevel(ParseLevel(level))
	return logger
}

// ParseLevel maps a level name to a logrus level, defaulting to info.
func ParseLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}

// ResolveLevel picks the first non-empty level: flag, $LOG_LEVEL, then config.
func ResolveLevel(flagLevel, configLevel string) string {
	if flagLevel != "" {
		return flagLevel
	}
	if env := os.Getenv(EnvLevel); env != "" {
		return env
	}
	return configLevel
}
