package util

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/gruntwork-io/cfn-docgen/errors"
)

// CreateLogEntry creates a logrus log entry with the given prefix field, writing to stderr so that stdout stays
// reserved for command output.
func CreateLogEntry(prefix string, level logrus.Level) *logrus.Entry {
	return CreateLogEntryWithWriter(os.Stderr, prefix, level)
}

// CreateLogEntryWithWriter creates a logrus log entry around the given output stream, prefix, and level.
func CreateLogEntryWithWriter(writer io.Writer, prefix string, level logrus.Level) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(writer)
	logger.SetLevel(level)

	var fields logrus.Fields
	if prefix != "" {
		fields = logrus.Fields{"prefix": prefix}
	}

	return logger.WithFields(fields)
}

// ParseLogLevel parses a level name ("debug", "info", ...) into a logrus level.
func ParseLogLevel(levelStr string) (logrus.Level, error) {
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		return level, errors.Errorf("invalid log level %q (valid levels: %v)", levelStr, logrus.AllLevels)
	}

	return level, nil
}
