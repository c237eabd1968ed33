// Package log proxies logrus with file persistence under the config directory.
// Nothing is emitted unless logs.write is enabled.
package log

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/shua-cli/shua/filesystem"
	"github.com/shua-cli/shua/key"
	"github.com/shua-cli/shua/where"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var (
	enabled bool

	// entry tags every line of a single invocation with the same session id.
	entry = logrus.NewEntry(logrus.StandardLogger())
)

// Setup opens today's log file and applies the configured formatter and level.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		return nil
	}

	dir := where.Logs()
	if dir == "" {
		return errors.New("log directory path is empty")
	}

	path := filepath.Join(dir, fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))
	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logrus.SetOutput(f)

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{PrettyPrint: true})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{})
	}

	parsed, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	entry = logrus.WithField("session", uuid.NewString())
	return nil
}

// Enabled reports whether log lines are being written.
func Enabled() bool {
	return enabled
}

// WithFields returns an entry carrying the session id plus the given fields.
// The entry is inert when logging is disabled.
func WithFields(fields map[string]any) *logrus.Entry {
	if !enabled {
		discard := logrus.New()
		discard.SetOutput(nopWriter{})
		return logrus.NewEntry(discard)
	}
	return entry.WithFields(fields)
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

func Error(args ...any) {
	if enabled {
		entry.Error(args...)
	}
}

func Errorf(format string, args ...any) {
	if enabled {
		entry.Errorf(format, args...)
	}
}

func Warn(args ...any) {
	if enabled {
		entry.Warn(args...)
	}
}

func Warnf(format string, args ...any) {
	if enabled {
		entry.Warnf(format, args...)
	}
}

func Info(args ...any) {
	if enabled {
		entry.Info(args...)
	}
}

func Infof(format string, args ...any) {
	if enabled {
		entry.Infof(format, args...)
	}
}

func Debug(args ...any) {
	if enabled {
		entry.Debug(args...)
	}
}

func Debugf(format string, args ...any) {
	if enabled {
		entry.Debugf(format, args...)
	}
}
