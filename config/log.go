package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// NamedLogger creates named package logger at the configured level.
func NamedLogger(name string, loggingLevel string) *logrus.Logger {
	level, err := logrus.ParseLevel(loggingLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	return &logrus.Logger{
		Out: os.Stderr,
		Formatter: &NamedTextFormatter{
			logrus.TextFormatter{
				ForceColors: true,
			},
			name,
		},
		Hooks: make(logrus.LevelHooks),
		Level: level,
	}
}

// NamedTextFormatter ...
type NamedTextFormatter struct {
	logrus.TextFormatter
	name string
}

// Format renders a single log entry
func (f *NamedTextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	entry.Message = fmt.Sprintf("[%-10s] %s", f.name, entry.Message)
	return f.TextFormatter.Format(entry)
}
