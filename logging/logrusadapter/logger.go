// Package logrusadapter provides a core.Logger backed by sirupsen/logrus,
// for applications that already route their logging through logrus.
package logrusadapter

import (
	"github.com/sirupsen/logrus"

	"github.com/parkyh/go-runnable/core"
)

// Logger adapts a logrus logger to core.Logger.
type Logger struct {
	entry *logrus.Entry
}

var _ core.Logger = (*Logger)(nil)

// New wraps a logrus.Logger. A nil logger falls back to the logrus standard
// logger.
func New(logger *logrus.Logger) *Logger {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Logger{entry: logrus.NewEntry(logger)}
}

// NewFromEntry wraps a pre-built entry so callers can attach ambient fields
// once instead of per message.
func NewFromEntry(entry *logrus.Entry) *Logger {
	return &Logger{entry: entry}
}

func (l *Logger) Debug(msg string, fields ...core.Field) {
	l.entry.WithFields(convert(fields)).Debug(msg)
}

func (l *Logger) Info(msg string, fields ...core.Field) {
	l.entry.WithFields(convert(fields)).Info(msg)
}

func (l *Logger) Warn(msg string, fields ...core.Field) {
	l.entry.WithFields(convert(fields)).Warn(msg)
}

func (l *Logger) Error(msg string, fields ...core.Field) {
	l.entry.WithFields(convert(fields)).Error(msg)
}

func convert(fields []core.Field) logrus.Fields {
	out := make(logrus.Fields, len(fields))
	for _, f := range fields {
		out[f.Key] = f.Value
	}
	return out
}
