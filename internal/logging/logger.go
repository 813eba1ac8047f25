// Package logging provides the leveled console logger behind the
// --debug flag.
//
// The logger is modeled as an injectable Sink rather than ambient
// package-global state: commands receive a Sink and pass it to their
// collaborators. Nop() satisfies the interface silently for callers
// that do not care about diagnostics (primarily tests).
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Sink accepts severity-tagged messages with optional key-value pairs.
type Sink interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
}

// charmSink implements Sink over a charmbracelet logger.
type charmSink struct {
	logger *log.Logger
}

// New creates a Sink writing to w at the given level. Unknown level
// strings fall back to info. When debug is true the threshold is
// forced down to debug regardless of level.
func New(w io.Writer, level string, debug bool) Sink {
	parsed := parseLevel(level)
	if debug {
		parsed = log.DebugLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           parsed,
		ReportTimestamp: false,
	})
	return &charmSink{logger: logger}
}

func (s *charmSink) Debug(msg string, keyvals ...any) { s.logger.Debug(msg, keyvals...) }
func (s *charmSink) Info(msg string, keyvals ...any)  { s.logger.Info(msg, keyvals...) }
func (s *charmSink) Warn(msg string, keyvals ...any)  { s.logger.Warn(msg, keyvals...) }
func (s *charmSink) Error(msg string, keyvals ...any) { s.logger.Error(msg, keyvals...) }

// parseLevel converts a settings level string to a log.Level.
func parseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// nopSink discards everything.
type nopSink struct{}

func (nopSink) Debug(string, ...any) {}
func (nopSink) Info(string, ...any)  {}
func (nopSink) Warn(string, ...any)  {}
func (nopSink) Error(string, ...any) {}

// Nop returns a Sink that discards all messages.
func Nop() Sink {
	return nopSink{}
}
