// Package logger provides structured logging for codenav
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog with codenav-specific helpers
type Logger struct {
	zlog zerolog.Logger
}

// Config holds logger configuration
type Config struct {
	Level  string // debug, info, warn, error
	Pretty bool   // human readable console output
	Output io.Writer
}

// ParseLevel maps a level name to a zerolog level, defaulting to warn.
func ParseLevel(name string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}

// NewLogger creates a new structured logger. Output defaults to stderr so
// log lines never interleave with rendered views on stdout.
func NewLogger(cfg Config) *Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.Kitchen,
		}
	}

	zlog := zerolog.New(output).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Str("service", "codenav").
		Logger()

	return &Logger{zlog: zlog}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zlog: zerolog.Nop()}
}

// Zerolog returns the underlying zerolog logger
func (l *Logger) Zerolog() *zerolog.Logger {
	return &l.zlog
}

// Debug starts a new debug level event
func (l *Logger) Debug() *zerolog.Event {
	return l.zlog.Debug()
}

// Info starts a new info level event
func (l *Logger) Info() *zerolog.Event {
	return l.zlog.Info()
}

// Warn starts a new warning level event
func (l *Logger) Warn() *zerolog.Event {
	return l.zlog.Warn()
}

// Error starts a new error level event
func (l *Logger) Error() *zerolog.Event {
	return l.zlog.Error()
}

// SessionLogger returns a logger tagging every event with the session id
// and the front end driving it.
func (l *Logger) SessionLogger(sessionID, frontend string) *Logger {
	return &Logger{
		zlog: l.zlog.With().
			Str("session", sessionID).
			Str("frontend", frontend).
			Logger(),
	}
}

// LogIntent records one dispatched user intent and where it left the
// current-version pointer.
func (l *Logger) LogIntent(intent string, from, to int, moved bool) {
	l.zlog.Debug().
		Str("event", "intent").
		Str("intent", intent).
		Int("from", from).
		Int("to", to).
		Bool("moved", moved).
		Msg("intent handled")
}

// LogSave records a newly saved version.
func (l *Logger) LogSave(id, prev int, language, name string, codeBytes int) {
	l.zlog.Info().
		Str("event", "save").
		Int("version", id).
		Int("previous", prev).
		Str("language", language).
		Str("name", name).
		Int("code_bytes", codeBytes).
		Msg("version saved")
}

// LogSessionStart records the start of an interactive session.
func (l *Logger) LogSessionStart(rootName string) {
	l.zlog.Info().
		Str("event", "session_start").
		Str("root", rootName).
		Msg("session started")
}

// LogSessionEnd records the end of a session and how much it created.
func (l *Logger) LogSessionEnd(versions int, elapsed time.Duration) {
	l.zlog.Info().
		Str("event", "session_end").
		Int("versions", versions).
		Dur("elapsed", elapsed).
		Msg("session ended")
}
