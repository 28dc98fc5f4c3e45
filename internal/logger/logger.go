package logger

import (
	"os"
	"strings"

	"github.com/gookit/slog"
	"github.com/gookit/slog/handler"
)

// Logger is the minimal logging interface used across the application.
// Exposed as an interface so the implementation can be swapped if needed.
type Logger interface {
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Fields carries structured log fields.
type Fields map[string]any

// Log is the global logger instance. It works at info level even when
// InitFromEnv is never called.
var Log Logger = NewLogger("info")

// InitFromEnv reads the log level from the given environment variable and
// reinitializes the global logger. Empty or unknown values fall back to info.
func InitFromEnv(envKey string) {
	level := strings.ToLower(os.Getenv(envKey))
	if level == "" {
		level = "info"
	}
	Log = NewLogger(level)
}

// Init sets the global logger to the given level.
func Init(level string) {
	if level == "" {
		level = "info"
	}
	Log = NewLogger(level)
}

// NewLogger builds a gookit/slog based JSON logger for the given level.
func NewLogger(level string) Logger {
	logLevel := slog.LevelByName(level)

	var levels slog.Levels
	for _, lv := range slog.AllLevels {
		if lv <= logLevel {
			levels = append(levels, lv)
		}
	}

	h := handler.NewConsoleHandler(levels)
	formatter := slog.NewJSONFormatter(func(f *slog.JSONFormatter) {
		f.Fields = []string{
			slog.FieldKeyDatetime,
			slog.FieldKeyLevel,
			slog.FieldKeyMessage,
		}
		f.Aliases = slog.StringMap{
			slog.FieldKeyDatetime: "datetime",
			slog.FieldKeyLevel:    "level",
			slog.FieldKeyMessage:  "message",
		}
		f.TimeFormat = "2006-01-02T15:04:05"
	})
	h.SetFormatter(formatter)

	logger := slog.NewWithHandlers(h)
	return logger
}

// InfoWithFields emits a JSON log line with top-level structured fields.
func InfoWithFields(msg string, fields Fields) {
	if lg, ok := Log.(*slog.Logger); ok {
		lg.WithFields(slog.M(fields)).Info(msg)
		return
	}
	Log.Info(msg)
}

func DebugWithFields(msg string, fields Fields) {
	if lg, ok := Log.(*slog.Logger); ok {
		lg.WithFields(slog.M(fields)).Debug(msg)
		return
	}
	Log.Debug(msg)
}

func ErrorWithFields(msg string, fields Fields) {
	if lg, ok := Log.(*slog.Logger); ok {
		lg.WithFields(slog.M(fields)).Error(msg)
		return
	}
	Log.Error(msg)
}
