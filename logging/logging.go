// Package logging builds the slog logger used by the command line.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

type (
	// FileOptions configures the optional rotated log file.
	FileOptions struct {
		Path       string `yaml:"path"`
		MaxSizeMB  int    `yaml:"max_size_mb"`
		MaxAgeDays int    `yaml:"max_age_days"`
		MaxBackups int    `yaml:"max_backups"`
		Compress   bool   `yaml:"compress"`
	}
	Options struct {
		Level  string
		Format string
		File   FileOptions
	}
	loggerKey struct{}
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// New returns a logger writing to stderr, or to a rotated file when
// options.File.Path is set. The returned closer releases the file.
func New(options Options) (*slog.Logger, io.Closer) {
	var w io.Writer = os.Stderr
	var closer io.Closer = io.NopCloser(nil)
	if options.File.Path != "" {
		rotator := &lumberjack.Logger{
			Filename:   options.File.Path,
			MaxSize:    options.File.MaxSizeMB,
			MaxAge:     options.File.MaxAgeDays,
			MaxBackups: options.File.MaxBackups,
			Compress:   options.File.Compress,
		}
		w = rotator
		closer = rotator
	}
	return NewWithWriter(w, options), closer
}

func NewWithWriter(w io.Writer, options Options) *slog.Logger {
	handlerOptions := &slog.HandlerOptions{Level: ParseLevel(options.Level)}
	if strings.ToLower(options.Format) == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, handlerOptions))
	}
	return slog.New(slog.NewTextHandler(w, handlerOptions))
}

// ParseLevel converts a string level to slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// FromContext retrieves the logger stored by WithContext, or slog's default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}
