package logging

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, out := range tests {
		assert.Equal(t, out, ParseLevel(in), in)
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	buf := bytes.Buffer{}
	logger := NewWithWriter(&buf, Options{Level: "warn", Format: FormatJSON})

	logger.Info("dropped")
	logger.Warn("skipping file", "path", "pano.jpg", "kind", "type_mismatch")

	record := map[string]any{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "skipping file", record["msg"])
	assert.Equal(t, "pano.jpg", record["path"])
	assert.NotContains(t, buf.String(), "dropped")
}

func TestNewWithWriter_Text(t *testing.T) {
	buf := bytes.Buffer{}
	logger := NewWithWriter(&buf, Options{Level: "debug"})

	logger.Debug("resolved entry", "offset", 968)
	assert.Contains(t, buf.String(), "offset=968")
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sampan.log")
	logger, closer := New(Options{File: FileOptions{Path: path, MaxSizeMB: 1}})
	logger.Info("written to file")
	require.NoError(t, closer.Close())

	assert.FileExists(t, path)
}

func TestContext(t *testing.T) {
	logger := NewWithWriter(&bytes.Buffer{}, Options{})
	ctx := WithContext(context.Background(), logger)

	assert.Same(t, logger, FromContext(ctx))
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}
