package logging

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogFilePath(t *testing.T) {
	start := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	got := LogFilePath("/var/log/mapfront", "mapfront", start)
	want := filepath.Join("/var/log/mapfront", "mapfront.20260314_150926.log")
	assert.Equal(t, want, got)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"Warn", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, parseLevel(tt.input), "level %q", tt.input)
	}
}

func TestManagerSetupWritesAllSinks(t *testing.T) {
	var file, gelf bytes.Buffer

	m := NewManager()
	m.Setup(&file, &gelf, "debug")
	m.Logger().Warn("overlay skipped", "id", 7)

	assert.Contains(t, file.String(), "overlay skipped")
	assert.Contains(t, gelf.String(), `"overlay skipped"`)
	assert.Contains(t, gelf.String(), `"id":7`)
}

func TestManagerLoggerBeforeSetup(t *testing.T) {
	m := NewManager()
	require.NotNil(t, m.Logger())
}

func TestMultiHandlerLevelFiltering(t *testing.T) {
	var debugBuf, errorBuf bytes.Buffer
	mh := NewMultiHandler(
		slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&errorBuf, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	logger := slog.New(mh)

	logger.Debug("fine detail")
	logger.Error("boom")

	assert.True(t, strings.Contains(debugBuf.String(), "fine detail"))
	assert.False(t, strings.Contains(errorBuf.String(), "fine detail"))
	assert.True(t, strings.Contains(errorBuf.String(), "boom"))
}

func TestMultiHandlerSkipsNil(t *testing.T) {
	var buf bytes.Buffer
	mh := NewMultiHandler(nil, slog.NewTextHandler(&buf, nil), nil)
	slog.New(mh).Info("hello")
	assert.Contains(t, buf.String(), "hello")
}
