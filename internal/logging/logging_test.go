package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsSilent(t *testing.T) {
	l := Get()
	require.NotNil(t, l)
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		assert.False(t, l.Enabled(context.Background(), level), "level %v", level)
	}
}

func TestSetAndReset(t *testing.T) {
	var buf bytes.Buffer
	Set(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer Set(nil)

	Get().Info("rendered", "shapes", 3)
	assert.True(t, strings.Contains(buf.String(), "shapes=3"), buf.String())

	Set(nil)
	assert.False(t, Get().Enabled(context.Background(), slog.LevelError))
}

func TestSilentLoggerIsShared(t *testing.T) {
	Set(nil)
	assert.Same(t, Get(), Get())
	// derived loggers stay silent
	assert.False(t, Get().With("k", "v").WithGroup("g").Enabled(context.Background(), slog.LevelError))
}
