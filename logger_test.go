package main

import (
	"bytes"
	"context"
	"log"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	flags, out := log.Flags(), log.Writer()
	log.SetFlags(0)
	log.SetOutput(&buf)
	t.Cleanup(func() {
		log.SetFlags(flags)
		log.SetOutput(out)
	})
	return &buf
}

func TestPrefixHandler_Format(t *testing.T) {
	buf := captureLog(t)
	logger := newLogger(slog.LevelInfo).With("adapter", "freedict")

	logger.Warn("meaning source failed", slog.String("word", "crane"), slog.String("error", "status code: 500"), slog.Int("attempt", 1))

	assert.Equal(t, "[WARN] meaning source failed adapter=freedict word=crane error=\"status code: 500\" attempt=1\n", buf.String())
}

func TestPrefixHandler_Level(t *testing.T) {
	buf := captureLog(t)

	newLogger(slog.LevelInfo).Debug("hidden")
	assert.Empty(t, buf.String())

	newLogger(slog.LevelDebug).Debug("meaning resolved", "source", "Free Dictionary API")
	assert.Equal(t, "[DEBUG] meaning resolved source=\"Free Dictionary API\"\n", buf.String())
}

func TestPrefixHandler_RequestID(t *testing.T) {
	buf := captureLog(t)
	ctx := context.WithValue(context.Background(), requestIDKey, "%s%d")

	newLogger(slog.LevelInfo).InfoContext(ctx, "no meaning found", "word", "zzzzz")

	assert.Equal(t, "[INFO] [request_id=%s%d] no meaning found word=zzzzz\n", buf.String())
}

func TestPrefixHandler_Groups(t *testing.T) {
	buf := captureLog(t)

	newLogger(slog.LevelInfo).WithGroup("upstream").With("service", "translate").Info("done", "ms", 12)

	assert.Equal(t, "[INFO] done upstream.service=translate upstream.ms=12\n", buf.String())
}
