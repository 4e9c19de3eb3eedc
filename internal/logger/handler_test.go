package logger

import (
	"bytes"
	"context"
	"log/slog"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestHandler(cfg Config) (*filteringHandler, *bytes.Buffer) {
	var out bytes.Buffer
	cfg.process()
	base := slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug})
	return newFilteringHandler(base, &cfg), &out
}

func record(msg, tag string) slog.Record {
	var pcs [1]uintptr
	runtime.Callers(2, pcs[:])
	r := slog.NewRecord(time.Now(), slog.LevelDebug, msg, pcs[0])
	if tag != "" {
		r.AddAttrs(slog.String(tagKey, tag))
	}
	return r
}

func TestFilteringHandler_DisabledTag(t *testing.T) {
	h, out := newTestHandler(Config{DisabledTags: []string{"History"}})

	assert.NoError(t, h.Handle(context.Background(), record("dropped", "history")))
	assert.NoError(t, h.Handle(context.Background(), record("kept", "action")))

	assert.NotContains(t, out.String(), "dropped")
	assert.Contains(t, out.String(), "kept")
}

func TestFilteringHandler_EnabledTagsDropUntagged(t *testing.T) {
	h, out := newTestHandler(Config{EnabledTags: []string{"action"}})

	assert.NoError(t, h.Handle(context.Background(), record("untagged", "")))
	assert.NoError(t, h.Handle(context.Background(), record("tagged", "action")))

	assert.NotContains(t, out.String(), "untagged")
	assert.Contains(t, out.String(), "tagged")
}

func TestFilteringHandler_DisabledPackage(t *testing.T) {
	// Records built in this file come from the "logger" directory.
	h, out := newTestHandler(Config{DisabledPackages: []string{"logger"}})
	assert.NoError(t, h.Handle(context.Background(), record("from logger", "")))
	assert.Empty(t, out.String())
}

func TestFilteringHandler_EnabledFile(t *testing.T) {
	h, out := newTestHandler(Config{EnabledFiles: []string{"handler_test.go"}})
	assert.NoError(t, h.Handle(context.Background(), record("visible", "")))
	assert.Contains(t, out.String(), "visible")

	h, out = newTestHandler(Config{EnabledFiles: []string{"engine.go"}})
	assert.NoError(t, h.Handle(context.Background(), record("hidden", "")))
	assert.Empty(t, out.String())
}

func TestConfigProcessLevel(t *testing.T) {
	cfg := Config{LogLevel: "WARNING"}
	cfg.process()
	assert.Equal(t, slog.LevelWarn, cfg.level.Level())

	cfg = Config{LogLevel: "bogus"}
	cfg.process()
	assert.Equal(t, slog.LevelInfo, cfg.level.Level())
}
