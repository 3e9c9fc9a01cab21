package clog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetup(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger, ctx := Setup(context.Background(), &buf, slog.LevelInfo, false)
	assert.Same(t, logger, Ctx(ctx))

	ctx = WithAttrs(ctx, "file", "a.json")
	Ctx(ctx).DebugContext(ctx, "hidden")
	Ctx(ctx).InfoContext(ctx, "loaded", "layers", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "loaded")
	assert.Contains(t, out, "layers=3")
	assert.Contains(t, out, "file=a.json")
}

func TestWithCtx(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := WithCtx(context.Background(), logger)
	assert.Same(t, logger, Ctx(ctx))
}
