// Package clog carries a slog logger in a context.
package clog

import (
	"context"
	"io"
	"log/slog"

	"github.com/lmittmann/tint"
	slogctx "github.com/veqryn/slog-context"
)

func Ctx(ctx context.Context) *slog.Logger {
	return slogctx.FromCtx(ctx)
}

func WithCtx(ctx context.Context, logger *slog.Logger) context.Context {
	return slogctx.NewCtx(ctx, logger)
}

func WithAttrs(ctx context.Context, attrs ...any) context.Context {
	return slogctx.With(ctx, attrs...)
}

// Setup builds a tint handler writing to w, wraps it so attributes added
// with WithAttrs reach every record, installs the logger as the slog default
// and stores it in the returned context.
func Setup(ctx context.Context, w io.Writer, level slog.Level, color bool) (*slog.Logger, context.Context) {
	handler := tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
		NoColor:    !color,
	})
	logger := slog.New(slogctx.NewHandler(handler, nil))
	slog.SetDefault(logger)
	return logger, slogctx.NewCtx(ctx, logger)
}
