package ui

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

type LoggerOptions struct {
	Debug bool
	// JSON switches from the colored terminal handler to slog's JSON handler.
	JSON   bool
	Output io.Writer
}

func NewLogger(opts LoggerOptions) *slog.Logger {
	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	if opts.JSON {
		return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})).
			With(slog.String("app", "comicrev"))
	}

	return slog.New(tint.NewHandler(out, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}
