package raster

import (
	"io"
	"log/slog"
)

// No logging library exists anywhere in the retrieved corpus (no logrus,
// zerolog, or zap in any example's go.mod); slog is the standard
// library's structured logger and is used here instead of the teacher's
// bare fmt.Printf debug prints (profiling.go, win_input.go), which
// don't carry fields or levels.

// defaultLogger discards everything; NewRenderer installs it unless the
// caller supplies one via RendererConfig.Logger.
var defaultLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func loggerOrDefault(l *slog.Logger) *slog.Logger {
	if l == nil {
		return defaultLogger
	}
	return l
}
