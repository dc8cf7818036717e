package testutil

import (
	"io"
	"log/slog"
)

// NopLogger returns a logger that discards all output. The gate and
// dispatcher log on degraded paths, so test suites pass this in to keep
// the output quiet.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
