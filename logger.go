package gauge

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gauge/drawlist"
	"github.com/gogpu/gauge/ui"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with painting on any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for gauge and its sub-packages.
// By default, gauge produces no log output.
//
// Pass nil to restore the default silent behavior.
//
// Log levels used by gauge:
//   - [slog.LevelDebug]: per-frame diagnostics (skipped paints, degenerate geometry)
//   - [slog.LevelWarn]: non-fatal issues (missing font faces, backend errors)
//
// Example:
//
//	gauge.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	// Sub-packages keep their own pointer to avoid import cycles.
	drawlist.SetLogger(l)
	ui.SetLogger(l)
}

// Logger returns the current logger used by gauge.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
