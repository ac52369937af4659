package drawing

import (
	"log/slog"

	"github.com/benoitkugler/okdraw/internal/logging"
)

// SetLogger configures the logger for drawing, instruct and the surface
// packages. By default nothing is logged. Pass nil to restore the silent
// default.
//
// Log levels used:
//   - [slog.LevelDebug]: per instruction diagnostics (resolved shape, vertex count, bounds)
//   - [slog.LevelInfo]: render lifecycle (canvas size, instruction count)
//   - [slog.LevelWarn]: skipped records, shape fallbacks and failed GPU flushes
//
// Example:
//
//	drawing.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) { logging.Set(l) }

// Logger returns the current logger. It is never nil.
func Logger() *slog.Logger { return logging.Get() }
