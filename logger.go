package alphablend

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Enabled reports false, so slog never builds
// the record and a disabled call costs one atomic load.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (d discard) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discard) WithGroup(string) slog.Handler           { return d }

var silent = slog.New(discard{})

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger routes alphablend's diagnostics to l. Passing nil silences them
// again, which is also the default. It may be called at any time, from any
// goroutine, including while blits are running.
//
// Levels:
//   - [slog.LevelDebug]: BlendSurface and BlendRect, with sizes and the
//     resolved region
//   - [slog.LevelWarn]: buffers rejected by validation
//
// A successful BlendRectInPlace never logs.
//
//	alphablend.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return current.Load()
}
