package safe

import (
	"log/slog"
	"runtime/debug"
)

// Run executes f and converts a panic into an error log, intended for
// `go safe.Run(...)` call sites.
func Run(f func()) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic recovered",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())))
		}
	}()
	f()
}
