// Package trace is the injected diagnostics capability for hop's commands.
//
// The fuzzy engine is pure and never logs; commands that want visibility
// into ranking decisions construct a Logger and emit traces themselves.
// Everything accepts the Logger interface so tests can capture output and
// non-verbose runs pay a single nil-check per trace point.
package trace

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Logger receives human-readable diagnostic lines.
type Logger interface {
	Tracef(format string, args ...any)
}

// Nop discards everything. Use it wherever tracing is off.
var Nop Logger = nopLogger{}

type nopLogger struct{}

func (nopLogger) Tracef(string, ...any) {}

// Writer returns a Logger that writes prefixed lines to w. Safe for
// concurrent use.
func Writer(w io.Writer) Logger {
	return &writerLogger{w: w}
}

type writerLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *writerLogger) Tracef(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "[trace] "+format+"\n", args...)
}

// FromEnv picks a logger based on the verbose flag, honoring the HOP_DEBUG
// environment switch as a fallback for shell-integration flows where no flag
// can be passed.
func FromEnv(verbose bool) Logger {
	if verbose || os.Getenv("HOP_DEBUG") == "1" || os.Getenv("HOP_DEBUG") == "true" {
		return Writer(os.Stderr)
	}
	return Nop
}
