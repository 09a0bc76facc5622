package logging

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	initOnce sync.Once
	process  *slog.Logger
)

// New creates a JSON slog logger configured at the provided level. If the
// level string is invalid it defaults to info.
func New(level string) *slog.Logger {
	return newTo(os.Stdout, level)
}

// Init installs the process-wide logger. Only the first call has an effect;
// main calls it before anything logs.
func Init(level string) *slog.Logger {
	initOnce.Do(func() {
		process = New(level)
	})
	return process
}

// L returns the process-wide logger, initialising it at info level when Init
// was never called.
func L() *slog.Logger {
	return Init("info")
}

// Discard returns a logger that drops all output. Useful for tests.
func Discard() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError})
	return slog.New(handler)
}

func newTo(w io.Writer, level string) *slog.Logger {
	lvl := new(slog.LevelVar)
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl.Set(slog.LevelInfo)
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	return slog.New(handler)
}
