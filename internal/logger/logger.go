// Package logger builds the zerolog logger shared by commands and bootstrap code.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"shoppinglist/internal/config"
)

// New returns a JSON logger writing to stdout, or a console logger when cfg.Pretty is set.
func New(cfg config.LogConfig) zerolog.Logger {
	var w io.Writer = os.Stdout
	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}
	return NewWithWriter(w, cfg.Level, Location(cfg.Timezone))
}

// NewWithWriter returns a logger writing one JSON object per line to w.
// Unknown levels fall back to info. Timestamps are written under "ts" in loc.
func NewWithWriter(w io.Writer, level string, loc *time.Location) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).Hook(timestampHook{loc: loc})
}

// Location loads the named time zone, falling back to UTC.
func Location(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

type timestampHook struct {
	loc *time.Location
}

func (h timestampHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	e.Str("ts", time.Now().In(h.loc).Format(time.RFC3339Nano))
}
