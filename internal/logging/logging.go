// Package logging configures the process-wide slog logger used by the CLI
// and hands out component-scoped loggers to the library packages.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ErrBadFormat indicates a log format other than "text" or "json".
var ErrBadFormat = errors.New("logging: unknown format")

// Init installs a text or JSON handler at level as the slog default.
// Output goes to w when given, os.Stderr otherwise.
func Init(level slog.Level, format string, w ...io.Writer) error {
	var out io.Writer = os.Stderr
	if len(w) > 0 && w[0] != nil {
		out = w[0]
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	switch strings.ToLower(format) {
	case "", "text":
		h = slog.NewTextHandler(out, opts)
	case "json":
		h = slog.NewJSONHandler(out, opts)
	default:
		return fmt.Errorf("%w: %q", ErrBadFormat, format)
	}
	slog.SetDefault(slog.New(h))

	return nil
}

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("logging: level %q: %w", s, err)
	}

	return l, nil
}

// New returns the default logger tagged with component.
func New(component string) *slog.Logger {
	return slog.Default().With(slog.String("component", component))
}
