package session

import (
	"io"
	"log/slog"
)

// DefaultGroupSize is the number of symbols per output group.
const DefaultGroupSize = 5

// Option customizes a Processor.
type Option func(*processorConfig)

type processorConfig struct {
	group  int
	trace  io.Writer
	logger *slog.Logger
}

func newProcessorConfig(opts ...Option) processorConfig {
	cfg := processorConfig{
		group:  DefaultGroupSize,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithTrace writes one line per converted symbol to w, showing the rotor
// settings and the signal path. Panics on nil.
func WithTrace(w io.Writer) Option {
	if w == nil {
		panic("session: WithTrace(nil)")
	}
	return func(c *processorConfig) {
		c.trace = w
	}
}

// WithGroupSize sets the output group width. Panics unless n > 0.
func WithGroupSize(n int) Option {
	if n <= 0 {
		panic("session: WithGroupSize requires n > 0")
	}
	return func(c *processorConfig) {
		c.group = n
	}
}

// WithLogger receives debug events for setups and messages, and is passed
// on to the machine. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("session: WithLogger(nil)")
	}
	return func(c *processorConfig) {
		c.logger = l
	}
}
