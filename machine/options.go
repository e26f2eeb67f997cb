// SPDX-License-Identifier: MIT

package machine

import "log/slog"

// Option customizes a Machine at construction time.
type Option func(*machineConfig)

// machineConfig aggregates optional collaborators; defaults are silent.
type machineConfig struct {
	tracer func(Trace)
	logger *slog.Logger
}

// newMachineConfig applies opts over the defaults in order (last wins).
func newMachineConfig(opts ...Option) machineConfig {
	cfg := machineConfig{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithTracer registers fn to receive a Trace for every converted symbol.
// Tracing is observational and never changes the output.
// Panics on nil.
func WithTracer(fn func(Trace)) Option {
	if fn == nil {
		panic("machine: WithTracer(nil)")
	}
	return func(c *machineConfig) {
		c.tracer = fn
	}
}

// WithLogger routes debug-level lifecycle events (rotor insertion, settings,
// plugboard changes) to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("machine: WithLogger(nil)")
	}
	return func(c *machineConfig) {
		c.logger = l
	}
}
