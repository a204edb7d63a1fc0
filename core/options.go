// SPDX-License-Identifier: MIT
// File: options.go
// Role: functional options for NewGraph.
// Policy:
//   - Option constructors panic on nil arguments (programmer error).
//   - NewGraph itself never panics on user input.

package core

import (
	"io"
	"log/slog"
)

// GraphOption configures a single NewGraph call.
type GraphOption func(*graphConfig)

type graphConfig struct {
	labels *LabelMap    // nil: canonicalize the build's own records
	logger *slog.Logger // build diagnostics; discarded by default
}

func newGraphConfig(opts ...GraphOption) graphConfig {
	cfg := graphConfig{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLabelMap reuses an existing LabelMap instead of canonicalizing the
// records being built. Raw labels absent from m become NoLabel.
// Use it to align a query graph's labels with its data graph.
func WithLabelMap(m *LabelMap) GraphOption {
	if m == nil {
		panic("core: WithLabelMap(nil)")
	}
	return func(c *graphConfig) { c.labels = m }
}

// WithLogger routes build diagnostics (debug level) to l.
func WithLogger(l *slog.Logger) GraphOption {
	if l == nil {
		panic("core: WithLogger(nil)")
	}
	return func(c *graphConfig) { c.logger = l }
}
