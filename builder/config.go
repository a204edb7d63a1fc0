// SPDX-License-Identifier: MIT
// Package: labelcsr/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • labelFn   = i mod DefaultLabelCount
//   • rng       = nil (pure unless seeded)
//   • graphID   = 0
//   • edgeLabel = 0

package builder

import (
	"math/rand"

	"github.com/katalvlaran/labelcsr/core"
)

// DefaultLabelCount is the number of raw labels the default labelling cycles through.
const DefaultLabelCount = 3

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	labelFn   func(int) core.Label // global vertex id -> raw label
	rng       *rand.Rand           // nil means no randomness
	graphID   int32
	edgeLabel core.Label
}

// newBuilderConfig applies options in order over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		labelFn: modLabel(DefaultLabelCount),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// modLabel labels vertex i with i mod k.
func modLabel(k int) func(int) core.Label {
	return func(i int) core.Label { return core.Label(i % k) }
}
