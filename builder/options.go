// SPDX-License-Identifier: MIT
// Package: labelcsr/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: randomness only through WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/labelcsr/core"
)

// BuilderOption customizes builderConfig before construction.
type BuilderOption func(*builderConfig)

// WithLabelFn sets the raw label of each vertex from its global id.
// Panics on nil.
func WithLabelFn(fn func(int) core.Label) BuilderOption {
	if fn == nil {
		panic("builder: WithLabelFn(nil)")
	}
	return func(c *builderConfig) { c.labelFn = fn }
}

// WithLabels cycles through the given raw labels: vertex i gets labels[i mod len].
// Panics on an empty list or a negative label.
func WithLabels(labels ...core.Label) BuilderOption {
	if len(labels) == 0 {
		panic("builder: WithLabels()")
	}
	for _, l := range labels {
		if l < 0 {
			panic("builder: WithLabels(negative)")
		}
	}
	own := append([]core.Label(nil), labels...)
	return func(c *builderConfig) {
		c.labelFn = func(i int) core.Label { return own[i%len(own)] }
	}
}

// WithRandomLabels draws each raw label uniformly from [0, k) using the
// configured RNG. Must come after WithSeed/WithRand; panics if k < 1.
func WithRandomLabels(k int) BuilderOption {
	if k < 1 {
		panic("builder: WithRandomLabels(k<1)")
	}
	return func(c *builderConfig) {
		rng := c.rng
		if rng == nil {
			panic("builder: WithRandomLabels requires WithSeed or WithRand first")
		}
		c.labelFn = func(int) core.Label { return core.Label(rng.Intn(k)) }
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a seeded RNG for reproducible stochastic fixtures.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithGraphID sets Records.GraphID.
func WithGraphID(id int32) BuilderOption {
	return func(c *builderConfig) { c.graphID = id }
}

// WithEdgeLabel sets the label written on every edge record.
func WithEdgeLabel(l core.Label) BuilderOption {
	return func(c *builderConfig) { c.edgeLabel = l }
}
