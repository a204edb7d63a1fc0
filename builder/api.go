// SPDX-License-Identifier: MIT
// Package: labelcsr/builder
//
// api.go — public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildRecords(bopts, cons...). Resolves cfg, runs cons in order.
//   - Determinism: same options/seed and constructor order ⇒ identical Records.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/labelcsr/core"
)

const methodBuildRecords = "BuildRecords"

// Constructor appends one component to recs using the resolved config.
// Constructors MUST validate parameters before appending anything and must
// number their vertices from recs.NumVertices upward.
type Constructor func(recs *core.Records, cfg builderConfig) error

// BuildRecords resolves the options and applies all constructors in order
// to a fresh Records value. Any constructor error is wrapped and returned;
// no partial Records is returned.
//
// Complexity: O(len(bopts)) + Σ cost of constructors.
func BuildRecords(bopts []BuilderOption, cons ...Constructor) (*core.Records, error) {
	cfg := newBuilderConfig(bopts...)
	recs := &core.Records{GraphID: cfg.graphID}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", methodBuildRecords, i, ErrConstructFailed)
		}
		if err := fn(recs, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuildRecords, err)
		}
	}

	return recs, nil
}

// addVertices appends n labelled vertices and returns the first new id.
func addVertices(recs *core.Records, cfg builderConfig, n int) core.Vertex {
	base := recs.NumVertices
	for i := base; i < base+n; i++ {
		recs.Vertices = append(recs.Vertices, core.VertexRecord{ID: core.Vertex(i), Label: cfg.labelFn(i)})
	}
	recs.NumVertices += n
	return core.Vertex(base)
}

// addEdge appends one undirected edge record.
func addEdge(recs *core.Records, cfg builderConfig, u, v core.Vertex) {
	recs.Edges = append(recs.Edges, core.EdgeRecord{From: u, To: v, Label: cfg.edgeLabel})
}
