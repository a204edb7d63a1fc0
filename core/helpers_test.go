// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labelcsr/builder"
	"github.com/katalvlaran/labelcsr/core"
)

// fixture is a named Records generator used by the property tests.
type fixture struct {
	name string
	recs *core.Records
}

// mustRecords builds Records or fails the test.
func mustRecords(t testing.TB, bopts []builder.BuilderOption, cons ...builder.Constructor) *core.Records {
	t.Helper()
	recs, err := builder.BuildRecords(bopts, cons...)
	require.NoError(t, err)
	return recs
}

// mustGraph indexes recs or fails the test.
func mustGraph(t testing.TB, recs *core.Records, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(recs, opts...)
	require.NoError(t, err)
	return g
}

// fixtures covers sparse, dense, skewed and composed topologies.
func fixtures(t testing.TB) []fixture {
	t.Helper()
	return []fixture{
		{"Path3", mustRecords(t, []builder.BuilderOption{builder.WithLabels(10, 20, 10)}, builder.Path(3))},
		{"Cycle7", mustRecords(t, nil, builder.Cycle(7))},
		{"Star9", mustRecords(t, []builder.BuilderOption{builder.WithLabels(1, 2)}, builder.Star(9))},
		{"Complete6", mustRecords(t, nil, builder.Complete(6))},
		{"Graph6", mustRecords(t, []builder.BuilderOption{builder.WithLabels(4, 8, 15)}, builder.Graph6("H@BQPS^"))},
		{"RandomSparse", mustRecords(t,
			[]builder.BuilderOption{builder.WithSeed(7), builder.WithRandomLabels(4)},
			builder.RandomSparse(40, 0.15))},
		{"Union", mustRecords(t,
			[]builder.BuilderOption{builder.WithSeed(11), builder.WithRandomLabels(3)},
			builder.Star(5), builder.Cycle(4), builder.RandomSparse(20, 0.3))},
	}
}

// rec builds Records from literal vertex labels and edges.
func rec(labels []core.Label, edges ...[2]core.Vertex) *core.Records {
	recs := &core.Records{NumVertices: len(labels)}
	for i, l := range labels {
		recs.Vertices = append(recs.Vertices, core.VertexRecord{ID: core.Vertex(i), Label: l})
	}
	for _, e := range edges {
		recs.Edges = append(recs.Edges, core.EdgeRecord{From: e[0], To: e[1]})
	}
	return recs
}
