// SPDX-License-Identifier: MIT
// Package core_test locks in the structural invariants of the index:
// CSR offsets, label partitioning, in-block order, frequency accounting,
// canonical label density and construction error mapping.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labelcsr/builder"
	"github.com/katalvlaran/labelcsr/core"
)

// TestNewGraph_PathScenario covers the three-vertex A-B-A path.
func TestNewGraph_PathScenario(t *testing.T) {
	const labelA, labelB = core.Label(30), core.Label(40)
	g := mustGraph(t, rec([]core.Label{labelA, labelB, labelA}, [2]core.Vertex{0, 1}, [2]core.Vertex{1, 2}))

	assert.Equal(t, 3, g.NumVertices())
	assert.Equal(t, 2, g.NumEdges())
	assert.Equal(t, 2, g.NumLabels())
	assert.Equal(t, core.Label(1), g.MaxLabel())

	// A sorts before B.
	assert.Equal(t, core.Label(0), g.Label(0))
	assert.Equal(t, core.Label(1), g.Label(1))
	assert.Equal(t, core.Label(0), g.Label(2))
	assert.Equal(t, 2, g.LabelFrequency(0))
	assert.Equal(t, 1, g.LabelFrequency(1))

	assert.Equal(t, 2, g.Degree(1))
	assert.False(t, g.IsNeighbor(0, 2))
	assert.True(t, g.IsNeighbor(0, 1))
	assert.True(t, g.IsNeighbor(1, 0))
	assert.True(t, g.IsNeighbor(2, 1))
	assert.Equal(t, []core.Vertex{0, 2}, g.LabelNeighbors(1, 0))
}

// TestNewGraph_CompositeOrder pins the exact neighbor order of a hub whose
// neighbors differ in label and degree.
func TestNewGraph_CompositeOrder(t *testing.T) {
	// Hub 0 with neighbors 1..5; labels raw 1 or 2; extra edges raise degrees.
	//   deg(1)=1 l=2, deg(2)=2 l=1, deg(3)=2 l=2, deg(4)=1 l=1, deg(5)=2 l=1
	g := mustGraph(t, rec([]core.Label{1, 2, 1, 2, 1, 1, 1},
		[2]core.Vertex{0, 1}, [2]core.Vertex{0, 2}, [2]core.Vertex{0, 3},
		[2]core.Vertex{0, 4}, [2]core.Vertex{0, 5},
		[2]core.Vertex{2, 6}, [2]core.Vertex{3, 6}, [2]core.Vertex{5, 6},
	))

	// label 0 block: 2,5 (deg 2, id asc) then 4 (deg 1); label 1 block: 3 (deg 2), 1 (deg 1).
	assert.Equal(t, []core.Vertex{2, 5, 4, 3, 1}, g.Neighbors(0))

	r0, ok := g.LabelNeighborRange(0, 0)
	require.True(t, ok)
	assert.Equal(t, core.Range{Start: 0, End: 3}, r0)
	r1, ok := g.LabelNeighborRange(0, 1)
	require.True(t, ok)
	assert.Equal(t, core.Range{Start: 3, End: 5}, r1)

	for u := core.Vertex(1); u <= 5; u++ {
		assert.True(t, g.IsNeighbor(0, u), "0-%d", u)
		assert.True(t, g.IsNeighbor(u, 0), "%d-0", u)
	}
	assert.False(t, g.IsNeighbor(1, 2))
	assert.False(t, g.IsNeighbor(4, 6))
}

// TestNewGraph_VertexZeroRanges separates "no neighbor with this label" from
// a real block that starts at offset 0.
func TestNewGraph_VertexZeroRanges(t *testing.T) {
	g := mustGraph(t, rec([]core.Label{0, 0, 1}, [2]core.Vertex{0, 1}))

	r, ok := g.LabelNeighborRange(0, 0)
	require.True(t, ok)
	assert.Equal(t, core.Range{Start: 0, End: 1}, r)

	r, ok = g.LabelNeighborRange(0, 1)
	assert.False(t, ok)
	assert.True(t, r.Empty())

	// Isolated vertex 2: empty segment at the end, no label blocks.
	assert.Equal(t, 0, g.Degree(2))
	assert.Equal(t, core.Range{Start: 2, End: 2}, g.NeighborRange(2))
	_, ok = g.LabelNeighborRange(2, 0)
	assert.False(t, ok)
	assert.Equal(t, 0, g.NeighborLabelFrequency(2, 0))
}

func TestNewGraph_Empty(t *testing.T) {
	g := mustGraph(t, &core.Records{GraphID: 3})
	assert.Equal(t, int32(3), g.GraphID())
	assert.Equal(t, 0, g.NumVertices())
	assert.Equal(t, 0, g.NumLabels())
	assert.Equal(t, core.NoLabel, g.MaxLabel())
	assert.Equal(t, 0, g.LabelFrequency(core.NoLabel))
	assert.False(t, g.IsNeighbor(0, 0))
	assert.Equal(t, core.GraphStats{GraphID: 3, MaxLabel: core.NoLabel}, g.Stats())
}

// TestNewGraph_HugeCountWithoutRecords rejects a vertex count that the
// records cannot back before any per-vertex array is allocated.
func TestNewGraph_HugeCountWithoutRecords(t *testing.T) {
	g, err := core.NewGraph(&core.Records{NumVertices: 1 << 30})
	require.ErrorIs(t, err, core.ErrUndeclaredVertex)
	assert.Nil(t, g)
	assert.Contains(t, err.Error(), "0 vertex records")
}

// TestNewGraph_Errors maps every rejected input to its sentinel.
func TestNewGraph_Errors(t *testing.T) {
	tests := []struct {
		name string
		recs *core.Records
		want error
	}{
		{"nil", nil, core.ErrNilRecords},
		{"negative count", &core.Records{NumVertices: -1}, core.ErrBadVertexCount},
		{"vertex id too large", &core.Records{NumVertices: 1,
			Vertices: []core.VertexRecord{{ID: 1}}}, core.ErrVertexOutOfRange},
		{"vertex id negative", &core.Records{NumVertices: 1,
			Vertices: []core.VertexRecord{{ID: -1}}}, core.ErrVertexOutOfRange},
		{"duplicate vertex", &core.Records{NumVertices: 2,
			Vertices: []core.VertexRecord{{ID: 0}, {ID: 0}}}, core.ErrDuplicateVertex},
		{"undeclared vertex", &core.Records{NumVertices: 2,
			Vertices: []core.VertexRecord{{ID: 0}}}, core.ErrUndeclaredVertex},
		{"negative label", rec([]core.Label{0, -4}), core.ErrNegativeLabel},
		{"edge out of range", rec([]core.Label{0, 0}, [2]core.Vertex{0, 2}), core.ErrVertexOutOfRange},
		{"self loop", rec([]core.Label{0, 0}, [2]core.Vertex{1, 1}), core.ErrLoopNotAllowed},
		{"parallel edge", rec([]core.Label{0, 1, 0},
			[2]core.Vertex{0, 1}, [2]core.Vertex{1, 2}, [2]core.Vertex{1, 0}), core.ErrMultiEdgeNotAllowed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := core.NewGraph(tc.recs)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, g, "no partial index on error")
		})
	}
}

// TestNewGraph_NegativeLabelWithReusedMap checks validation also runs when
// canonicalization is skipped.
func TestNewGraph_NegativeLabelWithReusedMap(t *testing.T) {
	m, err := core.BuildLabelMap(rec([]core.Label{1, 2}))
	require.NoError(t, err)
	_, err = core.NewGraph(rec([]core.Label{1, -1}), core.WithLabelMap(m))
	require.ErrorIs(t, err, core.ErrNegativeLabel)
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { core.WithLabelMap(nil) })
	assert.Panics(t, func() { core.WithLogger(nil) })
}

// TestNewGraph_Invariants checks every structural property on each fixture.
func TestNewGraph_Invariants(t *testing.T) {
	for _, fx := range fixtures(t) {
		t.Run(fx.name, func(t *testing.T) {
			g := mustGraph(t, fx.recs)
			n := g.NumVertices()
			require.Equal(t, fx.recs.NumVertices, n)
			require.Equal(t, len(fx.recs.Edges), g.NumEdges())

			// Degree consistency against the raw edge records.
			touches := make([]int, n)
			for _, e := range fx.recs.Edges {
				touches[e.From]++
				touches[e.To]++
			}
			total := 0
			for v := 0; v < n; v++ {
				r := g.NeighborRange(core.Vertex(v))
				assert.Equal(t, total, r.Start, "offsets are a prefix sum")
				assert.Equal(t, touches[v], g.Degree(core.Vertex(v)))
				total += g.Degree(core.Vertex(v))
			}
			assert.Equal(t, 2*g.NumEdges(), total)

			// Label partitioning and in-block order.
			for v := core.Vertex(0); int(v) < n; v++ {
				seg := g.NeighborRange(v)
				cursor := seg.Start
				for l := core.Label(0); l <= g.MaxLabel(); l++ {
					r, ok := g.LabelNeighborRange(v, l)
					if !ok {
						assert.Equal(t, 0, g.NeighborLabelFrequency(v, l))
						continue
					}
					assert.Equal(t, cursor, r.Start, "v=%d l=%d: blocks are contiguous", v, l)
					assert.False(t, r.Empty())
					for off := r.Start; off < r.End; off++ {
						w := g.Neighbor(off)
						assert.Equal(t, l, g.Label(w))
						if off > r.Start {
							prev := g.Neighbor(off - 1)
							dp, dw := g.Degree(prev), g.Degree(w)
							assert.True(t, dp > dw || (dp == dw && prev < w),
								"v=%d: %d(deg %d) must precede %d(deg %d)", v, prev, dp, w, dw)
						}
					}
					cursor = r.End
				}
				assert.Equal(t, seg.End, cursor, "v=%d: blocks cover the segment", v)
			}

			// Frequency accounting and canonical density.
			sum := g.LabelFrequency(core.NoLabel)
			assert.Equal(t, 0, sum, "canonicalized graphs have no unknown labels")
			for l := core.Label(0); l <= g.MaxLabel(); l++ {
				assert.Positive(t, g.LabelFrequency(l), "dense label %d has no gap", l)
				sum += g.LabelFrequency(l)
			}
			assert.Equal(t, n, sum)
			assert.Equal(t, int(g.MaxLabel())+1, g.NumLabels())
			assert.Equal(t, g.LabelMap().Len(), g.NumLabels())
		})
	}
}

// TestNewGraph_Deterministic builds the same records twice.
func TestNewGraph_Deterministic(t *testing.T) {
	for _, fx := range fixtures(t) {
		a, b := mustGraph(t, fx.recs), mustGraph(t, fx.recs)
		for v := core.Vertex(0); int(v) < a.NumVertices(); v++ {
			assert.Equal(t, a.Neighbors(v), b.Neighbors(v), "%s v=%d", fx.name, v)
		}
		assert.Equal(t, a.Stats(), b.Stats())
	}
}

func TestGraph_Stats(t *testing.T) {
	recs := mustRecords(t, nil, builder.Star(5))
	g := mustGraph(t, recs)
	assert.Equal(t, core.GraphStats{
		VertexCount: 5,
		EdgeCount:   4,
		LabelCount:  3,
		MaxLabel:    2,
		MaxDegree:   4,
	}, g.Stats())
}
