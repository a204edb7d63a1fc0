// SPDX-License-Identifier: MIT
// File: graph.go
// Role: Graph type and its one-shot construction (NewGraph).
// Determinism:
//   - Identical Records and LabelMap produce identical arrays.
//   - Each neighbor segment is sorted by (label asc, degree desc, id asc).
// Concurrency:
//   - Construction is single-threaded; the returned Graph is never mutated.

package core

import (
	"cmp"
	"fmt"
	"slices"
)

const methodNewGraph = "NewGraph"

// Graph is the immutable CSR index of one labelled, undirected graph.
//
// Vertex v's neighbors occupy adjacency[offsets[v]:offsets[v+1]]. Within that
// segment, the neighbors with dense label l occupy the block recorded at
// labelRange[v*stride + l + 1]; slot 0 of each row holds the NoLabel block.
type Graph struct {
	graphID     int32
	numVertices int
	numEdges    int
	numLabels   int   // distinct dense labels present, NoLabel excluded
	maxLabel    Label // NoLabel when no vertex carries a dense label

	labels *LabelMap

	label      []Label  // vertex -> dense label
	labelFreq  []int    // (l+1) -> vertex count; slot 0 counts NoLabel
	offsets    []int    // len numVertices+1, prefix sum of degrees
	adjacency  []Vertex // len 2*numEdges
	labelRange []Range  // len numVertices*stride; absentRange where unset
	stride     int      // maxLabel + 2
}

// NewGraph builds the index for recs.
//
// Without WithLabelMap the records are canonicalized first (BuildLabelMap);
// with it, the given map is used as-is and unseen raw labels become NoLabel.
//
// Implementation:
//   - Stage 1: Resolve the LabelMap and assign a dense label to every vertex.
//   - Stage 2: Count degrees (both directions per edge record).
//   - Stage 3: Prefix-sum degrees into offsets (offsets[0] = 0).
//   - Stage 4: Scatter every edge into both endpoint segments.
//   - Stage 5: Per-label vertex frequencies, numLabels and maxLabel.
//   - Stage 6: Sort each segment by the composite order and delimit its label blocks.
//
// Errors (wrapped, matched with errors.Is); no partial index is returned:
//   - ErrNilRecords, ErrBadVertexCount, ErrVertexOutOfRange, ErrDuplicateVertex,
//     ErrUndeclaredVertex, ErrNegativeLabel, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity:
//   - Time O(V·L + E log Δ), Space O(V·L + E), where L = maxLabel+2 and Δ the max degree.
func NewGraph(recs *Records, opts ...GraphOption) (*Graph, error) {
	if recs == nil {
		return nil, fmt.Errorf("%s: %w", methodNewGraph, ErrNilRecords)
	}
	if recs.NumVertices < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodNewGraph, recs.NumVertices, ErrBadVertexCount)
	}
	if len(recs.Vertices) < recs.NumVertices {
		// Every id in [0,n) needs its own record; fail before sizing arrays by n.
		return nil, fmt.Errorf("%s: n=%d with %d vertex records: %w",
			methodNewGraph, recs.NumVertices, len(recs.Vertices), ErrUndeclaredVertex)
	}
	cfg := newGraphConfig(opts...)
	reused := cfg.labels != nil

	// Stage 1: labels.
	lm := cfg.labels
	if lm == nil {
		var err error
		if lm, err = BuildLabelMap(recs); err != nil {
			return nil, fmt.Errorf("%s: %w", methodNewGraph, err)
		}
	}

	n := recs.NumVertices
	g := &Graph{
		graphID:     recs.GraphID,
		numVertices: n,
		numEdges:    len(recs.Edges),
		maxLabel:    NoLabel,
		labels:      lm,
		label:       make([]Label, n),
		offsets:     make([]int, n+1),
	}

	declared := make([]bool, n)
	for _, vr := range recs.Vertices {
		if !g.inRange(vr.ID) {
			return nil, fmt.Errorf("%s: vertex %d not in [0,%d): %w",
				methodNewGraph, vr.ID, n, ErrVertexOutOfRange)
		}
		if declared[vr.ID] {
			return nil, fmt.Errorf("%s: vertex %d: %w", methodNewGraph, vr.ID, ErrDuplicateVertex)
		}
		if vr.Label < 0 {
			return nil, fmt.Errorf("%s: vertex %d label %d: %w",
				methodNewGraph, vr.ID, vr.Label, ErrNegativeLabel)
		}
		declared[vr.ID] = true
		g.label[vr.ID] = lm.Dense(vr.Label)
	}
	for v, ok := range declared {
		if !ok {
			return nil, fmt.Errorf("%s: vertex %d: %w", methodNewGraph, v, ErrUndeclaredVertex)
		}
	}

	// Stage 2: degrees, shifted by one so Stage 3 is an in-place prefix sum.
	for i, er := range recs.Edges {
		if !g.inRange(er.From) || !g.inRange(er.To) {
			return nil, fmt.Errorf("%s: edge #%d (%d,%d) not in [0,%d): %w",
				methodNewGraph, i, er.From, er.To, n, ErrVertexOutOfRange)
		}
		if er.From == er.To {
			return nil, fmt.Errorf("%s: edge #%d (%d,%d): %w",
				methodNewGraph, i, er.From, er.To, ErrLoopNotAllowed)
		}
		g.offsets[er.From+1]++
		g.offsets[er.To+1]++
	}

	// Stage 3: offsets.
	for v := 0; v < n; v++ {
		g.offsets[v+1] += g.offsets[v]
	}

	// Stage 4: scatter into the flat adjacency.
	g.adjacency = make([]Vertex, 2*g.numEdges)
	cursor := slices.Clone(g.offsets[:n])
	for _, er := range recs.Edges {
		g.adjacency[cursor[er.From]] = er.To
		cursor[er.From]++
		g.adjacency[cursor[er.To]] = er.From
		cursor[er.To]++
	}

	// Stage 5: label statistics.
	for _, l := range g.label {
		if l > g.maxLabel {
			g.maxLabel = l
		}
	}
	g.stride = int(g.maxLabel) + 2
	g.labelFreq = make([]int, g.stride)
	for _, l := range g.label {
		if g.labelFreq[l+1] == 0 && l != NoLabel {
			g.numLabels++
		}
		g.labelFreq[l+1]++
	}

	// Stage 6: composite sort and label blocks.
	g.labelRange = make([]Range, n*g.stride)
	for i := range g.labelRange {
		g.labelRange[i] = absentRange
	}
	for v := 0; v < n; v++ {
		if err := g.indexSegment(Vertex(v)); err != nil {
			return nil, fmt.Errorf("%s: %w", methodNewGraph, err)
		}
	}

	cfg.logger.Debug("core: index built",
		"graph", g.graphID,
		"vertices", g.numVertices,
		"edges", g.numEdges,
		"labels", g.numLabels,
		"maxLabel", g.maxLabel,
		"reusedLabelMap", reused,
	)

	return g, nil
}

// indexSegment sorts v's segment and records one block per label present.
// Equal neighbors end up adjacent under the composite order, so parallel
// edges are detected in the same walk.
func (g *Graph) indexSegment(v Vertex) error {
	start, end := g.offsets[v], g.offsets[v+1]
	if start == end {
		return nil
	}
	seg := g.adjacency[start:end]
	slices.SortFunc(seg, g.compareNeighbors)

	row := int(v) * g.stride
	for j := 0; j < len(seg); {
		l := g.label[seg[j]]
		k := j + 1
		for k < len(seg) && g.label[seg[k]] == l {
			if seg[k] == seg[k-1] {
				return fmt.Errorf("edge (%d,%d): %w", v, seg[k], ErrMultiEdgeNotAllowed)
			}
			k++
		}
		g.labelRange[row+int(l)+1] = Range{Start: start + j, End: start + k}
		j = k
	}

	return nil
}

// compareNeighbors is the composite order: label asc, degree desc, id asc.
func (g *Graph) compareNeighbors(a, b Vertex) int {
	if c := cmp.Compare(g.label[a], g.label[b]); c != 0 {
		return c
	}
	return g.compareByDegree(a, b)
}

// compareByDegree is the in-block order: degree desc, id asc.
func (g *Graph) compareByDegree(a, b Vertex) int {
	if c := cmp.Compare(g.Degree(b), g.Degree(a)); c != 0 {
		return c
	}
	return cmp.Compare(a, b)
}

func (g *Graph) inRange(v Vertex) bool {
	return v >= 0 && int(v) < g.numVertices
}
