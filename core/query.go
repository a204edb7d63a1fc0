// SPDX-License-Identifier: MIT
// File: query.go
// Role: read-only query surface of Graph.
// Policy:
//   - Every accessor is O(1) except IsNeighbor (O(log d)) and the copying
//     Neighbors/LabelNeighbors/Stats helpers.
//   - Vertex arguments must lie in [0, NumVertices); offsets passed to
//     Neighbor must come from a range returned here. Only IsNeighbor
//     tolerates arbitrary vertex ids.
//   - NoLabel is never matched by a label-scoped query.

package core

import "slices"

// GraphID returns the id from the "t" header.
func (g *Graph) GraphID() int32 { return g.graphID }

// NumVertices returns |V|.
func (g *Graph) NumVertices() int { return g.numVertices }

// NumEdges returns |E| (one per edge record).
func (g *Graph) NumEdges() int { return g.numEdges }

// NumLabels returns the number of distinct dense labels carried by at least
// one vertex. Vertices labelled NoLabel are not counted.
func (g *Graph) NumLabels() int { return g.numLabels }

// MaxLabel returns the largest dense label carried by a vertex, or NoLabel.
func (g *Graph) MaxLabel() Label { return g.maxLabel }

// LabelMap returns the table the index was built with. Pass it to
// WithLabelMap to align another graph's labels with this one.
func (g *Graph) LabelMap() *LabelMap { return g.labels }

// Label returns the dense label of v (NoLabel if its raw label was unknown).
func (g *Graph) Label(v Vertex) Label { return g.label[v] }

// LabelFrequency returns the number of vertices with dense label l.
// LabelFrequency(NoLabel) counts the vertices whose raw label was unknown,
// so the buckets sum to NumVertices. Labels outside the index return 0.
func (g *Graph) LabelFrequency(l Label) int {
	if l < NoLabel || l > g.maxLabel {
		return 0
	}
	return g.labelFreq[l+1]
}

// Degree returns the number of neighbors of v.
func (g *Graph) Degree(v Vertex) int {
	return g.offsets[v+1] - g.offsets[v]
}

// NeighborRange returns v's whole segment in the flat adjacency.
func (g *Graph) NeighborRange(v Vertex) Range {
	return Range{Start: g.offsets[v], End: g.offsets[v+1]}
}

// LabelNeighborRange returns the block of v's neighbors labelled l.
// If v has no such neighbor (or l is NoLabel), ok is false and the returned
// range is empty and positioned at the start of v's segment, so it is still
// safe to iterate.
func (g *Graph) LabelNeighborRange(v Vertex, l Label) (r Range, ok bool) {
	if l == NoLabel {
		return Range{Start: g.offsets[v], End: g.offsets[v]}, false
	}
	if r = g.block(v, l); r == absentRange {
		return Range{Start: g.offsets[v], End: g.offsets[v]}, false
	}
	return r, true
}

// NeighborLabelFrequency returns how many neighbors of v carry label l.
func (g *Graph) NeighborLabelFrequency(v Vertex, l Label) int {
	r, _ := g.LabelNeighborRange(v, l)
	return r.Len()
}

// Neighbor returns the vertex stored at offset in the flat adjacency.
// offset must lie inside a range obtained from NeighborRange or LabelNeighborRange.
func (g *Graph) Neighbor(offset int) Vertex { return g.adjacency[offset] }

// Neighbors returns a copy of v's neighbors in composite order.
func (g *Graph) Neighbors(v Vertex) []Vertex {
	return slices.Clone(g.adjacency[g.offsets[v]:g.offsets[v+1]])
}

// LabelNeighbors returns a copy of v's neighbors labelled l, degree desc.
// The result is nil when v has no such neighbor.
func (g *Graph) LabelNeighbors(v Vertex, l Label) []Vertex {
	r, ok := g.LabelNeighborRange(v, l)
	if !ok {
		return nil
	}
	return slices.Clone(g.adjacency[r.Start:r.End])
}

// IsNeighbor reports whether u and v are adjacent.
//
// Implementation:
//   - Stage 1: Look up u's block for label(v) and v's block for label(u).
//   - Stage 2: Keep the smaller block (swap u and v if needed).
//   - Stage 3: Binary-search it under the in-block order (degree desc, id asc).
//
// Vertices labelled NoLabel are still found, through their own block.
// Ids outside [0, NumVertices) yield false.
//
// Complexity: O(log min(|block(u,label(v))|, |block(v,label(u))|)).
func (g *Graph) IsNeighbor(u, v Vertex) bool {
	if !g.inRange(u) || !g.inRange(v) {
		return false
	}

	ru, rv := g.block(u, g.label[v]), g.block(v, g.label[u])
	if ru == absentRange || rv == absentRange {
		return false
	}
	if ru.Len() > rv.Len() {
		u, v = v, u
		ru = rv
	}

	_, found := slices.BinarySearchFunc(g.adjacency[ru.Start:ru.End], v, g.compareByDegree)
	return found
}

// Stats returns a summary of the index. O(V).
func (g *Graph) Stats() GraphStats {
	st := GraphStats{
		GraphID:        g.graphID,
		VertexCount:    g.numVertices,
		EdgeCount:      g.numEdges,
		LabelCount:     g.numLabels,
		MaxLabel:       g.maxLabel,
		UnlabeledCount: g.labelFreq[0],
	}
	for v := 0; v < g.numVertices; v++ {
		st.MaxDegree = max(st.MaxDegree, g.Degree(Vertex(v)))
	}
	return st
}

// block returns the raw stored block for (v, l), NoLabel included.
func (g *Graph) block(v Vertex, l Label) Range {
	if l < NoLabel || l > g.maxLabel {
		return absentRange
	}
	return g.labelRange[int(v)*g.stride+int(l)+1]
}
