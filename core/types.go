// SPDX-License-Identifier: MIT
// File: types.go
// Role: primitive domain types, input records and sentinel errors.

package core

import "errors"

// Sentinel errors for index construction. Builders wrap them with context
// via fmt.Errorf("...: %w", ErrX); callers match with errors.Is.
var (
	// ErrNilRecords indicates a nil *Records was passed to NewGraph or BuildLabelMap.
	ErrNilRecords = errors.New("core: records are nil")

	// ErrBadVertexCount indicates a negative vertex count.
	ErrBadVertexCount = errors.New("core: invalid vertex count")

	// ErrVertexOutOfRange indicates a vertex id outside [0, NumVertices).
	ErrVertexOutOfRange = errors.New("core: vertex id out of range")

	// ErrDuplicateVertex indicates a vertex record declared twice.
	ErrDuplicateVertex = errors.New("core: vertex declared twice")

	// ErrUndeclaredVertex indicates a vertex id in [0, NumVertices) with no vertex record.
	ErrUndeclaredVertex = errors.New("core: vertex not declared")

	// ErrNegativeLabel indicates a raw label below zero.
	ErrNegativeLabel = errors.New("core: negative raw label")

	// ErrLoopNotAllowed indicates a self-loop edge record.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates two edge records joining the same endpoints.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex is a dense vertex identifier in [0, NumVertices).
type Vertex int32

// Label is a vertex label. Raw labels come from the input; dense labels are
// the output of a LabelMap.
type Label int32

// NoLabel is the dense label of a vertex whose raw label is unknown to the
// LabelMap used for the build.
const NoLabel Label = -1

// Edge is an ordered vertex pair. The index itself is undirected; Edge is the
// element type of edge embeddings, where orientation follows the query graph.
type Edge struct {
	From Vertex
	To   Vertex
}

// VertexRecord is one parsed "v <id> <label>" line.
type VertexRecord struct {
	ID    Vertex
	Label Label // raw label
}

// EdgeRecord is one parsed "e <from> <to> <label>" line.
// The edge label is carried for round-tripping but never indexed.
type EdgeRecord struct {
	From  Vertex
	To    Vertex
	Label Label
}

// Records is the parsed, immutable input of one graph build.
type Records struct {
	GraphID     int32
	NumVertices int
	Vertices    []VertexRecord
	Edges       []EdgeRecord
}

// Range is a half-open offset range [Start, End) into the flat adjacency.
type Range struct {
	Start int
	End   int
}

// Len returns End - Start.
func (r Range) Len() int { return r.End - r.Start }

// Empty reports whether the range holds no offsets.
func (r Range) Empty() bool { return r.End <= r.Start }

// absentRange marks a (vertex, label) pair with no neighbors of that label.
// It can never collide with a real block, including an empty one at offset 0.
var absentRange = Range{Start: -1, End: -1}

// GraphStats is a read-only summary of a built index.
type GraphStats struct {
	GraphID        int32
	VertexCount    int
	EdgeCount      int
	LabelCount     int
	MaxLabel       Label
	UnlabeledCount int
	MaxDegree      int
}
