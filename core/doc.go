// Package core provides a read-only, compact index over a labelled,
// undirected graph: a CSR adjacency whose per-vertex neighbor segments are
// partitioned into label-homogeneous blocks.
//
// The index is built once from parsed Records and queried many times:
//
//   - per-vertex neighbor enumeration, optionally restricted to one label;
//   - edge existence tests (IsNeighbor) by binary search inside the smaller
//     of the two label blocks involved.
//
// Labels:
//
//	Raw labels from the input are remapped to dense labels 0..k-1 by a
//	LabelMap, in ascending raw order. A build either canonicalizes its own
//	records or reuses a LabelMap produced for another graph (WithLabelMap),
//	typically a query graph aligned to its data graph. Raw labels unknown to
//	a reused map become NoLabel and never match a label-scoped query.
//
// Layout:
//
//	adjacency  : [ n(0) ... | n(1) ... | ... ]      len == 2·|E|
//	offsets    : offsets[v] .. offsets[v+1]          segment of v
//	labelRange : per (v, l) half-open block inside v's segment
//
// Inside each block neighbors are ordered by descending degree, ties by
// ascending vertex id (the composite order).
//
// Concurrency:
//
//	A Graph is immutable once NewGraph returns. All accessors are lock-free
//	and safe for concurrent readers. A LabelMap is immutable as well.
//
// Errors:
//
//	ErrNilRecords          - nil *Records passed to a builder.
//	ErrBadVertexCount      - negative vertex count in the header.
//	ErrVertexOutOfRange    - vertex id outside [0, NumVertices).
//	ErrDuplicateVertex     - vertex declared more than once.
//	ErrUndeclaredVertex    - vertex id never declared.
//	ErrNegativeLabel       - raw label < 0 (cannot index the remap table).
//	ErrLoopNotAllowed      - self-loop edge.
//	ErrMultiEdgeNotAllowed - parallel edge between the same endpoints.
package core
