// SPDX-License-Identifier: MIT
// Package: labelcsr/embedding
//
// edges.go — edge embeddings and embedding validation against the index.

package embedding

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/labelcsr/core"
)

const (
	methodEdgeEmbeddings = "EdgeEmbeddings"
	methodValidate       = "Validate"

	// maxReported caps the number of joined errors returned by Validate.
	maxReported = 16
)

// QueryEdges lists each query edge once as (u, w) with u < w, in vertex
// order and, per vertex, in the index's neighbor order.
func QueryEdges(query *core.Graph) []core.Edge {
	out := make([]core.Edge, 0, query.NumEdges())
	for u := core.Vertex(0); int(u) < query.NumVertices(); u++ {
		r := query.NeighborRange(u)
		for off := r.Start; off < r.End; off++ {
			if w := query.Neighbor(off); u < w {
				out = append(out, core.Edge{From: u, To: w})
			}
		}
	}
	return out
}

// EdgeEmbeddings maps every vertex embedding to the data-graph images of the
// query edges: for query edge (u, w) the pair (emb[u], emb[w]).
//
// Errors:
//   - ErrNilGraph: query == nil.
//   - ErrInvalidEmbedding: an embedding narrower than query.NumVertices().
func EdgeEmbeddings(query *core.Graph, embs [][]core.Vertex) ([][]core.Edge, error) {
	if query == nil {
		return nil, fmt.Errorf("%s: %w", methodEdgeEmbeddings, ErrNilGraph)
	}
	qEdges := QueryEdges(query)

	out := make([][]core.Edge, len(embs))
	for i, emb := range embs {
		if len(emb) < query.NumVertices() {
			return nil, fmt.Errorf("%s: embedding #%d width %d < %d: %w",
				methodEdgeEmbeddings, i, len(emb), query.NumVertices(), ErrInvalidEmbedding)
		}
		edges := make([]core.Edge, len(qEdges))
		for k, qe := range qEdges {
			edges[k] = core.Edge{From: emb[qe.From], To: emb[qe.To]}
		}
		out[i] = edges
	}
	return out, nil
}

// Check reports why emb is not a valid embedding of query into data, or nil.
// Checked in order: width, id range, injectivity, label agreement, then
// edge preservation (data.IsNeighbor for every query edge).
func Check(data, query *core.Graph, emb []core.Vertex) error {
	if data == nil || query == nil {
		return ErrNilGraph
	}
	if len(emb) != query.NumVertices() {
		return fmt.Errorf("width %d != %d: %w", len(emb), query.NumVertices(), ErrInvalidEmbedding)
	}

	seen := make(map[core.Vertex]core.Vertex, len(emb))
	for q, v := range emb {
		if v < 0 || int(v) >= data.NumVertices() {
			return fmt.Errorf("query vertex %d -> %d out of range: %w", q, v, ErrInvalidEmbedding)
		}
		if prev, dup := seen[v]; dup {
			return fmt.Errorf("query vertices %d and %d both map to %d: %w", prev, q, v, ErrInvalidEmbedding)
		}
		seen[v] = core.Vertex(q)
		if data.Label(v) != query.Label(core.Vertex(q)) {
			return fmt.Errorf("query vertex %d label %d, data vertex %d label %d: %w",
				q, query.Label(core.Vertex(q)), v, data.Label(v), ErrInvalidEmbedding)
		}
	}

	for _, qe := range QueryEdges(query) {
		if !data.IsNeighbor(emb[qe.From], emb[qe.To]) {
			return fmt.Errorf("query edge (%d,%d) -> (%d,%d) not in data graph: %w",
				qe.From, qe.To, emb[qe.From], emb[qe.To], ErrInvalidEmbedding)
		}
	}
	return nil
}

// Validate checks every embedding and returns the number of invalid ones
// together with the first few failures joined (errors.Join), each prefixed
// with its embedding index.
func Validate(data, query *core.Graph, embs [][]core.Vertex) (int, error) {
	if data == nil || query == nil {
		return 0, fmt.Errorf("%s: %w", methodValidate, ErrNilGraph)
	}

	var (
		invalid int
		errs    []error
	)
	for i, emb := range embs {
		if err := Check(data, query, emb); err != nil {
			invalid++
			if len(errs) < maxReported {
				errs = append(errs, fmt.Errorf("%s: embedding #%d: %w", methodValidate, i, err))
			}
		}
	}
	return invalid, errors.Join(errs...)
}
