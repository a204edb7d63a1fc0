// SPDX-License-Identifier: MIT
// Package: labelcsr/builder
//
// impl_graph6.go — Graph6(s): decode a graph6 string into a component.
//
// Contract:
//   - s must be a valid graph6 encoding (else ErrBadGraph6).
//   - Vertex k of the encoding becomes base+k; edges emitted for u<v, u asc then v asc.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/graph/encoding/graph6"

	"github.com/katalvlaran/labelcsr/core"
)

const methodGraph6 = "Graph6"

// Graph6 returns a Constructor that appends the graph encoded by s.
func Graph6(s string) Constructor {
	return func(recs *core.Records, cfg builderConfig) error {
		g := graph6.Graph(s)
		if !headerComplete(s) || !graph6.IsValid(g) {
			return fmt.Errorf("%s: %q: %w", methodGraph6, s, ErrBadGraph6)
		}

		n := g.Nodes().Len()
		base := addVertices(recs, cfg, n)
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				if g.HasEdgeBetween(int64(u), int64(v)) {
					addEdge(recs, cfg, base+core.Vertex(u), base+core.Vertex(v))
				}
			}
		}
		return nil
	}
}

// headerComplete reports whether s holds the full vertex-count prefix, so
// that decoding the count cannot read past the end of s.
func headerComplete(s string) bool {
	switch {
	case len(s) == 0:
		return false
	case s[0] != '~':
		return true
	case len(s) > 1 && s[1] == '~':
		return len(s) >= 8
	default:
		return len(s) >= 4
	}
}
