// SPDX-License-Identifier: MIT
// Package: labelcsr/builder
//
// impl_star.go — Star(n) and Complete(n).
//
// Contract:
//   • Star: n ≥ 2; the hub is the first appended vertex, spokes hub—leaf in leaf order.
//   • Complete: n ≥ 1; edges i—j for i<j, i asc then j asc.

package builder

import (
	"fmt"

	"github.com/katalvlaran/labelcsr/core"
)

const (
	methodStar       = "Star"
	methodComplete   = "Complete"
	minStarNodes     = 2
	minCompleteNodes = 1
)

// Star returns a Constructor for a star: one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(recs *core.Records, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub := addVertices(recs, cfg, n)
		for i := 1; i < n; i++ {
			addEdge(recs, cfg, hub, hub+core.Vertex(i))
		}
		return nil
	}
}

// Complete returns a Constructor for the complete graph K_n.
func Complete(n int) Constructor {
	return func(recs *core.Records, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		base := addVertices(recs, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				addEdge(recs, cfg, base+core.Vertex(i), base+core.Vertex(j))
			}
		}
		return nil
	}
}
