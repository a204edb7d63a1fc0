// SPDX-License-Identifier: MIT
// Package: labelcsr/builder
//
// impl_cycle.go — Cycle(n) and Path(n).
//
// Contract:
//   • Cycle: n ≥ 3; edges i—(i+1)%n for i=0..n-1.
//   • Path:  n ≥ 2; edges i—i+1 for i=0..n-2.
//   • Vertices appended in ascending order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/labelcsr/core"
)

const (
	methodCycle   = "Cycle"
	methodPath    = "Path"
	minCycleNodes = 3
	minPathNodes  = 2
)

// Cycle returns a Constructor for the n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(recs *core.Records, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		base := addVertices(recs, cfg, n)
		for i := 0; i < n; i++ {
			addEdge(recs, cfg, base+core.Vertex(i), base+core.Vertex((i+1)%n))
		}
		return nil
	}
}

// Path returns a Constructor for the simple path P_n.
func Path(n int) Constructor {
	return func(recs *core.Records, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		base := addVertices(recs, cfg, n)
		for i := 0; i+1 < n; i++ {
			addEdge(recs, cfg, base+core.Vertex(i), base+core.Vertex(i+1))
		}
		return nil
	}
}
