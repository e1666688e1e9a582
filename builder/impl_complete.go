// SPDX-License-Identifier: MIT
// Package: pathcost/builder
//
// impl_complete.go - Complete(n) constructor.
//
// Directed graphs get every ordered pair (i,j), i≠j; undirected graphs every
// unordered pair i<j (mirrored by core). Emission order: i asc, j asc.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathcost/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodComplete, id, err)
			}
		}

		undirected := g.Undirected()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || (undirected && j < i) {
					continue
				}
				u, v := cfg.idFn(i), cfg.idFn(j)
				w := cfg.weight()
				if _, err := g.AddEdge(u, v, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodComplete, u, v, w, err)
				}
			}
		}

		return nil
	}
}
