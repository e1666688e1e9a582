// SPDX-License-Identifier: MIT
// Package: pathcost/builder
//
// impl_path.go - Path(n) constructor: 0→1→…→(n-1), weights from cfg.weightFn.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathcost/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodPath, id, err)
			}
		}

		var u, v string
		for i := 1; i < n; i++ {
			u, v = cfg.idFn(i-1), cfg.idFn(i)
			w := cfg.weight()
			if _, err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodPath, u, v, w, err)
			}
		}

		return nil
	}
}
