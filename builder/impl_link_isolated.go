// SPDX-License-Identifier: MIT
// Package: pathcost/builder
//
// impl_link_isolated.go - LinkIsolated() constructor.
//
// Repairs a generated graph so that no vertex is isolated: each vertex with
// neither incoming nor outgoing edges gets one edge to a uniformly chosen
// other vertex (mirrored when the graph is undirected). Vertices are visited
// in sorted ID order, and a vertex linked earlier in the pass counts as
// connected, so the pass adds at most one edge per isolated vertex.
//
// Contract:
//   - At least 2 vertices (else ErrTooFewVertices).
//   - An RNG is required (else ErrNeedRandSource).

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathcost/core"
)

const (
	methodLinkIsolated = "LinkIsolated"
	minLinkVertices    = 2
)

// LinkIsolated returns a Constructor that links every isolated vertex.
func LinkIsolated() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		ids := g.Vertices()
		if len(ids) < minLinkVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodLinkIsolated, len(ids), minLinkVertices, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodLinkIsolated, ErrNeedRandSource)
		}

		// 1) Incident-edge count per vertex (in + out).
		degree := make(map[string]int, len(ids))
		for _, e := range g.Edges() {
			degree[e.From]++
			degree[e.To]++
		}

		// 2) Link each isolated vertex to a random other vertex.
		n := len(ids)
		for i, u := range ids {
			if degree[u] > 0 {
				continue
			}
			j := cfg.rng.Intn(n - 1)
			if j >= i {
				j++ // skip u itself
			}
			v := ids[j]
			w := cfg.weight()
			if _, err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodLinkIsolated, u, v, w, err)
			}
			degree[u]++
			degree[v]++
		}

		return nil
	}
}
