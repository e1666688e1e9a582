// SPDX-License-Identifier: MIT
// Package: pathcost/builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - An RNG is required when 0 < p < 1 (else ErrNeedRandSource).
//   - Vertices are added via cfg.idFn for i = 0..n-1 before any edge.
//   - Directed: one trial per ordered pair (i,j), i≠j. Undirected: per pair i<j.
//   - An edge is kept when rng.Float64() < p; its weight is drawn right after.
//
// Determinism: trial order is i asc, then j asc.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathcost/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a random graph over n
// vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters before touching g.
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Vertices
		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodRandomSparse, id, err)
			}
		}

		// 3) Edges
		undirected := g.Undirected()
		var u, v string
		for i := 0; i < n; i++ {
			u = cfg.idFn(i)
			j0 := 0
			if undirected {
				j0 = i + 1
			}
			for j := j0; j < n; j++ {
				if i == j {
					continue
				}
				if !trial(cfg, p) {
					continue
				}
				v = cfg.idFn(j)
				w := cfg.weight()
				if _, err := g.AddEdge(u, v, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodRandomSparse, u, v, w, err)
				}
			}
		}

		return nil
	}
}

// trial runs one Bernoulli(p) draw. p ∈ {0,1} needs no RNG.
func trial(cfg builderConfig, p float64) bool {
	switch {
	case p <= probMin:
		return false
	case p >= probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
