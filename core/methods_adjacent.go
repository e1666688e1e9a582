// File: methods_adjacent.go
// Role: Adjacency queries and conversions: Neighbors, Adjacency, FromAdjacency.
// Determinism:
//   - Neighbors(id) returns outgoing edges in edge-ID order.
//   - FromAdjacency processes keys in sorted order, arcs in slice order.
// Concurrency:
//   - Reads take muVert then muEdgeAdj (same order as mutators).

package core

import (
	"fmt"
	"sort"
)

// Neighbors returns the outgoing edges of id.
//
// The returned slice is a fresh copy; the *Edge values are shared and must be
// treated as read-only. A vertex with no outgoing edges yields an empty slice.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d) where d is the out-degree of id.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	src := g.outgoing[id]
	out := make([]*Edge, len(src))
	copy(out, src)

	return out, nil
}

// Adjacency exports the graph as an adjacency mapping. Every vertex is a key,
// including vertices with no outgoing edges. For undirected graphs the mapping
// lists both stored directions, so it must be re-imported without WithUndirected
// to obtain the same edge set.
//
// Complexity: O(V+E).
func (g *Graph) Adjacency() map[string][]Arc {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	adj := make(map[string][]Arc, len(g.vertices))
	for id := range g.vertices {
		arcs := make([]Arc, 0, len(g.outgoing[id]))
		for _, e := range g.outgoing[id] {
			arcs = append(arcs, Arc{To: e.To, Weight: e.Weight})
		}
		adj[id] = arcs
	}

	return adj
}

// FromAdjacency builds a Graph from a mapping of vertex ID to its outgoing
// (target, weight) pairs. The mapping is used verbatim: every key becomes a
// vertex even when its list is empty, every arc becomes one edge (duplicates
// and self-loops included), and targets that are not keys are added as
// vertices with no outgoing edges.
//
// Errors wrap ErrEmptyVertexID or ErrBadWeight with the offending key/arc.
//
// Complexity: O(V log V + E).
func FromAdjacency(adj map[string][]Arc, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(opts...)

	keys := make([]string, 0, len(adj))
	for k := range adj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// 1) Register all keys first so isolated vertices exist even with empty lists.
	for _, k := range keys {
		if err := g.AddVertex(k); err != nil {
			return nil, fmt.Errorf("core: FromAdjacency key %q: %w", k, err)
		}
	}

	// 2) Insert arcs in deterministic order.
	for _, k := range keys {
		for i, a := range adj[k] {
			if _, err := g.AddEdge(k, a.To, a.Weight); err != nil {
				return nil, fmt.Errorf("core: FromAdjacency %q[%d]→%q: %w", k, i, a.To, err)
			}
		}
	}

	return g, nil
}
