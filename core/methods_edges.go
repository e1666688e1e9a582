// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Edges/EdgeCount, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by numeric edge sequence ("e2" before "e10").
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock; queries under muEdgeAdj read lock.

package core

import (
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix of every edge identifier.
const edgeIDPrefix = 'e'

// AddEdge stores a directed edge from → to with weight w and returns its ID.
// Missing endpoints are added as vertices first. In an undirected graph the
// reverse edge to → from is stored too (except for self-loops) and the ID of
// the forward edge is returned.
//
// Steps:
//  1. Validate IDs and weight.
//  2. Ensure endpoints via AddVertex.
//  3. Under muEdgeAdj, allocate an ID, store the edge and append it to outgoing[from].
//  4. Mirror when undirected.
//
// Errors:
//   - ErrEmptyVertexID: if from or to is "".
//   - ErrBadWeight: if w is NaN.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, w float64) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if math.IsNaN(w) {
		return "", ErrBadWeight
	}

	// 2) Ensure vertices exist; this is what keeps every edge target a key of the graph.
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	// 3) Insert under lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	eid := g.storeEdge(from, to, w)

	// 4) Mirror undirected
	if g.undirected && from != to {
		g.storeEdge(to, from, w)
	}

	return eid, nil
}

// storeEdge allocates an ID and links the edge. Caller holds muEdgeAdj.
func (g *Graph) storeEdge(from, to string, w float64) string {
	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Weight: w}
	g.edges[eid] = e
	g.outgoing[from] = append(g.outgoing[from], e)

	return eid
}

// Edges returns every stored edge ordered by insertion sequence.
// Treat the returned *Edge values as read-only.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	g.muEdgeAdj.RUnlock()

	sort.Slice(out, func(i, j int) bool { return edgeSeq(out[i].ID) < edgeSeq(out[j].ID) })

	return out
}

// EdgeCount returns the number of stored edges (mirrors included).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns the next "e<n>" identifier without fmt allocations.
// Safe for concurrent callers.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// edgeSeq parses the numeric part of an edge ID produced by nextEdgeID.
func edgeSeq(eid string) uint64 {
	n, _ := strconv.ParseUint(eid[1:], 10, 64)

	return n
}
