// Package bfs provides breadth-first search over a core.Graph, returning
// hop-count depths and visit order.
//
// Edge weights are ignored: BFS answers "which vertices can the start reach,
// and in how many hops". pathcost uses it for the `inspect` command and to
// cross-check the weighted engine, since a vertex is reachable by BFS exactly
// when dijkstra reports a finite distance for it.
//
// Determinism
//
//	core.Graph.Neighbors returns edges in insertion order, and BFS enqueues
//	neighbors in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "A",
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(id string, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an Option is invalid (negative MaxDepth).
//   - ErrNeighbors            if core.Graph.Neighbors fails.
//   - Wrapped errors returned by the OnVisit hook, or ctx.Err().
package bfs
