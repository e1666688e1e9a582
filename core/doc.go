// Package core provides the in-memory Graph model consumed by the shortest-path
// engine: string-identified vertices joined by directed, weighted edges.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Directed edges by default; WithUndirected mirrors every AddEdge.
//   - float64 weights (NaN rejected with ErrBadWeight). Sign is not checked here;
//     the dijkstra package rejects negative weights before it runs.
//   - Self-loops and parallel edges are always accepted. Both are valid inputs for
//     shortest paths and are resolved by relaxation.
//   - Edge targets are registered as vertices on insertion, so every vertex that is
//     referenced by an edge is also a key of the graph.
//   - Stable textual edge IDs ("e1", "e2", …) from an atomic counter.
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj).
//
// Construction from an adjacency mapping:
//
//	g, err := core.FromAdjacency(map[string][]core.Arc{
//	    "A": {{To: "B", Weight: 5}, {To: "C", Weight: 2}},
//	    "B": {{To: "D", Weight: 3}},
//	    "C": {},
//	})
//
// Core Methods:
//
//	AddVertex(id string) error                         // O(1), idempotent
//	HasVertex(id string) bool                          // O(1)
//	AddEdge(from, to string, w float64) (string, error) // O(1) amortized
//	Neighbors(id string) ([]*Edge, error)              // O(d), outgoing edges in edge-ID order
//	Vertices() []string                                // O(V log V), sorted
//	Edges() []*Edge                                    // O(E log E), by edge ID
//	Adjacency() map[string][]Arc                       // O(V+E)
//	VertexCount(), EdgeCount() int                     // O(1)
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrVertexNotFound – Neighbors on a vertex that was never added
//	ErrBadWeight      – NaN edge weight
//
// Once built, a Graph is never mutated by the algorithms in this module, so one
// instance may be shared read-only by any number of concurrent computations.
package core
