// Package pathcost computes single-source shortest-path distances over
// weighted graphs.
//
// The module is organized as:
//
//	core/       Graph, Vertex, Edge and Arc; thread-safe construction and queries
//	dijkstra/   the shortest-distance engine (binary-heap frontier, lazy stale skip)
//	bfs/        hop-count reachability
//	builder/    seeded graph generators for tests, benchmarks and `pathcost gen`
//	graphfile/  graph documents in HCL, YAML and JSON
//	report/     text and JSON rendering of results
//	internal/   configuration, logging, Redis cache, HTTP server and CLI
//	cmd/        the pathcost binary
//
// Quick start:
//
//	g, _ := core.FromAdjacency(map[string][]core.Arc{
//	    "A": {{To: "B", Weight: 5}, {To: "C", Weight: 2}},
//	    "C": {{To: "B", Weight: 1}},
//	})
//	dist, err := dijkstra.ShortestPaths(g, "A") // A:0 B:3 C:2
package pathcost
