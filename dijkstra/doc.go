// Package dijkstra computes single-source shortest-path distances on graphs
// with non-negative edge weights.
//
// Overview:
//
//   - Every vertex starts at Infinity, the source at 0.
//   - A binary min-heap frontier of (distance, vertex) entries always yields the
//     closest unsettled candidate; ties are broken by vertex ID ascending so runs
//     are reproducible.
//   - Relaxation is strict: a neighbor is updated (and a new frontier entry
//     pushed) only when the candidate distance is strictly smaller.
//   - Old entries are never updated in place. When an entry whose distance is
//     larger than the recorded distance reaches the top of the heap it is a
//     stale duplicate and is discarded ("lazy decrease-key").
//
// The result is a Distances map with one entry per vertex of the graph;
// unreachable vertices keep the Infinity sentinel (math.Inf(1)).
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V). One heap push per successful relaxation, one pop
//     per pushed entry, each O(log N) with N ≤ E + 1.
//   - Space: O(V + E): the distance map plus up to E+1 frontier entries.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:     no Source option was given.
//   - ErrNilGraph:        the graph is nil.
//   - ErrSourceNotFound:  the source is not a vertex of the graph.
//   - ErrNegativeWeight:  an O(V+E) pre-scan found a negative edge weight.
//     WithoutWeightCheck disables the scan; results through negative edges
//     are then unspecified and a negative cycle prevents termination.
//   - ErrBadMaxDistance / ErrBadInfThreshold: raised as panics by the option
//     constructors on invalid arguments.
//
// API reference:
//
//	func ShortestPaths(g Graph, start string) (Distances, error)
//	func Dijkstra(g Graph, opts ...Option) (Distances, error)
//
//	  Options:
//	      • Source(string):               required by Dijkstra, the starting vertex ID.
//	      • WithMaxDistance(float64):     settle only vertices with distance ≤ the cap.
//	      • WithInfEdgeThreshold(float64): skip edges whose weight ≥ threshold.
//	      • WithLogger(*slog.Logger):     debug record per settled vertex.
//	      • WithOnSettle(func):           callback per settled vertex.
//	      • WithStats(*Stats):            counters for pops, stale skips, relaxations, pushes.
//	      • WithoutWeightCheck():         skip the negative-weight pre-scan.
//
// Thread safety:
//
//   - Each call owns its distance map and frontier. Concurrent calls over the
//     same graph are safe as long as nobody mutates the graph meanwhile.
package dijkstra
