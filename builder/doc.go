// Package builder generates graphs for tests, benchmarks and the `gen` command.
//
// One orchestrator, BuildGraph(gopts, bopts, cons...), creates a core.Graph,
// resolves a builderConfig from functional options, and applies constructors
// in order:
//
//	g, err := builder.BuildGraph(
//	    nil,
//	    []builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 10))},
//	    builder.RandomSparse(50, 0.1),
//	    builder.LinkIsolated(),
//	)
//
// Constructors:
//
//   - RandomSparse(n, p): one Bernoulli(p) trial per ordered pair (i≠j), or per
//     unordered pair {i,j} when the graph is undirected.
//   - LinkIsolated(): every vertex with no incident edge gets one edge to a
//     uniformly chosen other vertex.
//   - Path(n): 0→1→…→n-1.
//   - Complete(n): every ordered pair (or unordered pair when undirected).
//
// Determinism: the same seed, options and constructor order always produce the
// same graph. Constructors return sentinel errors (wrapped with the method
// name); option constructors panic on meaningless arguments.
package builder
