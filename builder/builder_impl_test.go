// Package builder_test covers topology, counts, determinism and error
// contracts of the builder constructors.
package builder_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathcost/builder"
	"github.com/katalvlaran/pathcost/core"
)

// edgeKey identifies an edge by its endpoints.
type edgeKey struct{ U, V string }

// edgeWeights maps every stored edge to its weight.
func edgeWeights(g *core.Graph) map[edgeKey]float64 {
	m := make(map[edgeKey]float64)
	for _, e := range g.Edges() {
		m[edgeKey{U: e.From, V: e.To}] = e.Weight
	}

	return m
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		gopts       []core.GraphOption
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name:  "Path(4)",
			ctor:  builder.Path(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				edges := edgeWeights(g)
				for i := 0; i < 3; i++ {
					from, to := fmt.Sprint(i), fmt.Sprint(i+1)
					w, ok := edges[edgeKey{from, to}]
					assert.True(t, ok, "missing %s→%s", from, to)
					assert.Equal(t, builder.DefaultEdgeWeight, w)
				}
			},
		},
		{
			name:  "Path(3) undirected",
			gopts: []core.GraphOption{core.WithUndirected()},
			ctor:  builder.Path(3),
			wantV: 3, wantE: 4,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				edges := edgeWeights(g)
				assert.Contains(t, edges, edgeKey{"1", "0"})
				assert.Contains(t, edges, edgeKey{"2", "1"})
			},
		},
		{
			name:  "Complete(4) directed",
			ctor:  builder.Complete(4),
			wantV: 4, wantE: 12,
		},
		{
			name:  "Complete(4) undirected",
			gopts: []core.GraphOption{core.WithUndirected()},
			ctor:  builder.Complete(4),
			wantV: 4, wantE: 12,
		},
		{
			name:  "Complete(1)",
			ctor:  builder.Complete(1),
			wantV: 1, wantE: 0,
		},
		{
			name:  "RandomSparse(5, 0)",
			ctor:  builder.RandomSparse(5, 0),
			wantV: 5, wantE: 0,
		},
		{
			name:  "RandomSparse(5, 1)",
			ctor:  builder.RandomSparse(5, 1),
			wantV: 5, wantE: 20,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(tc.gopts, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		bopts []builder.BuilderOption
		cons  []builder.Constructor
		want  error
	}{
		{"Path(1)", nil, []builder.Constructor{builder.Path(1)}, builder.ErrTooFewVertices},
		{"Complete(0)", nil, []builder.Constructor{builder.Complete(0)}, builder.ErrTooFewVertices},
		{"RandomSparse(0,.5)", nil, []builder.Constructor{builder.RandomSparse(0, 0.5)}, builder.ErrTooFewVertices},
		{"RandomSparse p<0", nil, []builder.Constructor{builder.RandomSparse(3, -0.1)}, builder.ErrInvalidProbability},
		{"RandomSparse p>1", nil, []builder.Constructor{builder.RandomSparse(3, 1.5)}, builder.ErrInvalidProbability},
		{"RandomSparse no rng", nil, []builder.Constructor{builder.RandomSparse(3, 0.5)}, builder.ErrNeedRandSource},
		{"LinkIsolated empty", []builder.BuilderOption{builder.WithSeed(1)}, []builder.Constructor{builder.LinkIsolated()}, builder.ErrTooFewVertices},
		{"LinkIsolated no rng", nil, []builder.Constructor{builder.RandomSparse(3, 0), builder.LinkIsolated()}, builder.ErrNeedRandSource},
		{"nil constructor", nil, []builder.Constructor{nil}, builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.bopts, tc.cons...)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	t.Parallel()

	build := func() *core.Graph {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 10))},
			builder.RandomSparse(12, 0.3))
		require.NoError(t, err)
		return g
	}

	assert.Equal(t, edgeWeights(build()), edgeWeights(build()))
}

func TestLinkIsolated_LeavesNoIsolatedVertex(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 20; seed++ {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomSparse(10, 0.05), builder.LinkIsolated())
		require.NoError(t, err)

		degree := make(map[string]int)
		for _, e := range g.Edges() {
			assert.NotEqual(t, e.From, e.To, "LinkIsolated must not add self-loops")
			degree[e.From]++
			degree[e.To]++
		}
		for _, id := range g.Vertices() {
			assert.Positive(t, degree[id], "seed %d: vertex %s isolated", seed, id)
		}
	}
}

func TestWithIDScheme_Excel(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithIDScheme(builder.ExcelColumnIDFn)},
		builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
}

func TestOptions_PanicOnNil(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
}
