package dijkstra_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pathcost/bfs"
	"github.com/katalvlaran/pathcost/builder"
	"github.com/katalvlaran/pathcost/core"
	"github.com/katalvlaran/pathcost/dijkstra"
)

// fourCities is the symmetric road map used across the tests:
// A-B 5, A-C 2, B-C 1, B-D 3, C-D 7.
func fourCities(t testing.TB) *core.Graph {
	t.Helper()
	g, err := core.FromAdjacency(map[string][]core.Arc{
		"A": {{To: "B", Weight: 5}, {To: "C", Weight: 2}},
		"B": {{To: "A", Weight: 5}, {To: "C", Weight: 1}, {To: "D", Weight: 3}},
		"C": {{To: "A", Weight: 2}, {To: "B", Weight: 1}, {To: "D", Weight: 7}},
		"D": {{To: "B", Weight: 3}, {To: "C", Weight: 7}},
	})
	require.NoError(t, err)

	return g
}

func mustGraph(t testing.TB, adj map[string][]core.Arc) *core.Graph {
	t.Helper()
	g, err := core.FromAdjacency(adj)
	require.NoError(t, err)

	return g
}

func TestDijkstra_Validation(t *testing.T) {
	g := fourCities(t)

	_, err := dijkstra.Dijkstra(g)
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, err = dijkstra.ShortestPaths(nil, "A")
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	var typedNil *core.Graph
	_, err = dijkstra.ShortestPaths(typedNil, "A")
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.ShortestPaths(g, "Z")
	require.ErrorIs(t, err, dijkstra.ErrSourceNotFound)
	assert.Contains(t, err.Error(), `"Z"`)

	_, err = g.AddEdge("D", "A", -1)
	require.NoError(t, err)
	_, err = dijkstra.ShortestPaths(g, "A")
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestDijkstra_FourCities(t *testing.T) {
	dist, err := dijkstra.ShortestPaths(fourCities(t), "A")
	require.NoError(t, err)

	want := dijkstra.Distances{"A": 0, "B": 3, "C": 2, "D": 6}
	if diff := cmp.Diff(want, dist); diff != "" {
		t.Errorf("distances mismatch (-want +got):\n%s", diff)
	}
}

func TestDijkstra_EdgeCases(t *testing.T) {
	inf := dijkstra.Infinity
	tests := []struct {
		name  string
		adj   map[string][]core.Arc
		start string
		want  dijkstra.Distances
	}{
		{
			name:  "start without edges",
			adj:   map[string][]core.Arc{"A": nil, "B": {{To: "A", Weight: 1}}},
			start: "A",
			want:  dijkstra.Distances{"A": 0, "B": inf},
		},
		{
			name:  "self loop",
			adj:   map[string][]core.Arc{"A": {{To: "A", Weight: 4}, {To: "B", Weight: 1}}},
			start: "A",
			want:  dijkstra.Distances{"A": 0, "B": 1},
		},
		{
			name: "disconnected component",
			adj: map[string][]core.Arc{
				"A": {{To: "B", Weight: 2}},
				"X": {{To: "Y", Weight: 1}},
			},
			start: "A",
			want:  dijkstra.Distances{"A": 0, "B": 2, "X": inf, "Y": inf},
		},
		{
			name:  "parallel edges keep the cheapest",
			adj:   map[string][]core.Arc{"A": {{To: "B", Weight: 9}, {To: "B", Weight: 4}, {To: "B", Weight: 6}}},
			start: "A",
			want:  dijkstra.Distances{"A": 0, "B": 4},
		},
		{
			name: "zero weights",
			adj: map[string][]core.Arc{
				"A": {{To: "B", Weight: 0}},
				"B": {{To: "C", Weight: 0}},
			},
			start: "A",
			want:  dijkstra.Distances{"A": 0, "B": 0, "C": 0},
		},
		{
			name:  "target only vertex",
			adj:   map[string][]core.Arc{"A": {{To: "T", Weight: 3}}},
			start: "T",
			want:  dijkstra.Distances{"A": inf, "T": 0},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			dist, err := dijkstra.ShortestPaths(mustGraph(t, tc.adj), tc.start)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, dist); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDijkstra_Idempotent(t *testing.T) {
	g := fourCities(t)
	first, err := dijkstra.ShortestPaths(g, "D")
	require.NoError(t, err)
	second, err := dijkstra.ShortestPaths(g, "D")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// The result is a fresh map per call.
	first["A"] = -1
	assert.NotEqual(t, first["A"], second["A"])
}

// bellmanFord is the O(V·E) reference used to cross-check the engine.
func bellmanFord(g *core.Graph, src string) dijkstra.Distances {
	dist := dijkstra.Distances{}
	for _, v := range g.Vertices() {
		dist[v] = math.Inf(1)
	}
	dist[src] = 0
	edges := g.Edges()
	for i := 0; i < g.VertexCount(); i++ {
		changed := false
		for _, e := range edges {
			if d := dist[e.From] + e.Weight; d < dist[e.To] {
				dist[e.To] = d
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	return dist
}

// approxFloat treats equal infinities and near-equal finite sums as equal.
var approxFloat = cmp.Comparer(func(x, y float64) bool {
	return x == y || math.Abs(x-y) < 1e-9
})

func TestDijkstra_MatchesBellmanFord(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		for _, gopts := range [][]core.GraphOption{nil, {core.WithUndirected()}} {
			g, err := builder.BuildGraph(gopts,
				[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(0, 20))},
				builder.RandomSparse(15, 0.15))
			require.NoError(t, err)

			got, err := dijkstra.ShortestPaths(g, "0")
			require.NoError(t, err)
			want := bellmanFord(g, "0")
			if diff := cmp.Diff(want, got, approxFloat); diff != "" {
				t.Fatalf("seed %d: mismatch (-want +got):\n%s", seed, diff)
			}

			// Reachable by hops exactly when the distance is finite.
			res, err := bfs.BFS(g, "0")
			require.NoError(t, err)
			for id, d := range got {
				assert.Equal(t, res.Reached(id), !math.IsInf(d, 1), "seed %d vertex %s", seed, id)
			}
		}
	}
}

// enumerateMin walks every simple path from src and keeps the cheapest
// cost per endpoint. Exponential, so only for tiny graphs.
func enumerateMin(g *core.Graph, src string) dijkstra.Distances {
	best := dijkstra.Distances{}
	for _, v := range g.Vertices() {
		best[v] = math.Inf(1)
	}
	onPath := map[string]bool{}
	var walk func(u string, cost float64)
	walk = func(u string, cost float64) {
		if cost < best[u] {
			best[u] = cost
		}
		onPath[u] = true
		edges, _ := g.Neighbors(u)
		for _, e := range edges {
			if !onPath[e.To] {
				walk(e.To, cost+e.Weight)
			}
		}
		onPath[u] = false
	}
	walk(src, 0)

	return best
}

func TestDijkstra_MatchesPathEnumeration(t *testing.T) {
	for n := 1; n <= 6; n++ {
		for seed := int64(1); seed <= 10; seed++ {
			g, err := builder.BuildGraph(nil,
				[]builder.BuilderOption{builder.WithSeed(seed*10 + int64(n)), builder.WithWeightFn(builder.UniformWeightFn(0, 10))},
				builder.RandomSparse(n, 0.4))
			require.NoError(t, err)

			for _, src := range g.Vertices() {
				got, err := dijkstra.ShortestPaths(g, src)
				require.NoError(t, err)
				if diff := cmp.Diff(enumerateMin(g, src), got, approxFloat); diff != "" {
					t.Fatalf("n=%d seed=%d src=%s: mismatch (-want +got):\n%s", n, seed, src, diff)
				}
			}
		}
	}
}

func TestDijkstra_SettleOrderMonotone(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithWeightFn(builder.UniformWeightFn(1, 9))},
		builder.RandomSparse(30, 0.2))
	require.NoError(t, err)

	var order []float64
	seen := map[string]bool{}
	dist, err := dijkstra.Dijkstra(g, dijkstra.Source("0"), dijkstra.WithOnSettle(func(id string, d float64) {
		assert.False(t, seen[id], "vertex %s settled twice", id)
		seen[id] = true
		order = append(order, d)
	}))
	require.NoError(t, err)

	for i := 1; i < len(order); i++ {
		assert.LessOrEqual(t, order[i-1], order[i])
	}
	for id, d := range dist {
		assert.Equal(t, !math.IsInf(d, 1), seen[id], "vertex %s", id)
	}
}

func TestDijkstra_Stats(t *testing.T) {
	g := mustGraph(t, map[string][]core.Arc{
		"A": {{To: "B", Weight: 10}, {To: "C", Weight: 1}},
		"C": {{To: "B", Weight: 1}},
	})

	var st dijkstra.Stats
	dist, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithStats(&st))
	require.NoError(t, err)
	assert.Equal(t, 2.0, dist["B"])
	assert.Equal(t, dijkstra.Stats{Pops: 4, StaleSkips: 1, Settled: 3, Relaxations: 3, Pushes: 4}, st)

	// Reusing st reports the second run alone.
	_, err = dijkstra.Dijkstra(g, dijkstra.Source("B"), dijkstra.WithStats(&st))
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Stats{Pops: 1, Settled: 1, Pushes: 1}, st)
}

func TestDijkstra_Caps(t *testing.T) {
	inf := dijkstra.Infinity

	dist, err := dijkstra.Dijkstra(fourCities(t), dijkstra.Source("A"), dijkstra.WithMaxDistance(3))
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Distances{"A": 0, "B": 3, "C": 2, "D": inf}, dist)

	dist, err = dijkstra.Dijkstra(fourCities(t), dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(3))
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Distances{"A": 0, "B": 3, "C": 2, "D": inf}, dist)

	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() { dijkstra.WithMaxDistance(-1) })
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() { dijkstra.WithMaxDistance(math.NaN()) })
	assert.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() { dijkstra.WithInfEdgeThreshold(0) })
}

func TestDijkstra_WithoutWeightCheck(t *testing.T) {
	g := mustGraph(t, map[string][]core.Arc{
		"A": {{To: "B", Weight: 1}, {To: "C", Weight: 5}},
		"C": {{To: "B", Weight: -10}},
	})

	_, err := dijkstra.ShortestPaths(g, "A")
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)

	dist, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithoutWeightCheck())
	require.NoError(t, err)
	assert.Equal(t, -5.0, dist["B"])
}

func TestDijkstra_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := dijkstra.Dijkstra(fourCities(t), dijkstra.Source("A"), dijkstra.WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, 4, strings.Count(out, `msg="dijkstra: settled"`))
	assert.Contains(t, out, `msg="dijkstra: done"`)
	assert.Contains(t, out, "source=A")
}

func TestDijkstra_ConcurrentReaders(t *testing.T) {
	g := fourCities(t)
	want := dijkstra.Distances{"A": 0, "B": 3, "C": 2, "D": 6}

	var eg errgroup.Group
	for i := 0; i < 16; i++ {
		eg.Go(func() error {
			dist, err := dijkstra.ShortestPaths(g, "A")
			if err != nil {
				return err
			}
			if !cmp.Equal(want, dist) {
				return fmt.Errorf("unexpected distances %v", dist)
			}
			return nil
		})
	}
	require.NoError(t, eg.Wait())
}

// stubGraph lets tests feed the engine what core.Graph never produces.
type stubGraph struct {
	vertices []string
	adj      map[string][]*core.Edge
	fail     string
}

var errStub = errors.New("stub failure")

func (s stubGraph) Vertices() []string { return s.vertices }

func (s stubGraph) HasVertex(id string) bool {
	for _, v := range s.vertices {
		if v == id {
			return true
		}
	}
	return false
}

func (s stubGraph) Neighbors(id string) ([]*core.Edge, error) {
	if id == s.fail {
		return nil, errStub
	}
	return s.adj[id], nil
}

func TestDijkstra_StubGraph(t *testing.T) {
	missing := stubGraph{
		vertices: []string{"A"},
		adj:      map[string][]*core.Edge{"A": {{From: "A", To: "ghost", Weight: 2}}},
	}
	dist, err := dijkstra.ShortestPaths(missing, "A")
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Distances{"A": 0, "ghost": 2}, dist)

	failing := stubGraph{
		vertices: []string{"A", "B"},
		adj:      map[string][]*core.Edge{"A": {{From: "A", To: "B", Weight: 1}}},
		fail:     "B",
	}
	_, err = dijkstra.ShortestPaths(failing, "A")
	require.ErrorIs(t, err, errStub)

	_, err = dijkstra.Dijkstra(failing, dijkstra.Source("A"), dijkstra.WithoutWeightCheck())
	require.ErrorIs(t, err, errStub)
}

func TestDistances_Helpers(t *testing.T) {
	d := dijkstra.Distances{"b": 1, "a": 0, "c": dijkstra.Infinity}
	assert.Equal(t, []string{"a", "b", "c"}, d.IDs())
	assert.Equal(t, []string{"c"}, d.Unreachable())
	assert.True(t, d.Reachable("a"))
	assert.False(t, d.Reachable("c"))
	assert.False(t, d.Reachable("zz"))
}

func BenchmarkShortestPaths_RandomSparse(b *testing.B) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 100))},
		builder.RandomSparse(2000, 0.003), builder.LinkIsolated())
	require.NoError(b, err)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.ShortestPaths(g, "0")
	}
}
