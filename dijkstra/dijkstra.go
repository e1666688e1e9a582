package dijkstra

import (
	"container/heap"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/pathcost/core"
)

// ShortestPaths returns the shortest distance from start to every vertex of g,
// with Infinity for vertices start cannot reach.
//
// Errors: ErrNilGraph, ErrEmptySource, ErrSourceNotFound, ErrNegativeWeight.
func ShortestPaths(g Graph, start string) (Distances, error) {
	return Dijkstra(g, Source(start))
}

// Dijkstra computes shortest distances from Options.Source to all vertices of g.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrSourceNotFound).
//  4. No edge may have a negative weight (ErrNegativeWeight), unless WithoutWeightCheck.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g Graph, opts ...Option) (Distances, error) {
	// 1) Build options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if isNilGraph(g) {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, cfg.Source)
	}

	vertices := g.Vertices()

	// 3) Pre-scan all edges to detect negative weights. Fail fast.
	if cfg.CheckWeights {
		if err := checkWeights(g, vertices); err != nil {
			return nil, err
		}
	}

	// 4) Run
	r := &runner{
		g:     g,
		cfg:   cfg,
		dist:  make(Distances, len(vertices)),
		pq:    make(frontier, 0, len(vertices)),
		stats: cfg.Stats,
	}
	if r.stats == nil {
		r.stats = &Stats{}
	}
	*r.stats = Stats{}
	r.init(vertices)
	if err := r.process(); err != nil {
		return nil, err
	}

	if cfg.Logger != nil {
		cfg.Logger.Debug("dijkstra: done",
			slog.String("source", cfg.Source),
			slog.Int("vertices", len(vertices)),
			slog.Int("settled", r.stats.Settled),
			slog.Int("stale_skips", r.stats.StaleSkips),
			slog.Int("pushes", r.stats.Pushes),
		)
	}

	return r.dist, nil
}

// isNilGraph catches both a nil interface and a typed nil *core.Graph.
func isNilGraph(g Graph) bool {
	if g == nil {
		return true
	}
	cg, ok := g.(*core.Graph)

	return ok && cg == nil
}

// checkWeights scans every outgoing list once. O(V + E).
func checkWeights(g Graph, vertices []string) error {
	for _, u := range vertices {
		edges, err := g.Neighbors(u)
		if err != nil {
			return fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
		}
		for _, e := range edges {
			if e.Weight < 0 {
				return fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
			}
		}
	}

	return nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g     Graph
	cfg   Options
	dist  Distances
	pq    frontier
	stats *Stats
}

// init sets every distance to Infinity, the source to 0, and seeds the frontier.
func (r *runner) init(vertices []string) {
	for _, v := range vertices {
		r.dist[v] = Infinity
	}
	r.dist[r.cfg.Source] = 0

	heap.Init(&r.pq)
	r.push(r.cfg.Source, 0)
}

// process pops entries until the frontier is empty (or the cap is passed),
// discarding stale entries and relaxing the rest.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(entry)
		r.stats.Pops++

		// A cheaper distance was recorded after this entry was pushed.
		if item.dist > r.dist[item.id] {
			r.stats.StaleSkips++
			continue
		}

		// Everything left in the heap is at least this far away.
		if item.dist > r.cfg.MaxDistance {
			break
		}

		r.stats.Settled++
		if r.cfg.Logger != nil {
			r.cfg.Logger.Debug("dijkstra: settled",
				slog.String("vertex", item.id),
				slog.Float64("dist", item.dist),
				slog.Int("frontier", r.pq.Len()),
			)
		}
		if r.cfg.OnSettle != nil {
			r.cfg.OnSettle(item.id, item.dist)
		}

		if err := r.relax(item.id, item.dist); err != nil {
			return err
		}
	}

	return nil
}

// relax tries every outgoing edge of u; d is u's distance at pop time.
func (r *runner) relax(u string, d float64) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	var cand, cur float64
	var ok bool
	for _, e := range edges {
		if e.Weight >= r.cfg.InfEdgeThreshold {
			continue
		}

		cand = d + e.Weight
		if cand > r.cfg.MaxDistance {
			continue
		}

		// Targets missing from the initial vertex list count as Infinity.
		cur, ok = r.dist[e.To]
		if !ok {
			cur = Infinity
		}
		if cand >= cur {
			continue
		}

		r.dist[e.To] = cand
		r.stats.Relaxations++
		r.push(e.To, cand)
	}

	return nil
}

func (r *runner) push(id string, d float64) {
	heap.Push(&r.pq, entry{id: id, dist: d})
	r.stats.Pushes++
}
