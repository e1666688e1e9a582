package dijkstra

import (
	"errors"
	"log/slog"
	"math"
	"sort"

	"github.com/katalvlaran/pathcost/core"
)

// Infinity is the distance recorded for vertices the source cannot reach.
var Infinity = math.Inf(1)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceNotFound indicates that the start vertex does not exist in the graph.
	ErrSourceNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat every edge as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Graph is the read-only capability the engine needs. *core.Graph implements it.
type Graph interface {
	// Vertices returns every vertex ID.
	Vertices() []string

	// HasVertex reports whether id is a vertex.
	HasVertex(id string) bool

	// Neighbors returns the outgoing edges of id.
	Neighbors(id string) ([]*core.Edge, error)
}

// Distances maps every vertex known at initialization to its shortest distance
// from the source, or Infinity when it is unreachable.
type Distances map[string]float64

// Reachable reports whether id is present with a finite distance.
func (d Distances) Reachable(id string) bool {
	v, ok := d[id]

	return ok && !math.IsInf(v, 1)
}

// IDs returns all vertex IDs in the map, sorted ascending.
func (d Distances) IDs() []string {
	ids := make([]string, 0, len(d))
	for id := range d {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Unreachable returns the sorted IDs whose distance is Infinity.
func (d Distances) Unreachable() []string {
	var ids []string
	for id, v := range d {
		if math.IsInf(v, 1) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	return ids
}

// Stats counts frontier activity of one run.
type Stats struct {
	Pops        int // entries removed from the frontier
	StaleSkips  int // popped entries discarded because a cheaper distance was recorded
	Settled     int // popped entries that were processed
	Relaxations int // successful strict improvements of a neighbor's distance
	Pushes      int // entries inserted into the frontier (Relaxations + 1 for the source)
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex ID (must be non-empty and present in the graph).
// MaxDistance      – vertices farther than this are not settled. Default +Inf.
// InfEdgeThreshold – edges with weight ≥ this are impassable. Default +Inf.
// CheckWeights     – run the negative-weight pre-scan. Default true.
type Options struct {
	Source           string
	MaxDistance      float64
	InfEdgeThreshold float64
	CheckWeights     bool
	Logger           *slog.Logger
	OnSettle         func(id string, dist float64)
	Stats            *Stats
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithMaxDistance caps exploration: vertices whose distance would exceed max
// keep Infinity. Panics with ErrBadMaxDistance if max < 0.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as impassable.
// Panics with ErrBadInfThreshold if threshold ≤ 0.
func WithInfEdgeThreshold(threshold float64) Option {
	if threshold <= 0 || math.IsNaN(threshold) {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithLogger emits one debug record per settled vertex and a summary record.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOnSettle registers fn to be called each time a vertex is settled,
// in settlement order, with its final distance.
func WithOnSettle(fn func(id string, dist float64)) Option {
	return func(o *Options) {
		o.OnSettle = fn
	}
}

// WithStats makes the run record its frontier counters into s. A run that
// passes validation zeroes *s first, so a reused Stats holds only the latest
// run.
func WithStats(s *Stats) Option {
	return func(o *Options) {
		o.Stats = s
	}
}

// WithoutWeightCheck skips the negative-weight pre-scan. Distances through
// negative edges are then unspecified, and a negative cycle reachable from the
// source makes the run loop forever.
func WithoutWeightCheck() Option {
	return func(o *Options) {
		o.CheckWeights = false
	}
}

// DefaultOptions returns Options for source with no caps and weight checking on.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
		CheckWeights:     true,
	}
}
