// File: types.go
// Role: Vertex, Edge, Arc, Graph, GraphOption, sentinel errors and the NewGraph constructor.
// Concurrency:
//   - muVert guards vertices; muEdgeAdj guards edges and the outgoing lists.
//   - Lock order is always muVert -> muEdgeAdj.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates an edge weight that cannot take part in arithmetic (NaN).
	ErrBadWeight = errors.New("core: edge weight is NaN")
)

// Vertex represents a node in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string
}

// Edge is a directed, weighted connection From → To.
//
// In an undirected graph every AddEdge stores two Edge values, one per
// direction, each with its own ID.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	// From is the source vertex ID; the edge belongs to From's outgoing list.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost of traversing the edge.
	Weight float64
}

// Arc is one (target, weight) pair of an adjacency mapping.
type Arc struct {
	To     string  `json:"to" yaml:"to"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithUndirected makes AddEdge store the reverse edge as well.
func WithUndirected() GraphOption {
	return func(g *Graph) { g.undirected = true }
}

// Graph is the in-memory adjacency structure.
//
// outgoing[id] holds the edges leaving id in insertion order, which is also
// edge-ID order because IDs come from a monotonic counter.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and outgoing

	undirected bool // mirror edges on insertion

	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge
	outgoing   map[string][]*Edge // vertex ID → outgoing edges
}

// NewGraph creates an empty directed Graph and applies opts in order.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
		edges:    make(map[string]*Edge),
		outgoing: make(map[string][]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Undirected reports whether AddEdge mirrors edges.
func (g *Graph) Undirected() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.undirected
}
