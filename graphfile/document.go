package graphfile

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/pathcost/core"
)

var (
	// ErrUnknownFormat indicates a file extension or format name graphfile cannot handle.
	ErrUnknownFormat = errors.New("graphfile: unknown format")

	// ErrInvalidDocument wraps the aggregated problems found by Validate.
	ErrInvalidDocument = errors.New("graphfile: invalid document")
)

// Document is the decoded form of a graph file.
type Document struct {
	// Source is the default start vertex; optional.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	// Directed is false when every arc should also be stored reversed.
	Directed bool `json:"directed" yaml:"directed"`

	// Nodes maps each vertex ID to its outgoing arcs.
	Nodes map[string][]core.Arc `json:"nodes" yaml:"nodes"`
}

// NodeIDs returns the keys of Nodes, sorted.
func (d *Document) NodeIDs() []string {
	ids := make([]string, 0, len(d.Nodes))
	for id := range d.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Validate reports every problem in the document at once: empty IDs,
// NaN or negative weights, and a Source that names no vertex.
// The returned error wraps ErrInvalidDocument and a *multierror.Error.
func (d *Document) Validate() error {
	var merr *multierror.Error

	known := make(map[string]bool, len(d.Nodes))
	for _, id := range d.NodeIDs() {
		if id == "" {
			merr = multierror.Append(merr, errors.New("node with empty ID"))
			continue
		}
		known[id] = true
		for i, a := range d.Nodes[id] {
			switch {
			case a.To == "":
				merr = multierror.Append(merr, fmt.Errorf("node %q arc %d: empty target", id, i))
			case math.IsNaN(a.Weight):
				merr = multierror.Append(merr, fmt.Errorf("node %q arc %d → %q: weight is NaN", id, i, a.To))
			case a.Weight < 0:
				merr = multierror.Append(merr, fmt.Errorf("node %q arc %d → %q: negative weight %g", id, i, a.To, a.Weight))
			}
			if a.To != "" {
				known[a.To] = true
			}
		}
	}
	if d.Source != "" && !known[d.Source] {
		merr = multierror.Append(merr, fmt.Errorf("source %q is not a vertex", d.Source))
	}

	if err := merr.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	return nil
}

// Graph builds a core.Graph from the document. Undirected documents store
// every arc in both directions.
func (d *Document) Graph() (*core.Graph, error) {
	var opts []core.GraphOption
	if !d.Directed {
		opts = append(opts, core.WithUndirected())
	}

	return core.FromAdjacency(d.Nodes, opts...)
}

// FromGraph exports g as a directed document listing every stored edge.
// Reloading it reproduces the same edge set even when g is undirected,
// because mirrored edges are exported explicitly.
func FromGraph(g *core.Graph, source string) *Document {
	return &Document{
		Source:   source,
		Directed: true,
		Nodes:    g.Adjacency(),
	}
}
