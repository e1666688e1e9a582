// Package report renders shortest-distance results and adjacency listings
// for terminals and for machines.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/pathcost/core"
	"github.com/katalvlaran/pathcost/dijkstra"
)

// ErrUnknownFormat indicates an output format name report cannot render.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format selects the rendering of WriteDistances.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat accepts "text" or "json" (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// DistanceReport is the machine-readable form of one run. JSON has no
// infinity, so unreachable vertices are listed separately and left out of
// Distances.
type DistanceReport struct {
	Source      string             `json:"source"`
	Distances   map[string]float64 `json:"distances"`
	Unreachable []string           `json:"unreachable"`
}

// NewDistanceReport splits dist into finite distances and unreachable IDs.
func NewDistanceReport(source string, dist dijkstra.Distances) DistanceReport {
	r := DistanceReport{
		Source:      source,
		Distances:   make(map[string]float64, len(dist)),
		Unreachable: []string{},
	}
	for _, id := range dist.IDs() {
		if d := dist[id]; math.IsInf(d, 1) {
			r.Unreachable = append(r.Unreachable, id)
		} else {
			r.Distances[id] = d
		}
	}

	return r
}

// WriteDistances renders dist in the requested format.
//
// Text output is a two-column table sorted by vertex ID, "inf" for
// unreachable vertices, followed by a summary line.
func WriteDistances(w io.Writer, source string, dist dijkstra.Distances, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(NewDistanceReport(source, dist))
	case FormatText:
		return writeDistanceTable(w, source, dist)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

func writeDistanceTable(w io.Writer, source string, dist dijkstra.Distances) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "VERTEX\tDISTANCE")

	reachable := 0
	for _, id := range dist.IDs() {
		if dist.Reachable(id) {
			reachable++
		}
		fmt.Fprintf(tw, "%s\t%s\n", id, FormatWeight(dist[id]))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "%d of %d vertices reachable from %s\n", reachable, len(dist), source)

	return err
}

// WriteAdjacency prints one line per vertex in sorted order:
//
//	A: (B, 5) (C, 2)
func WriteAdjacency(w io.Writer, g *core.Graph) error {
	for _, id := range g.Vertices() {
		edges, err := g.Neighbors(id)
		if err != nil {
			return err
		}

		var sb strings.Builder
		sb.WriteString(id)
		sb.WriteByte(':')
		for _, e := range edges {
			fmt.Fprintf(&sb, " (%s, %s)", e.To, FormatWeight(e.Weight))
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}

	return nil
}

// FormatWeight renders a distance or weight compactly; +Inf becomes "inf".
func FormatWeight(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}
