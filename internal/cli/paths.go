package cli

import (
	"context"
	"errors"
	"flag"
	"log/slog"

	"github.com/katalvlaran/pathcost/dijkstra"
	"github.com/katalvlaran/pathcost/graphfile"
	"github.com/katalvlaran/pathcost/internal/ctxlog"
	"github.com/katalvlaran/pathcost/report"
)

func runPaths(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet(e, "paths", "FILE")
	source := fs.String("source", "", "Start vertex (defaults to the document's source).")
	format := fs.String("format", string(report.FormatText), "Output format: text or json.")
	maxDist := fs.Float64("max-distance", -1, "Leave vertices farther than this unreachable; negative means no limit.")
	if err := parseFlags(fs, args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	path, err := fileArg(fs)
	if err != nil {
		return err
	}
	outFormat, err := report.ParseFormat(*format)
	if err != nil {
		return usageError("%v", err)
	}

	logger := ctxlog.FromContext(ctx)
	doc, err := loadDocument(path)
	if err != nil {
		return err
	}

	src := *source
	if src == "" {
		src = doc.Source
	}
	if src == "" {
		return usageError("paths: no source given and %s has none", path)
	}

	g, err := doc.Graph()
	if err != nil {
		return err
	}

	opts := []dijkstra.Option{dijkstra.Source(src), dijkstra.WithLogger(logger)}
	if *maxDist >= 0 {
		opts = append(opts, dijkstra.WithMaxDistance(*maxDist))
	}
	dist, err := dijkstra.Dijkstra(g, opts...)
	if err != nil {
		return err
	}
	logger.Info("distances computed",
		slog.String("source", src),
		slog.Int("vertices", len(dist)),
		slog.Int("unreachable", len(dist.Unreachable())),
	)

	return report.WriteDistances(e.stdout, src, dist, outFormat)
}

// loadDocument reads and validates a graph file.
func loadDocument(path string) (*graphfile.Document, error) {
	doc, err := graphfile.Load(path)
	if err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return doc, nil
}
