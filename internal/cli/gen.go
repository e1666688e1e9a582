package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/pathcost/builder"
	"github.com/katalvlaran/pathcost/core"
	"github.com/katalvlaran/pathcost/graphfile"
	"github.com/katalvlaran/pathcost/internal/ctxlog"
)

func runGen(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet(e, "gen", "")
	n := fs.Int("n", 10, "Number of vertices.")
	density := fs.Float64("density", 0.2, "Probability of each possible edge, in [0,1].")
	wmin := fs.Float64("wmin", 1, "Minimum edge weight (inclusive).")
	wmax := fs.Float64("wmax", 10, "Maximum edge weight (exclusive).")
	seed := fs.Int64("seed", 1, "Random seed.")
	connected := fs.Bool("connected", false, "Give every isolated vertex one edge.")
	undirected := fs.Bool("undirected", false, "Generate an undirected graph.")
	out := fs.String("o", "", "Output file; the extension picks the format. Default: YAML on stdout.")
	if err := parseFlags(fs, args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		return usageError("gen: unexpected arguments %v", fs.Args())
	}
	if *wmin < 0 || *wmax < *wmin {
		return usageError("gen: need 0 ≤ wmin ≤ wmax, got %g and %g", *wmin, *wmax)
	}

	format := graphfile.FormatYAML
	if *out != "" {
		f, err := graphfile.FormatFromPath(*out)
		if err != nil {
			return usageError("%v", err)
		}
		format = f
	}

	var gopts []core.GraphOption
	if *undirected {
		gopts = append(gopts, core.WithUndirected())
	}
	cons := []builder.Constructor{builder.RandomSparse(*n, *density)}
	if *connected {
		cons = append(cons, builder.LinkIsolated())
	}
	g, err := builder.BuildGraph(gopts,
		[]builder.BuilderOption{builder.WithSeed(*seed), builder.WithWeightFn(builder.UniformWeightFn(*wmin, *wmax))},
		cons...)
	if err != nil {
		return &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	doc := graphfile.FromGraph(g, builder.DefaultIDFn(0))
	ctxlog.FromContext(ctx).Info("graph generated",
		slog.Int("vertices", g.VertexCount()),
		slog.Int("edges", g.EdgeCount()),
		slog.Int64("seed", *seed),
	)

	if *out == "" {
		return graphfile.Encode(e.stdout, doc, format)
	}

	return writeFile(*out, func(w io.Writer) error { return graphfile.Encode(w, doc, format) })
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
