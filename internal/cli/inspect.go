package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/katalvlaran/pathcost/bfs"
	"github.com/katalvlaran/pathcost/report"
)

func runInspect(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet(e, "inspect", "FILE")
	from := fs.String("from", "", "Also list the vertices reachable from this vertex, by hop count.")
	maxHops := fs.Int("max-hops", 0, "With -from, stop after this many hops (0 means no limit).")
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

	doc, err := loadDocument(path)
	if err != nil {
		return err
	}
	g, err := doc.Graph()
	if err != nil {
		return err
	}

	fmt.Fprintf(e.stdout, "%d vertices, %d edges\n", g.VertexCount(), g.EdgeCount())
	if err := report.WriteAdjacency(e.stdout, g); err != nil {
		return err
	}
	if *from == "" {
		return nil
	}

	res, err := bfs.BFS(g, *from, bfs.WithContext(ctx), bfs.WithMaxDepth(*maxHops))
	if err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "\nreachable from %s: %d of %d\n", *from, len(res.Order), g.VertexCount())
	for _, id := range res.Order {
		fmt.Fprintf(e.stdout, "  %s\t%d hops\n", id, res.Depth[id])
	}

	return nil
}
