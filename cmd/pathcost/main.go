package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/pathcost/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the CLI and converts its error into an exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	err := cli.Run(ctx, args, stdout, stderr)
	if err == nil {
		return 0
	}

	fmt.Fprintln(stderr, err)
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return cli.ExitFailure
}
