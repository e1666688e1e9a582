package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/pathcost/internal/config"
	"github.com/katalvlaran/pathcost/internal/ctxlog"
	"github.com/katalvlaran/pathcost/internal/logging"
)

// Exit codes.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError carries the process exit code for an error.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) error {
	return &ExitError{Code: ExitUsage, Message: fmt.Sprintf(format, args...)}
}

// env bundles what every subcommand needs.
type env struct {
	cfg    *config.Config
	stdout io.Writer
	stderr io.Writer
}

type command struct {
	summary string
	run     func(ctx context.Context, e *env, args []string) error
}

var commands = map[string]command{
	"paths":   {"compute shortest distances from a source", runPaths},
	"gen":     {"generate a random graph document", runGen},
	"inspect": {"print a graph's adjacency and reachability", runInspect},
	"serve":   {"run the HTTP API", runServe},
}

var commandOrder = []string{"paths", "gen", "inspect", "serve"}

// Run executes one invocation. Logs go to stderr, results to stdout.
// A nil error means success, including when help was requested.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	fs := flag.NewFlagSet("pathcost", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr, fs) }
	logLevel := fs.String("log-level", cfg.LogLevel, "Logging level: debug, info, warn or error.")
	logFormat := fs.String("log-format", cfg.LogFormat, "Log output format: text or json.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	logger, err := logging.New(*logLevel, *logFormat, stderr)
	if err != nil {
		return &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	cfg.LogLevel, cfg.LogFormat = strings.ToLower(*logLevel), strings.ToLower(*logFormat)

	if fs.NArg() == 0 {
		fs.Usage()
		return usageError("missing command")
	}
	name := fs.Arg(0)
	cmd, ok := commands[name]
	if !ok {
		fs.Usage()
		return usageError("unknown command %q", name)
	}

	logger = logger.With(slog.String("run_id", uuid.NewString()), slog.String("command", name))
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("command starting", slog.Any("args", fs.Args()[1:]))

	err = cmd.run(ctx, &env{cfg: cfg, stdout: stdout, stderr: stderr}, fs.Args()[1:])
	var exitErr *ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return &ExitError{Code: ExitFailure, Message: err.Error()}
	}

	return err
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprint(w, `
pathcost - single-source shortest paths over weighted graphs.

Usage:
  pathcost [global options] <command> [command options]

Commands:
`)
	for _, name := range commandOrder {
		fmt.Fprintf(w, "  %-8s %s\n", name, commands[name].summary)
	}
	fmt.Fprint(w, "\nGlobal options:\n")
	fs.PrintDefaults()
}

// newFlagSet returns a subcommand flag set that writes help to e.stderr.
func newFlagSet(e *env, name, args string) *flag.FlagSet {
	fs := flag.NewFlagSet("pathcost "+name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	fs.Usage = func() {
		fmt.Fprintf(e.stderr, "Usage: pathcost %s [options] %s\n\nOptions:\n", name, args)
		fs.PrintDefaults()
	}

	return fs
}

// parseFlags parses args and converts flag errors into usage ExitErrors.
// errHelp is returned untouched so callers can exit cleanly.
func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	return nil
}

// fileArg returns the single positional FILE argument.
func fileArg(fs *flag.FlagSet) (string, error) {
	if fs.NArg() != 1 {
		fs.Usage()
		return "", usageError("%s: expected exactly one FILE argument, got %d", fs.Name(), fs.NArg())
	}

	return fs.Arg(0), nil
}
