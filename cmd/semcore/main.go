// Command semcore is a batch command-line analyzer over the semantic
// engine: it loads a set of SysML/KerML files (or a directory tree of
// them), populates a workspace, and prints every resulting diagnostic.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/sysml-tools/semcore/diag"
	"github.com/sysml-tools/semcore/location"
	"github.com/sysml-tools/semcore/workspace"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the testable entry point: it parses args, analyzes the
// discovered files, prints diagnostics to stdout, and returns the process
// exit code (1 if any Error- or Fatal-severity diagnostic was produced, 2
// on a usage/IO failure, 0 otherwise).
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("semcore", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		logLevel = fs.String("log-level", "warn", "log level: error|warn|info|debug")
		logFile  = fs.String("log-file", "", "log file path (empty to log to stderr)")
		showVer  = fs.Bool("version", false, "print version and exit")
	)

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: semcore [options] <file-or-directory>...\n\n")
		fmt.Fprintf(stderr, "Analyzes SysML/KerML files and prints diagnostics.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.SetOutput(stderr)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fs.Usage()
		return 2
	}

	if *showVer {
		fmt.Fprintf(stdout, "semcore %s\n", version)
		return 0
	}

	paths := fs.Args()
	if len(paths) == 0 {
		fs.Usage()
		return 2
	}

	logger, cleanup, err := setupLogger(*logLevel, *logFile, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "semcore: %v\n", err)
		return 2
	}
	defer cleanup()

	files, err := discoverFiles(paths)
	if err != nil {
		fmt.Fprintf(stderr, "semcore: %v\n", err)
		return 2
	}
	if len(files) == 0 {
		fmt.Fprintln(stderr, "semcore: no .sysml or .kerml files found")
		return 2
	}

	parse, ok := registeredParseFunc()
	if !ok {
		fmt.Fprintln(stderr, "semcore: no parser registered; link a grammar package that calls RegisterParseFunc in its init")
		return 2
	}

	result, err := analyze(files, parse, logger)
	if err != nil {
		fmt.Fprintf(stderr, "semcore: %v\n", err)
		return 2
	}

	renderer := diag.NewRenderer()
	fmt.Fprint(stdout, renderer.FormatResult(result))

	if result.HasErrors() {
		return 1
	}
	return 0
}

// analyze reads every file in paths, registers its content, parses it,
// adds it to a fresh workspace, and populates the whole set, returning
// the accumulated diagnostics.
func analyze(paths []string, parse ParseFunc, logger *slog.Logger) (diag.Result, error) {
	ws := workspace.New()
	registry := location.NewRegistry()

	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return diag.Result{}, fmt.Errorf("read %q: %w", path, err)
		}

		sourceID, err := location.SourceIDFromPath(path)
		if err != nil {
			return diag.Result{}, fmt.Errorf("resolve path %q: %w", path, err)
		}

		if err := registry.Register(sourceID, content); err != nil {
			logger.Warn("register source failed", slog.String("path", path), slog.String("error", err.Error()))
			continue
		}

		parsed := parse(sourceID, string(content), registry)
		file, hasContent := parsed.Content()
		if !hasContent {
			logger.Warn("parse produced no content", slog.String("path", path))
			continue
		}
		if err := ws.AddFile(sourceID, file); err != nil {
			logger.Warn("add file failed", slog.String("path", path), slog.String("error", err.Error()))
		}
	}

	if err := ws.PopulateAll(); err != nil {
		return diag.Result{}, fmt.Errorf("populate workspace: %w", err)
	}

	return ws.Diagnostics(), nil
}

func setupLogger(level, logFile string, stderr io.Writer) (*slog.Logger, func(), error) {
	var slogLevel slog.Level
	switch level {
	case "error":
		slogLevel = slog.LevelError
	case "warn":
		slogLevel = slog.LevelWarn
	case "info":
		slogLevel = slog.LevelInfo
	case "debug":
		slogLevel = slog.LevelDebug
	default:
		return nil, nil, fmt.Errorf("invalid log level: %q", level)
	}

	var w io.Writer = stderr
	cleanup := func() {}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		cleanup = func() { _ = f.Close() }
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slogLevel})
	return slog.New(handler), cleanup, nil
}
