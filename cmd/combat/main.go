// Package main provides the combat CLI, which scores a pair of decks under
// Combat and Recursive Combat.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/signalnine/crabcombat/config"
	"github.com/signalnine/crabcombat/deckfile"
	"github.com/signalnine/crabcombat/logging"
	"github.com/signalnine/crabcombat/simulation"
)

// Version information (set by build flags)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("combat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("verbose", false, "Enable debug logging on stderr")
	showVersion := fs.Bool("version", false, "Show version information")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: combat [-verbose] [-version] <input-file>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if *showVersion {
		fmt.Fprintf(stdout, "combat %s (built %s)\n", Version, BuildTime)
		return exitOK
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return exitUsage
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}
	logger, err := logging.New(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}
	if *verbose && !logger.IsLevelEnabled(logrus.DebugLevel) {
		logger.SetLevel(logrus.DebugLevel)
	}

	report, err := solve(ctx, fs.Arg(0), cfg, logger)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}

	code := exitOK
	if report.Combat.Err != nil {
		fmt.Fprintf(stderr, "error: %v\n", report.Combat.Err)
		code = exitError
	} else {
		fmt.Fprintf(stdout, "Part 1: %d\n", report.Combat.Result.Score)
	}
	fmt.Fprintf(stdout, "Part 2: %d\n", report.Recursive.Result.Score)
	return code
}

func solve(ctx context.Context, path string, cfg config.Config, logger *logrus.Logger) (simulation.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return simulation.Report{}, err
	}
	defer f.Close()

	decks, err := deckfile.Parse(f)
	if err != nil {
		return simulation.Report{}, fmt.Errorf("%s: %w", path, err)
	}

	return simulation.Run(ctx, decks, simulation.Options{
		Logger:   logger,
		MaxDepth: cfg.MaxDepth,
	})
}
