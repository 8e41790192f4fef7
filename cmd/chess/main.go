// chess is a two-player chess board that enforces the rules of play. It runs
// as a line-oriented program, an interactive terminal board, or a perft
// node counter.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chess-engine-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-engine-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	os.Exit(run(cfg))
}

// run dispatches to the selected mode and returns the exit code.
func run(cfg *config.Config) int {
	switch {
	case cfg.Perft.Depth > 0:
		return runPerft(cfg)
	case cfg.TUI:
		return runTUI(cfg)
	default:
		return runLineMode(cfg, os.Stdin)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "A two-player chess board that enforces the rules of play.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nModes:\n")
	fmt.Fprintf(os.Stderr, "  (default)  read moves like e2e4 from stdin, type help for commands\n")
	fmt.Fprintf(os.Stderr, "  -tui       interactive terminal board (type moves or click squares)\n")
	fmt.Fprintf(os.Stderr, "  -perft N   count the legal move tree to depth N\n")
}
