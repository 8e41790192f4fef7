// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/chess-engine-go/internal/config"
)

var (
	// Position options
	startFEN = flag.String("fen", "", "Start from this FEN position (default: the initial position)")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output boards in JSON format")
	svgFile    = flag.String("svg", "", "Write an SVG image of the board to this file after every change")
	squareSize = flag.Int("square", 60, "SVG square size in pixels")
	showMoves  = flag.Bool("moves", false, "List the legal moves after every board")

	// Interface
	tuiMode = flag.Bool("tui", false, "Play in an interactive terminal board")

	// Perft
	perftDepth  = flag.Int("perft", 0, "Count the move tree to depth N and exit")
	workers     = flag.Int("workers", runtime.NumCPU(), "Goroutines used by -perft")
	divide      = flag.Bool("divide", false, "With -perft, print the node count below each root move")
	hashEntries = flag.Int("hash", 0, "With -perft, cache up to N subtree counts (0 = no cache)")

	// Logging
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 rejected moves, 2 every move")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")
	logFile   = flag.String("l", "", "Write diagnostics to this file (default: stderr)")

	// Information
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyPositionFlags(cfg)
	applyOutputFlags(cfg)
	applyPerftFlags(cfg)

	cfg.TUI = *tuiMode
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
}

// applyPositionFlags sets the starting position.
func applyPositionFlags(cfg *config.Config) {
	if *startFEN != "" {
		cfg.StartFEN = *startFEN
	}
}

// applyOutputFlags configures board output.
func applyOutputFlags(cfg *config.Config) {
	if *jsonOutput {
		cfg.Output.Format = config.JSON
	}
	cfg.Output.SVGFile = *svgFile
	cfg.Output.SquareSize = *squareSize
	cfg.Output.ShowLegalMoves = *showMoves
}

// applyPerftFlags configures node counting.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Workers = *workers
	cfg.Perft.Divide = *divide
	cfg.Perft.HashEntries = *hashEntries
}
