package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/hashing"
	"github.com/lgbarn/chess-engine-go/internal/worker"
)

// perftReport is the JSON form of a perft run.
type perftReport struct {
	FEN    string           `json:"fen"`
	Depth  int              `json:"depth"`
	Nodes  int64            `json:"nodes"`
	Divide map[string]int64 `json:"divide,omitempty"`
}

// cacheStats is the reporting side of both perft caches.
type cacheStats interface {
	Len() int
	Hits() int64
	Misses() int64
}

// newPerftCache returns the cache for a run. A single worker owns its cache
// outright; several workers share a locked one.
func newPerftCache(cfg *config.Config) (engine.NodeCache, cacheStats) {
	if cfg.Perft.HashEntries <= 0 {
		return nil, nil
	}
	if cfg.Perft.Workers <= 1 {
		c := hashing.NewPerftCache(cfg.Perft.HashEntries)
		return c, c
	}
	c := hashing.NewThreadSafePerftCache(cfg.Perft.HashEntries)
	return c, c
}

// runPerft counts the move tree of the starting position and prints the
// result. It returns the process exit code.
func runPerft(cfg *config.Config) int {
	board, err := engine.NewBoardFromFEN(cfg.StartFEN)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 1
	}

	cache, stats := newPerftCache(cfg)

	start := time.Now()
	entries, err := worker.Divide(board, cfg.Perft.Depth, cfg.Perft.Workers, cache)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 1
	}
	elapsed := time.Since(start)
	nodes := engine.DivideTotal(entries)

	if cfg.Output.Format == config.JSON {
		report := perftReport{FEN: cfg.StartFEN, Depth: cfg.Perft.Depth, Nodes: nodes}
		if cfg.Perft.Divide {
			report.Divide = make(map[string]int64, len(entries))
			for _, e := range entries {
				report.Divide[e.Move.String()] = e.Nodes
			}
		}
		enc := json.NewEncoder(cfg.OutputFile)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
			return 1
		}
	} else {
		if cfg.Perft.Divide {
			for _, e := range entries {
				fmt.Fprintf(cfg.OutputFile, "%s: %d\n", e.Move, e.Nodes)
			}
			fmt.Fprintln(cfg.OutputFile)
		}
		fmt.Fprintf(cfg.OutputFile, "Nodes searched: %d\n", nodes)
	}

	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "perft %d: %d nodes in %v with %d worker(s)\n",
			cfg.Perft.Depth, nodes, elapsed.Round(time.Millisecond), cfg.Perft.Workers)
		if stats != nil {
			fmt.Fprintf(cfg.LogFile, "cache: %d entries, %d hits, %d misses\n",
				stats.Len(), stats.Hits(), stats.Misses())
		}
	}
	return 0
}
