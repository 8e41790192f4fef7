package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// MaxPerftDepth bounds the perft depth accepted from the command line.
const MaxPerftDepth = 8

// PerftConfig holds settings for move-generation node counting.
type PerftConfig struct {
	// Depth is the perft depth; 0 disables perft and starts a game
	Depth int

	// Workers is the number of goroutines splitting the root moves
	Workers int

	// Divide prints the node count below each root move
	Divide bool

	// HashEntries caps the shared subtree cache; 0 disables it
	HashEntries int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers: runtime.NumCPU(),
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d not in 0..%d: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.HashEntries < 0 {
		return fmt.Errorf("hash entries (%d) must not be negative: %w", p.HashEntries, errors.ErrInvalidConfig)
	}
	return nil
}
