// Package config provides configuration for the chess host and engine.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=status changes, 2=every move

	// StartFEN is the position a new game starts from.
	StartFEN string

	// TUI runs the interactive terminal board instead of line mode.
	TUI bool

	// Embedded sub-configs
	Output OutputConfig
	Perft  PerftConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		StartFEN:   engine.InitialFEN,
		Output:     *NewOutputConfig(),
		Perft:      *NewPerftConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks the whole configuration, including that StartFEN parses.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d not in 0..2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if _, err := engine.NewBoardFromFEN(c.StartFEN); err != nil {
		return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
	}
	if c.TUI && c.Perft.Depth > 0 {
		return fmt.Errorf("perft cannot run in TUI mode: %w", errors.ErrInvalidConfig)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Perft.Validate()
}
