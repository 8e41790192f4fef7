package config

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// OutputFormat selects how the board is presented in line mode.
type OutputFormat int

const (
	Text OutputFormat = iota // ASCII diagram
	JSON                     // One JSON snapshot per state change
)

// String returns the flag name of the format.
func (f OutputFormat) String() string {
	switch f {
	case Text:
		return "text"
	case JSON:
		return "json"
	default:
		return fmt.Sprintf("OutputFormat(%d)", int(f))
	}
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format is the line mode board format
	Format OutputFormat

	// SVGFile, if set, receives an SVG image of the board after every redraw
	SVGFile string

	// SquareSize is the edge of one square in SVG pixels
	SquareSize int

	// ShowLegalMoves lists the legal moves after every redraw
	ShowLegalMoves bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:     Text,
		SquareSize: 60,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Format != Text && o.Format != JSON {
		return fmt.Errorf("unknown output format %d: %w", int(o.Format), errors.ErrInvalidConfig)
	}
	if o.SquareSize < 8 {
		return fmt.Errorf("square size %d too small: %w", o.SquareSize, errors.ErrInvalidConfig)
	}
	return nil
}
