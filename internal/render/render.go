// Package render turns game state into text, JSON, SVG and terminal output.
package render

import (
	"io"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/game"
)

// Snapshot is everything a presenter needs to draw one frame.
type Snapshot struct {
	Board    *chess.Board
	Status   game.Status
	LastMove *chess.Move
	Ply      int

	// LegalMoves is nil unless requested when the snapshot was taken.
	LegalMoves chess.MoveList
}

// Capture takes a snapshot of g. withMoves also records the legal moves of
// the side to move.
func Capture(g *game.Game, withMoves bool) Snapshot {
	snap := Snapshot{
		Board:  g.Board(),
		Status: g.Status(),
		Ply:    len(g.History()),
	}
	if m, ok := g.LastMove(); ok {
		snap.LastMove = &m
	}
	if withMoves {
		snap.LegalMoves = g.LegalMoves()
	}
	return snap
}

// NewSnapshot builds a snapshot for a bare board, as handed to Host.Redraw.
func NewSnapshot(board *chess.Board, status game.Status, withMoves bool) Snapshot {
	snap := Snapshot{Board: board, Status: status}
	if withMoves {
		snap.LegalMoves = engine.LegalMoves(board)
	}
	return snap
}

// InCheck reports whether the side to move is in check.
func (s Snapshot) InCheck() bool {
	return engine.IsInCheck(s.Board, s.Board.ToMove)
}

// BoardWriter is the interface for writing snapshots to output.
// Different implementations handle different output formats (text, JSON).
type BoardWriter interface {
	// WriteSnapshot writes a single frame to the output.
	WriteSnapshot(snap Snapshot) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	Close() error
}

// NewWriter returns the writer for the configured output format.
// JSON output is written one document per snapshot.
func NewWriter(w io.Writer, cfg *config.Config) BoardWriter {
	if cfg.Output.Format == config.JSON {
		return NewJSONWriterSingle(w)
	}
	return NewTextWriter(w)
}
