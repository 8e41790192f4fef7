package main

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/game"
	"github.com/lgbarn/chess-engine-go/internal/render"
)

// consoleHost presents a game on the output stream and logs to the log
// stream. The game field is set once the game exists so frames can carry
// the last move.
type consoleHost struct {
	cfg    *config.Config
	writer render.BoardWriter
	game   *game.Game
	status game.Status
	fatal  error
}

func newConsoleHost(cfg *config.Config) *consoleHost {
	return &consoleHost{
		cfg:    cfg,
		writer: render.NewWriter(cfg.OutputFile, cfg),
	}
}

// Log implements game.Host.
func (h *consoleHost) Log(msg string) {
	fmt.Fprintln(h.cfg.LogFile, msg)
}

// Fatal implements game.Host.
func (h *consoleHost) Fatal(err error) {
	h.fatal = err
	fmt.Fprintf(h.cfg.LogFile, "fatal: %v\n", err)
}

// SetStatus implements game.Host.
func (h *consoleHost) SetStatus(status game.Status) {
	h.status = status
}

// Redraw implements game.Host.
func (h *consoleHost) Redraw(board *chess.Board) {
	h.draw(h.snapshot(board))
}

func (h *consoleHost) snapshot(board *chess.Board) render.Snapshot {
	snap := render.NewSnapshot(board, h.status, h.cfg.Output.ShowLegalMoves)
	if h.game != nil {
		if m, ok := h.game.LastMove(); ok {
			snap.LastMove = &m
		}
		snap.Ply = len(h.game.History())
	}
	return snap
}

func (h *consoleHost) draw(snap render.Snapshot) {
	if err := h.writer.WriteSnapshot(snap); err != nil {
		fmt.Fprintf(h.cfg.LogFile, "Error writing board: %v\n", err)
	}
	if h.cfg.Output.SVGFile != "" {
		if err := render.WriteSVGFile(h.cfg.Output.SVGFile, snap, h.cfg.Output.SquareSize); err != nil {
			fmt.Fprintf(h.cfg.LogFile, "Error writing SVG file: %v\n", err)
		}
	}
}
