// Package game implements the move-attempt protocol: the single mutating
// entry point between a presentation host and the rules engine.
package game

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Host is the presentation layer a Game reports to. Every call that can
// change state ends with SetStatus followed by Redraw.
type Host interface {
	// Log receives diagnostic messages.
	Log(msg string)
	// Fatal receives broken-invariant errors. The game is unusable after it.
	Fatal(err error)
	// SetStatus shows the outcome of the last call.
	SetStatus(status Status)
	// Redraw receives a copy of the current board.
	Redraw(board *chess.Board)
}

// Game owns one board and serializes every change to it. A Game is not safe
// for concurrent use.
type Game struct {
	cfg     *config.Config
	host    Host
	board   *chess.Board
	history []chess.Move
	status  Status
}

// New creates a game reporting to host. The board is empty until Init or
// InitFromFEN is called.
func New(cfg *config.Config, host Host) *Game {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Game{
		cfg:   cfg,
		host:  host,
		board: chess.NewBoard(),
	}
}

// Init resets the board to the standard starting position.
func (g *Game) Init() {
	g.reset(engine.NewInitialBoard())
}

// InitFromFEN resets the board to the given position. On error the game is
// left unchanged.
func (g *Game) InitFromFEN(fen string) error {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return err
	}
	g.reset(board)
	return nil
}

func (g *Game) reset(board *chess.Board) {
	g.board = board
	g.history = nil
	g.logf(2, "new game: %s", engine.BoardToFEN(board))
	g.signal(StatusReady)
}

// AttemptMove plays the move from (fromFile, fromRank) to (toFile, toRank)
// if it is legal for the side to move. Coordinates are 0-based with (0, 0)
// at a1. promotion selects the piece a pawn reaching the far rank becomes;
// NoType means a queen. The board changes only when StatusThinking is
// returned.
func (g *Game) AttemptMove(fromFile, fromRank, toFile, toRank int, promotion chess.PieceType) Status {
	status, _ := g.attemptMove(chess.Sq(fromFile, fromRank), chess.Sq(toFile, toRank), promotion)
	return status
}

// Play parses coordinate text such as "e2e4" or "e7e8n" and attempts the
// move. A rejected move returns a *errors.MoveError wrapping
// ErrInvalidMoveText, ErrIllegalMove or ErrSelfCheck.
func (g *Game) Play(text string) (Status, error) {
	ply := len(g.history) + 1
	from, to, promotion, err := engine.ParseMoveText(text)
	if err != nil {
		g.logf(1, "cannot parse %q: %v", text, err)
		g.signal(StatusInvalid)
		return StatusInvalid, &errors.MoveError{Err: err, Ply: ply, MoveText: text}
	}
	status, err := g.attemptMove(from, to, promotion)
	if err != nil {
		return status, &errors.MoveError{Err: err, Ply: ply, MoveText: text}
	}
	return status, nil
}

// attemptMove runs the protocol: find the requested move among the
// pseudo-legal moves, play it on a copy, and commit the copy only if the
// mover's king is not attacked.
func (g *Game) attemptMove(from, to chess.Coord, promotion chess.PieceType) (status Status, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("attempt %s%s: %v: %w", from, to, r, errors.ErrInvariant)
			g.host.Fatal(err)
			status = StatusInvalid
		}
		g.signal(status)
	}()

	if !from.Valid() || !to.Valid() {
		g.logf(1, "move (%d,%d)-(%d,%d) is off the board", from.File, from.Rank, to.File, to.Rank)
		return StatusInvalid, errors.ErrInvalidCoord
	}

	move, ok := engine.FindMove(g.board, from, to, promotion)
	if !ok {
		g.logf(1, "%s%s is not a move for %s", from, to, g.board.ToMove)
		return StatusInvalid, errors.ErrIllegalMove
	}

	next := g.board.Copy()
	engine.ApplyMove(next, move)
	if engine.IsInCheck(next, move.Moved.Colour()) {
		g.logf(1, "%s leaves the %s king in check", move, move.Moved.Colour())
		return StatusInCheck, errors.ErrSelfCheck
	}
	if err := next.CheckKings(); err != nil {
		g.host.Fatal(errors.Wrapf(err, "after %s", move))
		return StatusInvalid, err
	}

	g.board = next
	g.history = append(g.history, move)
	g.logf(2, "%d. %s %s", len(g.history), move.Moved.Colour(), move)
	return StatusThinking, nil
}

// signal reports the status and a fresh board to the host.
func (g *Game) signal(status Status) {
	g.status = status
	g.host.SetStatus(status)
	g.host.Redraw(g.board.Copy())
}

// logf sends a message to the host if the configured verbosity is at
// least level.
func (g *Game) logf(level int, format string, args ...interface{}) {
	if g.cfg.Verbosity >= level {
		g.host.Log(fmt.Sprintf(format, args...))
	}
}

// Board returns a copy of the current board.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// Turn returns the colour to move.
func (g *Game) Turn() chess.Colour {
	return g.board.ToMove
}

// Status returns the status of the last call.
func (g *Game) Status() Status {
	return g.status
}

// LegalMoves returns the legal moves for the side to move.
func (g *Game) LegalMoves() chess.MoveList {
	return engine.LegalMoves(g.board)
}

// History returns the moves played since the last reset.
func (g *Game) History() []chess.Move {
	return append([]chess.Move(nil), g.history...)
}

// LastMove returns the most recent move, if any.
func (g *Game) LastMove() (chess.Move, bool) {
	if len(g.history) == 0 {
		return chess.Move{}, false
	}
	return g.history[len(g.history)-1], true
}

// FEN returns the current position in Forsyth-Edwards notation.
func (g *Game) FEN() string {
	return engine.BoardToFEN(g.board)
}
