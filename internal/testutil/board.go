package testutil

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// Common test positions.
const (
	KiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	EnPassantFEN = "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3"
	PromotionFEN = "4k3/1P6/8/8/8/8/8/4K3 w - - 0 1"
	CastlingFEN  = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
)

// MustBoard parses a FEN string and fails the test on error.
func MustBoard(tb testing.TB, fen string) *chess.Board {
	tb.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		tb.Fatalf("failed to parse test position %q: %v", fen, err)
	}
	return board
}

// MustPlay applies a sequence of legal moves given as coordinate text and
// returns them. It fails the test on the first move that cannot be played.
func MustPlay(tb testing.TB, board *chess.Board, texts ...string) []chess.Move {
	tb.Helper()
	moves := make([]chess.Move, 0, len(texts))
	for _, text := range texts {
		from, to, promotion, err := engine.ParseMoveText(text)
		if err != nil {
			tb.Fatalf("bad move text %q: %v", text, err)
		}
		m, ok := engine.FindMove(board, from, to, promotion)
		if !ok || !engine.IsLegal(board, m) {
			tb.Fatalf("%s is not legal in %s", text, engine.BoardToFEN(board))
		}
		engine.ApplyMove(board, m)
		moves = append(moves, m)
	}
	return moves
}

// MoveTexts returns the coordinate text of each move, in list order.
func MoveTexts(moves []chess.Move) []string {
	texts := make([]string, 0, len(moves))
	for _, m := range moves {
		texts = append(texts, m.String())
	}
	return texts
}
