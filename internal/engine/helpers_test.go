package engine

import (
	"sort"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// mustFEN parses a FEN fixture or fails the test.
func mustFEN(tb testing.TB, fen string) *chess.Board {
	tb.Helper()
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		tb.Fatalf("NewBoardFromFEN(%q) failed: %v", fen, err)
	}
	return board
}

// sq parses a square name or fails the test.
func sq(tb testing.TB, name string) chess.Coord {
	tb.Helper()
	c, err := chess.ParseCoord(name)
	if err != nil {
		tb.Fatalf("ParseCoord(%q) failed: %v", name, err)
	}
	return c
}

// moveTexts returns the coordinate text of each move, sorted.
func moveTexts(moves chess.MoveList) []string {
	texts := make([]string, 0, len(moves))
	for _, m := range moves {
		texts = append(texts, m.String())
	}
	sort.Strings(texts)
	return texts
}

// movesFrom returns the moves starting on from, in generation order.
func movesFrom(moves chess.MoveList, from chess.Coord) chess.MoveList {
	var out chess.MoveList
	for _, m := range moves {
		if m.From == from {
			out = append(out, m)
		}
	}
	return out
}

// findText returns the generated move with the given coordinate text.
func findText(moves chess.MoveList, text string) (chess.Move, bool) {
	for _, m := range moves {
		if m.String() == text {
			return m, true
		}
	}
	return chess.Move{}, false
}

// mustMove finds a pseudo-legal move by text or fails the test.
func mustMove(tb testing.TB, board *chess.Board, text string) chess.Move {
	tb.Helper()
	m, ok := findText(GenerateMoves(board), text)
	if !ok {
		tb.Fatalf("move %s not generated in %s", text, BoardToFEN(board))
	}
	return m
}
