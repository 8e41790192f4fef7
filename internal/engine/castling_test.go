package engine

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

func TestCastlingGeneration(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		wantShort bool
		wantLong  bool
	}{
		{"both available", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", true, true},
		{"queen side blocked", "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1", true, false},
		{"king side blocked", "r3k2r/8/8/8/8/8/8/R3KB1R w KQkq - 0 1", false, true},
		{"queen side right lost", "r3k2r/8/8/8/8/8/8/R3K2R w Kkq - 0 1", true, false},
		{"no rights", "r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1", false, false},
		{"king in check", "4k3/8/8/8/8/8/4r3/R3K2R w KQ - 0 1", false, false},
		{"transit square attacked", "4kr2/8/8/8/8/8/8/R3K2R w KQ - 0 1", false, true},
		{"landing square attacked", "4k1r1/8/8/8/8/8/8/R3K2R w KQ - 0 1", false, true},
		{"rook path attacked but king path safe", "1r2k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", true, true},
		{"black both available", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", true, true},
		{"black transit attacked", "r3k2r/8/8/8/8/8/8/R2RK3 b kq - 0 1", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustFEN(t, tt.fen)
			moves := GenerateMoves(board)
			rank := "1"
			if board.ToMove == chess.Black {
				rank = "8"
			}
			_, gotShort := findText(moves, "e"+rank+"g"+rank)
			_, gotLong := findText(moves, "e"+rank+"c"+rank)
			if gotShort != tt.wantShort {
				t.Errorf("king side castle generated = %v, want %v", gotShort, tt.wantShort)
			}
			if gotLong != tt.wantLong {
				t.Errorf("queen side castle generated = %v, want %v", gotLong, tt.wantLong)
			}
		})
	}
}

func TestCastlingGeneration_RookMissing(t *testing.T) {
	board := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	// Keep the right but take the rook away.
	board.Set(sq(t, "h1"), chess.NoPiece)
	if _, ok := findText(GenerateMoves(board), "e1g1"); ok {
		t.Error("castled without a rook on h1")
	}
}

func TestApplyMove_Castling(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		move     string
		wantKing string
		wantRook string
		rookFrom string
	}{
		{"white short", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1", "g1", "f1", "h1"},
		{"white long", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1c1", "c1", "d1", "a1"},
		{"black short", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8g8", "g8", "f8", "h8"},
		{"black long", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8c8", "c8", "d8", "a8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustFEN(t, tt.fen)
			colour := board.ToMove
			m := mustMove(t, board, tt.move)
			if !m.IsCastle() {
				t.Fatalf("%s IsCastle() = false", tt.move)
			}
			ApplyMove(board, m)

			if got := board.Get(sq(t, tt.wantKing)); got != chess.MakePiece(colour, chess.King) {
				t.Errorf("king square %s holds %v", tt.wantKing, got)
			}
			if got := board.Get(sq(t, tt.wantRook)); got != chess.MakePiece(colour, chess.Rook) {
				t.Errorf("rook square %s holds %v", tt.wantRook, got)
			}
			if got := board.Get(sq(t, tt.rookFrom)); got != chess.NoPiece {
				t.Errorf("rook origin %s holds %v, want empty", tt.rookFrom, got)
			}
			if board.KingPos[colour] != sq(t, tt.wantKing) {
				t.Errorf("KingPos = %s, want %s", board.KingPos[colour], tt.wantKing)
			}
			if board.CanCastle(colour, chess.KingSide) || board.CanCastle(colour, chess.QueenSide) {
				t.Errorf("castling rights for %s still held after castling", colour)
			}
			if !board.CanCastle(colour.Opposite(), chess.KingSide) || !board.CanCastle(colour.Opposite(), chess.QueenSide) {
				t.Error("opponent's castling rights changed")
			}
		})
	}
}

func TestPathHelpers(t *testing.T) {
	board := mustFEN(t, "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1")
	if !pathClear(board, 0, chess.KingStartFile, 7) {
		t.Error("pathClear(e1..h1) = false, want true")
	}
	if pathClear(board, 0, chess.KingStartFile, 0) {
		t.Error("pathClear(e1..a1) = true, want false with a knight on b1")
	}
	if !pathSafe(board, chess.Black, 0, chess.KingStartFile, 6) {
		t.Error("pathSafe(e1..g1) = false, want true")
	}
}
