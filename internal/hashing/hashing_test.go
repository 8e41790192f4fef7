package hashing

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

func TestZobristHashConsistency(t *testing.T) {
	board1 := engine.NewInitialBoard()
	board2 := testutil.MustBoard(t, engine.InitialFEN)

	hash1 := GenerateZobristHash(board1)
	hash2 := GenerateZobristHash(board2)
	if hash1 != hash2 {
		t.Errorf("Same position should have same hash: %x != %x", hash1, hash2)
	}
	if hash1 == 0 {
		t.Error("initial position hashed to 0")
	}
}

func TestZobristHashDifferentPositions(t *testing.T) {
	base := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
	tests := []struct {
		name string
		fen  string
	}{
		{"side to move", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1"},
		{"no en passant", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1"},
		{"castling", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b Kkq e3 0 1"},
		{"placement", "rnbqkbnr/pppppppp/8/8/3P4/8/PPP1PPPP/RNBQKBNR b KQkq d3 0 1"},
	}

	want := GenerateZobristHash(testutil.MustBoard(t, base))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenerateZobristHash(testutil.MustBoard(t, tt.fen)); got == want {
				t.Errorf("GenerateZobristHash(%q) collides with %q", tt.fen, base)
			}
		})
	}
}

func TestZobristHashTransposition(t *testing.T) {
	a := engine.NewInitialBoard()
	testutil.MustPlay(t, a, "g1f3", "g8f6", "b1c3")
	b := engine.NewInitialBoard()
	testutil.MustPlay(t, b, "b1c3", "g8f6", "g1f3")

	if GenerateZobristHash(a) != GenerateZobristHash(b) {
		t.Error("transposed move orders should reach the same key")
	}
}

func TestZobristHashAfterUnmake(t *testing.T) {
	board := testutil.MustBoard(t, testutil.KiwipeteFEN)
	want := GenerateZobristHash(board)
	for _, m := range engine.GenerateMoves(board) {
		engine.ApplyMove(board, m)
		engine.UnmakeMove(board, m)
		if got := GenerateZobristHash(board); got != want {
			t.Fatalf("key after %s/unmake = %x, want %x", m, got, want)
		}
	}
}

func TestPerftCache(t *testing.T) {
	cache := NewPerftCache(0)
	board := engine.NewInitialBoard()

	if _, ok := cache.Lookup(board, 2); ok {
		t.Fatal("empty cache reported a hit")
	}
	cache.Store(board, 2, 400)
	if nodes, ok := cache.Lookup(board, 2); !ok || nodes != 400 {
		t.Errorf("Lookup(2) = %d, %v; want 400, true", nodes, ok)
	}
	if _, ok := cache.Lookup(board, 3); ok {
		t.Error("Lookup(3) hit an entry stored for depth 2")
	}
	if cache.Hits() != 1 || cache.Misses() != 2 {
		t.Errorf("hits, misses = %d, %d; want 1, 2", cache.Hits(), cache.Misses())
	}
	if cache.Len() != 1 {
		t.Errorf("Len() = %d; want 1", cache.Len())
	}
}

func TestPerftCache_Capacity(t *testing.T) {
	cache := NewPerftCache(2)
	board := engine.NewInitialBoard()

	for depth := 2; depth <= 4; depth++ {
		cache.Store(board, depth, int64(depth))
	}
	if !cache.IsFull() {
		t.Error("IsFull() = false after reaching capacity")
	}
	if cache.Len() != 2 {
		t.Errorf("Len() = %d, want 2", cache.Len())
	}
	if _, ok := cache.Lookup(board, 4); ok {
		t.Error("entry stored past capacity was kept")
	}
	if NewPerftCache(0).IsFull() {
		t.Error("unlimited cache reports full")
	}
}

func TestPerftCache_WithPerft(t *testing.T) {
	cache := NewPerftCache(0)
	board := testutil.MustBoard(t, testutil.KiwipeteFEN)
	if got := engine.PerftCached(board, 2, cache); got != 2039 {
		t.Errorf("PerftCached(kiwipete, 2) = %d, want 2039", got)
	}
	if cache.Len() != 1 {
		t.Errorf("Len() = %d, want 1", cache.Len())
	}
}

func TestGenerateZobristHash_EmptyBoard(t *testing.T) {
	board := chess.NewBoard()
	board.ToMove = chess.Black
	if got := GenerateZobristHash(board); got != 0 {
		t.Errorf("empty board with black to move = %x, want 0", got)
	}
}
