package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chess-engine-go/internal/errors"
)

func TestColourOpposite(t *testing.T) {
	for _, c := range []Colour{White, Black} {
		if c.Opposite() == c {
			t.Errorf("%v.Opposite() = %v", c, c.Opposite())
		}
		if c.Opposite().Opposite() != c {
			t.Errorf("%v.Opposite().Opposite() = %v", c, c.Opposite().Opposite())
		}
	}
}

func TestMakePiece(t *testing.T) {
	types := []PieceType{Pawn, Knight, Bishop, Rook, Queen, King}
	seen := make(map[Piece]bool)
	for _, colour := range []Colour{White, Black} {
		for _, pt := range types {
			p := MakePiece(colour, pt)
			if p == NoPiece {
				t.Errorf("MakePiece(%v, %v) = NoPiece", colour, pt)
			}
			if p.Colour() != colour {
				t.Errorf("MakePiece(%v, %v).Colour() = %v", colour, pt, p.Colour())
			}
			if p.Type() != pt {
				t.Errorf("MakePiece(%v, %v).Type() = %v", colour, pt, p.Type())
			}
			if seen[p] {
				t.Errorf("MakePiece(%v, %v) = %d collides with another piece", colour, pt, p)
			}
			seen[p] = true
		}
	}

	if MakePiece(White, NoType) != NoPiece {
		t.Error("MakePiece(White, NoType) != NoPiece")
	}
	if NoPiece.Type() != NoType {
		t.Errorf("NoPiece.Type() = %v; want NoType", NoPiece.Type())
	}
}

func TestPieceString(t *testing.T) {
	tests := []struct {
		piece Piece
		want  string
	}{
		{W(King), "K"},
		{B(King), "k"},
		{W(Pawn), "P"},
		{B(Knight), "n"},
		{NoPiece, "."},
	}
	for _, tt := range tests {
		if got := tt.piece.String(); got != tt.want {
			t.Errorf("Piece(%d).String() = %q; want %q", tt.piece, got, tt.want)
		}
	}
}

func TestCoordValid(t *testing.T) {
	tests := []struct {
		c    Coord
		want bool
	}{
		{Sq(0, 0), true},
		{Sq(7, 7), true},
		{Sq(3, 4), true},
		{Sq(-1, 0), false},
		{Sq(0, -1), false},
		{Sq(8, 0), false},
		{Sq(0, 8), false},
		{Sq(4+256, 1), false},
		{Sq(1, -256), false},
		{NoCoord, false},
	}
	for _, tt := range tests {
		if got := tt.c.Valid(); got != tt.want {
			t.Errorf("Coord{%d,%d}.Valid() = %v; want %v", tt.c.File, tt.c.Rank, got, tt.want)
		}
	}
}

func TestParseCoord(t *testing.T) {
	tests := []struct {
		in      string
		want    Coord
		wantErr bool
	}{
		{"a1", Sq(0, 0), false},
		{"e4", Sq(4, 3), false},
		{"h8", Sq(7, 7), false},
		{"i1", NoCoord, true},
		{"a9", NoCoord, true},
		{"e", NoCoord, true},
		{"", NoCoord, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCoord(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCoord(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidCoord) {
				t.Errorf("ParseCoord(%q) error = %v; want ErrInvalidCoord", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseCoord(%q) = %v; want %v", tt.in, got, tt.want)
			}
			if !tt.wantErr && got.String() != tt.in {
				t.Errorf("ParseCoord(%q).String() = %q", tt.in, got.String())
			}
		})
	}
}

func TestRankHelpers(t *testing.T) {
	if BackRank(White) != 0 || BackRank(Black) != 7 {
		t.Errorf("BackRank = %d/%d; want 0/7", BackRank(White), BackRank(Black))
	}
	if PawnStartRank(White) != 1 || PawnStartRank(Black) != 6 {
		t.Errorf("PawnStartRank = %d/%d; want 1/6", PawnStartRank(White), PawnStartRank(Black))
	}
	if PromotionRank(White) != 7 || PromotionRank(Black) != 0 {
		t.Errorf("PromotionRank = %d/%d; want 7/0", PromotionRank(White), PromotionRank(Black))
	}
	if Forward(White) != 1 || Forward(Black) != -1 {
		t.Errorf("Forward = %d/%d; want 1/-1", Forward(White), Forward(Black))
	}
}

func TestMoveString(t *testing.T) {
	tests := []struct {
		name string
		move Move
		want string
	}{
		{"pawn push", Move{From: Sq(4, 1), To: Sq(4, 3), Moved: W(Pawn)}, "e2e4"},
		{"promotion", Move{From: Sq(4, 6), To: Sq(4, 7), Moved: W(Pawn), Promotion: W(Queen)}, "e7e8q"},
		{"black underpromotion", Move{From: Sq(0, 1), To: Sq(1, 0), Moved: B(Pawn), Target: W(Knight), Promotion: B(Knight)}, "a2b1n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.move.String(); got != tt.want {
				t.Errorf("Move.String() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestNewMoveListCapacity(t *testing.T) {
	l := NewMoveList()
	if len(l) != 0 || cap(l) != MaxMoves {
		t.Errorf("NewMoveList() len=%d cap=%d; want 0/%d", len(l), cap(l), MaxMoves)
	}
}
