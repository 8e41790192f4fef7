package chess

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Board represents a chess board with all state needed for the game.
type Board struct {
	// The board squares, indexed [rank][file].
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// Castling availability, indexed [colour][side].
	Castling CastlingRights

	// The square a pawn passed over on the previous two-square advance,
	// or NoCoord.
	EnPassant Coord

	// Where the two kings are, indexed by colour. Must always agree with
	// Squares.
	KingPos [2]Coord
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{
		ToMove:    White,
		EnPassant: NoCoord,
		KingPos:   [2]Coord{NoCoord, NoCoord},
	}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Squares = [BoardSize][BoardSize]Piece{}

	backRank := [BoardSize]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := int8(0); file < BoardSize; file++ {
		for _, colour := range []Colour{White, Black} {
			b.Set(Coord{file, BackRank(colour)}, MakePiece(colour, backRank[file]))
			b.Set(Coord{file, PawnStartRank(colour)}, MakePiece(colour, Pawn))
		}
	}

	b.KingPos[White] = Coord{KingStartFile, BackRank(White)}
	b.KingPos[Black] = Coord{KingStartFile, BackRank(Black)}

	b.Castling = CastlingRights{{true, true}, {true, true}}
	b.EnPassant = NoCoord
	b.ToMove = White
}

// mustBeValid panics on an off-board coordinate. Only the move generator
// produces coordinates, so reaching here is a programming error.
func mustBeValid(c Coord) {
	if !c.Valid() {
		panic(fmt.Sprintf("chess: coordinate %d,%d is off the board", c.File, c.Rank))
	}
}

// Get returns the piece at the given coordinate.
func (b *Board) Get(c Coord) Piece {
	mustBeValid(c)
	return b.Squares[c.Rank][c.File]
}

// Set places a piece at the given coordinate.
func (b *Board) Set(c Coord, p Piece) {
	mustBeValid(c)
	b.Squares[c.Rank][c.File] = p
}

// CanCastle reports whether the colour still holds the castling right.
func (b *Board) CanCastle(colour Colour, side Side) bool {
	return b.Castling[colour][side]
}

// SetCanCastle sets a castling right.
func (b *Board) SetCanCastle(colour Colour, side Side, allowed bool) {
	b.Castling[colour][side] = allowed
}

// CanEnPassant reports whether an en passant target is set.
func (b *Board) CanEnPassant() bool {
	return b.EnPassant != NoCoord
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// CheckKings verifies that each colour has exactly one king and that the
// king position cache points at it.
func (b *Board) CheckKings() error {
	for _, colour := range []Colour{White, Black} {
		king := MakePiece(colour, King)
		count := 0
		for rank := int8(0); rank < BoardSize; rank++ {
			for file := int8(0); file < BoardSize; file++ {
				if b.Squares[rank][file] == king {
					count++
				}
			}
		}
		if count != 1 {
			return fmt.Errorf("%s has %d kings: %w", colour, count, errors.ErrInvariant)
		}
		pos := b.KingPos[colour]
		if !pos.Valid() || b.Get(pos) != king {
			return fmt.Errorf("%s king cache %s does not hold the king: %w", colour, pos, errors.ErrInvariant)
		}
	}
	return nil
}
