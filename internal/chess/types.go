// Package chess provides core chess types and operations.
package chess

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int8

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceType represents a colourless chess piece type.
type PieceType int8

const (
	NoType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (t PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if t >= 0 && int(t) < len(names) {
		return names[t]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (t PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if t >= 0 && int(t) < len(letters) {
		return letters[t]
	}
	return '?'
}

// PieceTypeFromLetter converts a piece letter in either case to a type.
// Unknown letters yield NoType.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoType
	}
}

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// Piece is a coloured piece packed as type<<PieceShift | colour.
// Pieces are compared by value.
type Piece uint8

// NoPiece marks an empty square.
const NoPiece Piece = 0

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, t PieceType) Piece {
	if t == NoType {
		return NoPiece
	}
	return Piece(int(t)<<PieceShift | int(colour))
}

// W creates a white piece.
func W(t PieceType) Piece {
	return MakePiece(White, t)
}

// B creates a black piece.
func B(t PieceType) Piece {
	return MakePiece(Black, t)
}

// Colour extracts the colour from a coloured piece.
func (p Piece) Colour() Colour {
	return Colour(p & 0x01)
}

// Type extracts the piece type from a coloured piece.
func (p Piece) Type() PieceType {
	return PieceType(p >> PieceShift)
}

// String returns the FEN letter of the piece: uppercase for White,
// lowercase for Black and "." for NoPiece.
func (p Piece) String() string {
	if p == NoPiece {
		return "."
	}
	letter := p.Type().Letter()
	if p.Colour() == Black {
		letter += 'a' - 'A'
	}
	return string(letter)
}

// BoardSize is the number of files and ranks.
const BoardSize = 8

// Coord is a board coordinate. File and Rank are 0-based; (0,0) is a1.
type Coord struct {
	File int8
	Rank int8
}

// NoCoord is the off-board sentinel, used for "no en passant target".
var NoCoord = Coord{-1, -1}

// Sq is shorthand for building a coordinate from ints. Any file or rank
// outside [0, BoardSize) yields NoCoord.
func Sq(file, rank int) Coord {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return NoCoord
	}
	return Coord{File: int8(file), Rank: int8(rank)}
}

// Valid reports whether the coordinate lies on the board.
func (c Coord) Valid() bool {
	return c.File >= 0 && c.File < BoardSize && c.Rank >= 0 && c.Rank < BoardSize
}

// Add returns c shifted by the offset d.
func (c Coord) Add(d Coord) Coord {
	return Coord{File: c.File + d.File, Rank: c.Rank + d.Rank}
}

// Scale returns the offset multiplied by n.
func (c Coord) Scale(n int8) Coord {
	return Coord{File: c.File * n, Rank: c.Rank * n}
}

// String returns the algebraic name of the square, or "-" if off the board.
func (c Coord) String() string {
	if !c.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + c.File), byte('1' + c.Rank)})
}

// ParseCoord parses an algebraic square name such as "e4".
func ParseCoord(s string) (Coord, error) {
	if len(s) != 2 {
		return NoCoord, &errors.ParseError{Err: errors.ErrInvalidCoord, Input: s, Expected: "square like e4"}
	}
	c := Coord{File: int8(s[0]) - 'a', Rank: int8(s[1]) - '1'}
	if !c.Valid() {
		return NoCoord, &errors.ParseError{Err: errors.ErrInvalidCoord, Input: s, Got: fmt.Sprintf("%q", s)}
	}
	return c, nil
}

// Side identifies a castling wing.
type Side int8

const (
	QueenSide Side = iota
	KingSide
)

// String returns the string representation of a side.
func (s Side) String() string {
	if s == KingSide {
		return "KingSide"
	}
	return "QueenSide"
}

// CastlingRights holds the castling availability, indexed [colour][side].
// A right is never re-granted once revoked.
type CastlingRights [2][2]bool

// Fixed files and ranks of the standard starting position.
const (
	KingStartFile int8 = 4
)

var (
	// RookStartFile is the file each rook starts on, by side.
	RookStartFile = [2]int8{0, 7}
	// KingCastleFile is where the king lands after castling, by side.
	KingCastleFile = [2]int8{2, 6}
	// RookCastleFile is where the rook lands after castling, by side.
	RookCastleFile = [2]int8{3, 5}
)

// BackRank returns the rank holding the colour's pieces at the start.
func BackRank(c Colour) int8 {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// PawnStartRank returns the rank the colour's pawns start on.
func PawnStartRank(c Colour) int8 {
	if c == White {
		return 1
	}
	return BoardSize - 2
}

// PromotionRank returns the far rank where the colour's pawns promote.
func PromotionRank(c Colour) int8 {
	return BackRank(c.Opposite())
}

// Forward returns +1 for White, -1 for Black (for pawn direction).
func Forward(c Colour) int8 {
	if c == White {
		return 1
	}
	return -1
}
