package chess

// Move describes one state transition produced by the move generator.
type Move struct {
	// Source and destination squares.
	From Coord
	To   Coord

	// The piece on From before the move.
	Moved Piece

	// The piece captured, or NoPiece. For en passant this is the passed
	// pawn, which does not stand on To.
	Target Piece

	// The piece a pawn becomes, or NoPiece if not a promotion.
	Promotion Piece

	// Board state at generation time, used to revert the move.
	PrevCastling  CastlingRights
	PrevEnPassant Coord
}

// IsCapture returns true if this move captures a piece.
func (m Move) IsCapture() bool {
	return m.Target != NoPiece
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPiece
}

// IsCastle returns true if this is a king moving two files.
func (m Move) IsCastle() bool {
	if m.Moved.Type() != King {
		return false
	}
	d := m.To.File - m.From.File
	return d == 2 || d == -2
}

// String returns the move in long algebraic notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(m.Promotion.Type().Letter() + ('a' - 'A'))
	}
	return s
}

// MaxMoves is the capacity a MoveList is created with. It bounds the
// pseudo-legal moves of one side holding the initial material:
//
//	pawn   8 x 4 (two pushes, two captures) = 32
//	knight 2 x 8                            = 16
//	bishop 2 x 13                           = 26
//	rook   2 x 14                           = 28
//	queen  1 x 27                           = 27
//	king   1 x 8                            =  8
//	                                          137
//
// Promotion fan-out and promoted pieces can exceed it; the list then grows.
const MaxMoves = 137

// MoveList is a pre-sized sequence of generated moves.
type MoveList []Move

// NewMoveList returns an empty list with MaxMoves capacity.
func NewMoveList() MoveList {
	return make(MoveList, 0, MaxMoves)
}
