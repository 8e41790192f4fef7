package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// IsInCheck returns true if the given colour's king is in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king := board.KingPos[colour]
	if !king.Valid() {
		return false // No king on the board
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// IsSquareAttacked returns true if any piece of byColour could move to sq in
// one step. En passant is not considered.
func IsSquareAttacked(board *chess.Board, sq chess.Coord, byColour chess.Colour) bool {
	// Check pawn attacks: an attacking pawn stands one rank behind sq,
	// as seen from its own direction of travel.
	pawn := chess.MakePiece(byColour, chess.Pawn)
	back := -chess.Forward(byColour)
	for _, df := range [2]int8{-1, 1} {
		from := sq.Add(off(df, back))
		if from.Valid() && board.Get(from) == pawn {
			return true
		}
	}

	// Check knight attacks
	knight := chess.MakePiece(byColour, chess.Knight)
	for _, o := range knightOffsets {
		from := sq.Add(o)
		if from.Valid() && board.Get(from) == knight {
			return true
		}
	}

	// Check sliding pieces and the king along diagonals and straight lines
	for _, dir := range diagonalDirs {
		if rayAttacked(board, sq, dir, byColour, chess.Bishop) {
			return true
		}
	}
	for _, dir := range straightDirs {
		if rayAttacked(board, sq, dir, byColour, chess.Rook) {
			return true
		}
	}

	return false
}

// rayAttacked scans outward from sq along dir. The first piece hit attacks sq
// if it belongs to byColour and is the ray's slider, a queen, or a king one
// step away.
func rayAttacked(board *chess.Board, sq, dir chess.Coord, byColour chess.Colour, slider chess.PieceType) bool {
	for dist := int8(1); ; dist++ {
		c := sq.Add(dir.Scale(dist))
		if !c.Valid() {
			return false
		}
		piece := board.Get(c)
		if piece == chess.NoPiece {
			continue
		}
		if piece.Colour() != byColour {
			return false // Blocked
		}
		switch piece.Type() {
		case slider, chess.Queen:
			return true
		case chess.King:
			return dist == 1
		default:
			return false
		}
	}
}
