package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// IsLegal returns true if playing the pseudo-legal move would not leave the
// mover's king attacked. The board is not modified.
//
// Capturing the enemy king is not filtered: such a move is legal here if it
// does not expose our own king. Positions reached through play never allow
// it, since the previous move would already have been rejected.
func IsLegal(board *chess.Board, move chess.Move) bool {
	testBoard := board.Copy()
	ApplyMove(testBoard, move)
	return !IsInCheck(testBoard, move.Moved.Colour())
}

// LegalMoves returns the legal moves for the side to move.
func LegalMoves(board *chess.Board) chess.MoveList {
	moves := GenerateMoves(board)
	legal := moves[:0]
	for _, m := range moves {
		if IsLegal(board, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// FindMove scans the pseudo-legal moves for one going from from to to.
// For promotions only the move promoting to the requested type matches; a
// requested type of NoType selects the queen. The promotion type is ignored
// for other moves.
func FindMove(board *chess.Board, from, to chess.Coord, promotion chess.PieceType) (chess.Move, bool) {
	if promotion == chess.NoType {
		promotion = chess.Queen
	}
	for _, m := range GenerateMoves(board) {
		if m.From != from || m.To != to {
			continue
		}
		if m.IsPromotion() && m.Promotion.Type() != promotion {
			continue
		}
		return m, true
	}
	return chess.Move{}, false
}
