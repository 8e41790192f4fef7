package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// ApplyMove applies a move produced by GenerateMoves for this board and
// updates the board state. It does not check legality and has no failure
// outcome; passing a move generated for another position corrupts the board.
func ApplyMove(board *chess.Board, move chess.Move) {
	colour := move.Moved.Colour()

	board.Set(move.From, chess.NoPiece)

	// En passant: the captured pawn is beside the origin, not on To.
	if isEnPassantCapture(board, move) {
		board.Set(enPassantVictim(move.From, move.To), chess.NoPiece)
	}

	board.EnPassant = chess.NoCoord
	if move.Moved.Type() == chess.Pawn && abs(move.To.Rank-move.From.Rank) == 2 {
		board.EnPassant = chess.Coord{File: move.From.File, Rank: (move.From.Rank + move.To.Rank) / 2}
	}

	placed := move.Moved
	if move.IsPromotion() {
		placed = move.Promotion
	}
	board.Set(move.To, placed)

	switch move.Moved.Type() {
	case chess.King:
		board.KingPos[colour] = move.To
		board.SetCanCastle(colour, chess.QueenSide, false)
		board.SetCanCastle(colour, chess.KingSide, false)
		if side, ok := castleSide(move); ok {
			moveCastlingRook(board, colour, side, false)
		}
	case chess.Rook:
		revokeRookRight(board, colour, move.From)
	}

	// A rook taken on its home square takes its castling right with it.
	if move.Target.Type() == chess.Rook {
		revokeRookRight(board, colour.Opposite(), move.To)
	}

	board.ToMove = colour.Opposite()
}

// UnmakeMove reverts a move previously applied with ApplyMove. Moves must be
// unmade in reverse order of application.
func UnmakeMove(board *chess.Board, move chess.Move) {
	colour := move.Moved.Colour()

	board.ToMove = colour
	board.Castling = move.PrevCastling
	board.EnPassant = move.PrevEnPassant

	board.Set(move.From, move.Moved)
	// A pawn capture lands on an empty square exactly when it lands on the
	// en passant target, since that square is always empty. This matches
	// isEnPassantCapture as ApplyMove saw it.
	switch {
	case move.Moved.Type() == chess.Pawn && move.IsCapture() && move.To == move.PrevEnPassant:
		board.Set(move.To, chess.NoPiece)
		board.Set(enPassantVictim(move.From, move.To), move.Target)
	default:
		board.Set(move.To, move.Target)
	}

	if move.Moved.Type() == chess.King {
		board.KingPos[colour] = move.From
		if side, ok := castleSide(move); ok {
			moveCastlingRook(board, colour, side, true)
		}
	}
}
