package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// castlingMoves adds the king's castling moves. The rook's relocation is not
// part of the Move; ApplyMove infers it from the king moving two files.
func (g *generator) castlingMoves(from chess.Coord, king chess.Piece) {
	rank := chess.BackRank(g.colour)
	if from != (chess.Coord{File: chess.KingStartFile, Rank: rank}) {
		return
	}
	for _, side := range []chess.Side{chess.QueenSide, chess.KingSide} {
		if canCastle(g.board, g.colour, side) {
			to := chess.Coord{File: chess.KingCastleFile[side], Rank: rank}
			g.add(from, to, king, chess.NoPiece, chess.NoPiece)
		}
	}
}

// canCastle reports whether colour may castle on side: the right is held, the
// rook is home, nothing stands between king and rook, and no square the king
// occupies or crosses is attacked.
func canCastle(board *chess.Board, colour chess.Colour, side chess.Side) bool {
	if !board.CanCastle(colour, side) {
		return false
	}
	rank := chess.BackRank(colour)
	rookSq := chess.Coord{File: chess.RookStartFile[side], Rank: rank}
	if board.Get(rookSq) != chess.MakePiece(colour, chess.Rook) {
		return false
	}
	return pathClear(board, rank, chess.KingStartFile, chess.RookStartFile[side]) &&
		pathSafe(board, colour.Opposite(), rank, chess.KingStartFile, chess.KingCastleFile[side])
}

// pathClear returns true if every square strictly between the two files is empty.
func pathClear(board *chess.Board, rank, fromFile, toFile int8) bool {
	step := sign(toFile - fromFile)
	for file := fromFile + step; file != toFile; file += step {
		if board.Get(chess.Coord{File: file, Rank: rank}) != chess.NoPiece {
			return false
		}
	}
	return true
}

// pathSafe returns true if no square from fromFile to toFile, both included,
// is attacked by enemy.
func pathSafe(board *chess.Board, enemy chess.Colour, rank, fromFile, toFile int8) bool {
	step := sign(toFile - fromFile)
	for file := fromFile; ; file += step {
		if IsSquareAttacked(board, chess.Coord{File: file, Rank: rank}, enemy) {
			return false
		}
		if file == toFile {
			return true
		}
	}
}

// castleSide returns the side a king move castles to, if it is a castling move.
func castleSide(move chess.Move) (chess.Side, bool) {
	if move.Moved.Type() != chess.King || move.From.File != chess.KingStartFile ||
		abs(move.To.File-move.From.File) != 2 {
		return 0, false
	}
	if move.To.File == chess.KingCastleFile[chess.KingSide] {
		return chess.KingSide, true
	}
	return chess.QueenSide, true
}

// moveCastlingRook relocates the rook for a castling move, or back again when
// undo is set.
func moveCastlingRook(board *chess.Board, colour chess.Colour, side chess.Side, undo bool) {
	rank := chess.BackRank(colour)
	home := chess.Coord{File: chess.RookStartFile[side], Rank: rank}
	castled := chess.Coord{File: chess.RookCastleFile[side], Rank: rank}
	if undo {
		home, castled = castled, home
	}
	board.Set(home, chess.NoPiece)
	board.Set(castled, chess.MakePiece(colour, chess.Rook))
}

// revokeRookRight removes the castling right tied to a rook leaving, or being
// captured on, its starting square.
func revokeRookRight(board *chess.Board, colour chess.Colour, sq chess.Coord) {
	if sq.Rank != chess.BackRank(colour) {
		return
	}
	for _, side := range []chess.Side{chess.QueenSide, chess.KingSide} {
		if sq.File == chess.RookStartFile[side] {
			board.SetCanCastle(colour, side, false)
		}
	}
}
