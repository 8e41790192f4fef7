package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// promotionTypes lists the pieces a pawn may become, in generation order.
var promotionTypes = [4]chess.PieceType{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// pawnMoves adds pushes, double pushes, captures and en passant captures.
func (g *generator) pawnMoves(from chess.Coord, pawn chess.Piece) {
	forward := chess.Forward(g.colour)
	single := from.Add(off(0, forward))
	if !single.Valid() {
		return
	}

	if g.board.Get(single) == chess.NoPiece {
		g.addPawnMove(from, single, pawn, chess.NoPiece)

		// Double push from the starting rank
		if from.Rank == chess.PawnStartRank(g.colour) {
			double := single.Add(off(0, forward))
			if g.board.Get(double) == chess.NoPiece {
				g.add(from, double, pawn, chess.NoPiece, chess.NoPiece)
			}
		}
	}

	for _, df := range [2]int8{-1, 1} {
		to := single.Add(off(df, 0))
		if !to.Valid() {
			continue
		}
		target := g.board.Get(to)
		switch {
		case target != chess.NoPiece && target.Colour() != g.colour:
			g.addPawnMove(from, to, pawn, target)
		case target == chess.NoPiece && to == g.board.EnPassant:
			// The captured pawn sits beside us, not on the destination.
			victim := enPassantVictim(from, to)
			if captured := g.board.Get(victim); captured == chess.MakePiece(g.colour.Opposite(), chess.Pawn) {
				g.add(from, to, pawn, captured, chess.NoPiece)
			}
		}
	}
}

// addPawnMove adds a pawn move, fanning out into the four promotions when
// the destination is the far rank.
func (g *generator) addPawnMove(from, to chess.Coord, pawn, target chess.Piece) {
	if to.Rank != chess.PromotionRank(g.colour) {
		g.add(from, to, pawn, target, chess.NoPiece)
		return
	}
	for _, pt := range promotionTypes {
		g.add(from, to, pawn, target, chess.MakePiece(g.colour, pt))
	}
}

// enPassantVictim returns the square of the pawn taken by an en passant
// capture from from to to.
func enPassantVictim(from, to chess.Coord) chess.Coord {
	return chess.Coord{File: to.File, Rank: from.Rank}
}

// isEnPassantCapture reports whether a pawn move captures onto an empty
// square. Must be called before the destination is written.
func isEnPassantCapture(board *chess.Board, move chess.Move) bool {
	return move.Moved.Type() == chess.Pawn &&
		move.Target != chess.NoPiece &&
		move.Target.Type() == chess.Pawn &&
		board.Get(move.To) == chess.NoPiece
}
