package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// GenerateMoves returns the pseudo-legal moves for the side to move.
// Apart from castling, moves that leave the mover's king attacked are
// included; see IsLegal.
func GenerateMoves(board *chess.Board) chess.MoveList {
	return AppendMoves(board, chess.NewMoveList())
}

// AppendMoves appends the pseudo-legal moves for the side to move to moves
// and returns the extended list. Pass moves[:0] to reuse a list's storage.
func AppendMoves(board *chess.Board, moves chess.MoveList) chess.MoveList {
	g := generator{board: board, colour: board.ToMove, moves: moves}

	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			from := chess.Sq(file, rank)
			moved := board.Get(from)
			if moved == chess.NoPiece || moved.Colour() != g.colour {
				continue
			}

			switch moved.Type() {
			case chess.Pawn:
				g.pawnMoves(from, moved)
			case chess.Knight:
				g.stepMoves(from, moved, knightOffsets[:])
			case chess.Bishop:
				g.slideMoves(from, moved, diagonalDirs[:], 0)
			case chess.Rook:
				g.slideMoves(from, moved, straightDirs[:], 0)
			case chess.Queen:
				g.slideMoves(from, moved, allDirs[:], 0)
			case chess.King:
				g.slideMoves(from, moved, allDirs[:], 1)
				g.castlingMoves(from, moved)
			}
		}
	}

	return g.moves
}

// generator accumulates moves for one colour on one board.
type generator struct {
	board  *chess.Board
	colour chess.Colour
	moves  chess.MoveList
}

// add records a move together with the board state needed to revert it.
func (g *generator) add(from, to chess.Coord, moved, target, promotion chess.Piece) {
	g.moves = append(g.moves, chess.Move{
		From:          from,
		To:            to,
		Moved:         moved,
		Target:        target,
		Promotion:     promotion,
		PrevCastling:  g.board.Castling,
		PrevEnPassant: g.board.EnPassant,
	})
}

// stepMoves adds a move to each offset square that is empty or holds an
// enemy piece.
func (g *generator) stepMoves(from chess.Coord, moved chess.Piece, offsets []chess.Coord) {
	for _, o := range offsets {
		to := from.Add(o)
		if !to.Valid() {
			continue
		}
		target := g.board.Get(to)
		if target == chess.NoPiece || target.Colour() != g.colour {
			g.add(from, to, moved, target, chess.NoPiece)
		}
	}
}

// slideMoves scans each direction until the board edge or a piece. The first
// enemy piece is a capture; a friendly piece stops the ray. A maxDist of 0
// means unlimited.
func (g *generator) slideMoves(from chess.Coord, moved chess.Piece, dirs []chess.Coord, maxDist int8) {
	for _, dir := range dirs {
		for dist := int8(1); maxDist == 0 || dist <= maxDist; dist++ {
			to := from.Add(dir.Scale(dist))
			if !to.Valid() {
				break
			}
			target := g.board.Get(to)
			if target == chess.NoPiece {
				g.add(from, to, moved, target, chess.NoPiece)
				continue
			}
			if target.Colour() != g.colour {
				g.add(from, to, moved, target, chess.NoPiece)
			}
			break
		}
	}
}
