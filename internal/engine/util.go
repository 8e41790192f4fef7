package engine

import (
	"golang.org/x/exp/constraints"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// abs returns the absolute value of x.
func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign[T constraints.Signed](x T) T {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// off builds a file/rank offset.
func off(df, dr int8) chess.Coord {
	return chess.Coord{File: df, Rank: dr}
}

var (
	knightOffsets = [8]chess.Coord{
		off(-2, -1), off(-2, 1), off(-1, -2), off(-1, 2),
		off(1, -2), off(1, 2), off(2, -1), off(2, 1),
	}

	diagonalDirs = [4]chess.Coord{off(-1, -1), off(1, -1), off(-1, 1), off(1, 1)}

	straightDirs = [4]chess.Coord{off(-1, 0), off(1, 0), off(0, -1), off(0, 1)}

	allDirs = [8]chess.Coord{
		off(-1, -1), off(1, -1), off(-1, 1), off(1, 1),
		off(-1, 0), off(1, 0), off(0, -1), off(0, 1),
	}
)
