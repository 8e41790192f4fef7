package engine

import (
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// ParseMoveText parses a move in long algebraic coordinate form such as
// "e2e4" or "e7e8q". The optional fifth character names the promotion piece
// and must be one of n, b, r or q in either case.
func ParseMoveText(text string) (from, to chess.Coord, promotion chess.PieceType, err error) {
	s := strings.TrimSpace(text)
	if len(s) != 4 && len(s) != 5 {
		return chess.NoCoord, chess.NoCoord, chess.NoType, &errors.ParseError{
			Err:      errors.ErrInvalidMoveText,
			Input:    text,
			Expected: "move like e2e4 or e7e8q",
		}
	}

	if from, err = chess.ParseCoord(s[0:2]); err != nil {
		return chess.NoCoord, chess.NoCoord, chess.NoType, moveTextError(text, 1, s[0:2])
	}
	if to, err = chess.ParseCoord(s[2:4]); err != nil {
		return chess.NoCoord, chess.NoCoord, chess.NoType, moveTextError(text, 3, s[2:4])
	}

	if len(s) == 5 {
		promotion = chess.PieceTypeFromLetter(s[4])
		switch promotion {
		case chess.Knight, chess.Bishop, chess.Rook, chess.Queen:
		default:
			return chess.NoCoord, chess.NoCoord, chess.NoType, &errors.ParseError{
				Err:      errors.ErrInvalidMoveText,
				Input:    text,
				Column:   5,
				Expected: "promotion piece n, b, r or q",
				Got:      s[4:],
			}
		}
	}

	return from, to, promotion, nil
}

func moveTextError(text string, column int, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidMoveText,
		Input:    text,
		Column:   column,
		Expected: "square a1-h8",
		Got:      got,
	}
}
