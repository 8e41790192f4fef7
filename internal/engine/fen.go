// Package engine provides chess move generation, attack detection and board
// manipulation.
package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewBoardFromFEN creates a board from a FEN string. Only the first four
// fields are interpreted; the clocks are accepted and ignored. Castling
// rights are dropped when the king or rook is not on its starting square.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}

	if err := parseSideToMove(board, parts); err != nil {
		return nil, err
	}

	if err := parseCastlingRights(board, parts); err != nil {
		return nil, err
	}

	if err := parseEnPassant(board, parts); err != nil {
		return nil, err
	}

	if err := board.CheckKings(); err != nil {
		return nil, fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
	}

	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	rows := strings.Split(positions, "/")
	if len(rows) != chess.BoardSize {
		return fmt.Errorf("expected %d ranks, got %d: %w", chess.BoardSize, len(rows), errors.ErrInvalidFEN)
	}

	for i, row := range rows {
		rank := chess.BoardSize - 1 - i
		file := 0
		for _, c := range row {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				if file > chess.BoardSize {
					return fmt.Errorf("rank %d overflows: %w", rank+1, errors.ErrInvalidFEN)
				}
				continue
			}

			pieceType := chess.PieceTypeFromLetter(byte(c))
			if c > unicode.MaxASCII || pieceType == chess.NoType {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if file >= chess.BoardSize {
				return fmt.Errorf("rank %d overflows: %w", rank+1, errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}

			sq := chess.Sq(file, rank)
			board.Set(sq, chess.MakePiece(colour, pieceType))
			if pieceType == chess.King {
				board.KingPos[colour] = sq
			}
			file++
		}
		if file != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", rank+1, file, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *chess.Board, parts []string) error {
	board.Castling = chess.CastlingRights{}

	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		var colour chess.Colour
		var side chess.Side
		switch c {
		case 'K':
			colour, side = chess.White, chess.KingSide
		case 'Q':
			colour, side = chess.White, chess.QueenSide
		case 'k':
			colour, side = chess.Black, chess.KingSide
		case 'q':
			colour, side = chess.Black, chess.QueenSide
		default:
			return fmt.Errorf("invalid castling character: %c: %w", c, errors.ErrInvalidFEN)
		}
		board.SetCanCastle(colour, side, castlingPiecesHome(board, colour, side))
	}
	return nil
}

// castlingPiecesHome reports whether the king and the side's rook are on
// their starting squares.
func castlingPiecesHome(board *chess.Board, colour chess.Colour, side chess.Side) bool {
	rank := chess.BackRank(colour)
	king := chess.Coord{File: chess.KingStartFile, Rank: rank}
	rook := chess.Coord{File: chess.RookStartFile[side], Rank: rank}
	return board.Get(king) == chess.MakePiece(colour, chess.King) &&
		board.Get(rook) == chess.MakePiece(colour, chess.Rook)
}

// parseEnPassant parses the en passant target square field. The target must
// be an empty square on the rank a pawn of the side not to move just passed.
func parseEnPassant(board *chess.Board, parts []string) error {
	board.EnPassant = chess.NoCoord
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, err := chess.ParseCoord(parts[3])
	if err != nil {
		return fmt.Errorf("en passant square: %v: %w", err, errors.ErrInvalidFEN)
	}
	mover := board.ToMove.Opposite()
	if sq.Rank != chess.PawnStartRank(mover)+chess.Forward(mover) || board.Get(sq) != chess.NoPiece {
		return fmt.Errorf("impossible en passant square %s: %w", sq, errors.ErrInvalidFEN)
	}
	board.EnPassant = sq
	return nil
}

// BoardToFEN converts a board to a FEN string. The board keeps no clocks, so
// the halfmove clock and fullmove number are always written as "0 1".
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	sb.WriteString(board.EnPassant.String())
	sb.WriteString(" 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(chess.Sq(file, rank))
			if piece == chess.NoPiece {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteString(piece.String())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	for _, r := range []struct {
		colour chess.Colour
		side   chess.Side
		letter byte
	}{
		{chess.White, chess.KingSide, 'K'},
		{chess.White, chess.QueenSide, 'Q'},
		{chess.Black, chess.KingSide, 'k'},
		{chess.Black, chess.QueenSide, 'q'},
	} {
		if board.CanCastle(r.colour, r.side) {
			sb.WriteByte(r.letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}
