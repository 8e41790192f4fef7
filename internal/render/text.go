package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

var whiteGlyphs = [...]rune{chess.King: '♔', chess.Queen: '♕', chess.Rook: '♖', chess.Bishop: '♗', chess.Knight: '♘', chess.Pawn: '♙'}
var blackGlyphs = [...]rune{chess.King: '♚', chess.Queen: '♛', chess.Rook: '♜', chess.Bishop: '♝', chess.Knight: '♞', chess.Pawn: '♟'}

// Glyph returns the Unicode chess symbol for p, or a space for NoPiece.
func Glyph(p chess.Piece) rune {
	if p == chess.NoPiece {
		return ' '
	}
	if p.Colour() == chess.White {
		return whiteGlyphs[p.Type()]
	}
	return blackGlyphs[p.Type()]
}

// Text draws the board as letters, rank 8 at the top. Empty squares are dots.
func Text(board *chess.Board) string {
	var sb strings.Builder
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		for file := 0; file < chess.BoardSize; file++ {
			sb.WriteByte(' ')
			sb.WriteString(board.Get(chess.Sq(file, rank)).String())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

// TextWriter writes snapshots as a text diagram followed by status lines.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteSnapshot writes one frame.
func (tw *TextWriter) WriteSnapshot(snap Snapshot) error {
	var sb strings.Builder
	sb.WriteString(Text(snap.Board))
	fmt.Fprintf(&sb, "%s to move. %s\n", snap.Board.ToMove, snap.Status)
	if snap.LastMove != nil {
		fmt.Fprintf(&sb, "Last move: %s\n", snap.LastMove)
	}
	if snap.LegalMoves != nil {
		texts := make([]string, len(snap.LegalMoves))
		for i, m := range snap.LegalMoves {
			texts[i] = m.String()
		}
		fmt.Fprintf(&sb, "Legal moves (%d): %s\n", len(texts), strings.Join(texts, " "))
	}
	_, err := io.WriteString(tw.w, sb.String())
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}
