package render

import (
	"fmt"
	"io"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// Square colours.
const (
	lightSquare = "fill:#f0d9b5"
	darkSquare  = "fill:#b58863"
	lastFrom    = "fill:#cdd26a"
	lastTo      = "fill:#aaa23a"
	checkSquare = "fill:#e05050"
)

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return len(p), nil
	}
	if _, err := ew.w.Write(p); err != nil {
		ew.err = err
	}
	return len(p), nil
}

// SVG draws the snapshot as an SVG image. squareSize is the side of one
// square in pixels; a status line is drawn below the board.
func SVG(w io.Writer, snap Snapshot, squareSize int) error {
	ew := &errWriter{w: w}
	side := chess.BoardSize * squareSize
	statusHeight := squareSize / 2
	canvas := svg.New(ew)
	canvas.Start(side, side+statusHeight)
	canvas.Title(fmt.Sprintf("%s to move", snap.Board.ToMove))

	checked := chess.NoCoord
	if snap.InCheck() {
		checked = snap.Board.KingPos[snap.Board.ToMove]
	}

	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Sq(file, rank)
			x, y := file*squareSize, (chess.BoardSize-1-rank)*squareSize
			canvas.Rect(x, y, squareSize, squareSize, squareStyle(snap, sq, checked))
			if p := snap.Board.Get(sq); p != chess.NoPiece {
				canvas.Text(x+squareSize/2, y+squareSize*4/5, string(Glyph(p)),
					fmt.Sprintf("text-anchor:middle;font-size:%dpx", squareSize*4/5))
			}
		}
	}

	canvas.Text(4, side+statusHeight*3/4, snap.Status.String(),
		fmt.Sprintf("font-family:sans-serif;font-size:%dpx", statusHeight*2/3))
	canvas.End()
	return ew.err
}

func squareStyle(snap Snapshot, sq, checked chess.Coord) string {
	switch {
	case sq == checked:
		return checkSquare
	case snap.LastMove != nil && sq == snap.LastMove.From:
		return lastFrom
	case snap.LastMove != nil && sq == snap.LastMove.To:
		return lastTo
	case (sq.File+sq.Rank)%2 == 1:
		return lightSquare
	default:
		return darkSquare
	}
}

// WriteSVGFile writes the snapshot to path, replacing any existing file.
func WriteSVGFile(path string, snap Snapshot, squareSize int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := SVG(f, snap, squareSize); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
