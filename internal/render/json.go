package render

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// JSONSnapshot represents a snapshot in JSON format.
type JSONSnapshot struct {
	FEN        string    `json:"fen"`
	ToMove     string    `json:"toMove"` // "white" or "black"
	Status     string    `json:"status"`
	InCheck    bool      `json:"inCheck"`
	Ply        int       `json:"ply"`
	LastMove   *JSONMove `json:"lastMove,omitempty"`
	LegalMoves []string  `json:"legalMoves,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Color     string `json:"color"` // "white" or "black"
	UCI       string `json:"uci"`
	From      string `json:"from"`
	To        string `json:"to"`
	Piece     string `json:"piece"`
	Captured  string `json:"captured,omitempty"`
	Promotion string `json:"promotion,omitempty"`
	Castle    bool   `json:"castle,omitempty"`
}

// JSONOutput holds multiple snapshots for array output.
type JSONOutput struct {
	Snapshots []*JSONSnapshot `json:"snapshots"`
}

// SnapshotToJSON converts a snapshot to JSON format.
func SnapshotToJSON(snap Snapshot) *JSONSnapshot {
	js := &JSONSnapshot{
		FEN:     engine.BoardToFEN(snap.Board),
		ToMove:  colourName(snap.Board.ToMove),
		Status:  snap.Status.String(),
		InCheck: snap.InCheck(),
		Ply:     snap.Ply,
	}
	if snap.LastMove != nil {
		js.LastMove = MoveToJSON(*snap.LastMove)
	}
	if len(snap.LegalMoves) > 0 {
		js.LegalMoves = make([]string, len(snap.LegalMoves))
		for i, m := range snap.LegalMoves {
			js.LegalMoves[i] = m.String()
		}
	}
	return js
}

// MoveToJSON converts a move to JSON format.
func MoveToJSON(m chess.Move) *JSONMove {
	jm := &JSONMove{
		Color:  colourName(m.Moved.Colour()),
		UCI:    m.String(),
		From:   m.From.String(),
		To:     m.To.String(),
		Piece:  pieceName(m.Moved),
		Castle: m.IsCastle(),
	}
	if m.IsCapture() {
		jm.Captured = pieceName(m.Target)
	}
	if m.IsPromotion() {
		jm.Promotion = pieceName(m.Promotion)
	}
	return jm
}

func colourName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

func pieceName(p chess.Piece) string {
	return strings.ToLower(p.Type().String())
}

// JSONWriter writes snapshots in JSON format.
// It buffers snapshots and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	snaps  []Snapshot
	single bool // If true, write each snapshot immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches snapshots and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:     w,
		snaps: make([]Snapshot, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each snapshot immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteSnapshot buffers a snapshot for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteSnapshot(snap Snapshot) error {
	if jw.single {
		enc := json.NewEncoder(jw.w)
		enc.SetIndent("", "  ")
		return enc.Encode(SnapshotToJSON(snap))
	}

	// The board is copied so later moves do not change buffered frames.
	snap.Board = snap.Board.Copy()
	jw.snaps = append(jw.snaps, snap)
	return nil
}

// Flush writes all buffered snapshots as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.snaps) == 0 {
		return nil
	}

	output := &JSONOutput{
		Snapshots: make([]*JSONSnapshot, 0, len(jw.snaps)),
	}
	for _, snap := range jw.snaps {
		output.Snapshots = append(output.Snapshots, SnapshotToJSON(snap))
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(output)

	// Clear buffer after writing
	jw.snaps = jw.snaps[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
