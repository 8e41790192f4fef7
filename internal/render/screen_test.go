package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/game"
)

func newSimScreen(t *testing.T) (tcell.SimulationScreen, *Screen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init())
	sim.SetSize(60, 24)
	t.Cleanup(sim.Fini)
	return sim, NewScreen(sim)
}

func cellAt(sim tcell.SimulationScreen, x, y int) rune {
	cells, width, _ := sim.GetContents()
	cell := cells[y*width+x]
	if len(cell.Runes) == 0 {
		return ' '
	}
	return cell.Runes[0]
}

func rowText(sim tcell.SimulationScreen, y int) string {
	_, width, _ := sim.GetContents()
	var sb strings.Builder
	for x := 0; x < width; x++ {
		sb.WriteRune(cellAt(sim, x, y))
	}
	return strings.TrimRight(sb.String(), " ")
}

func typeText(s *Screen, text string) Action {
	for _, r := range text {
		s.HandleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
	return s.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
}

// click returns the cell in the middle of a square.
func click(s *Screen, sq chess.Coord) Action {
	x := boardLeft + int(sq.File)*cellWidth + 1
	y := chess.BoardSize - 1 - int(sq.Rank)
	return s.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
}

func TestScreen_DrawsGame(t *testing.T) {
	sim, scr := newSimScreen(t)
	g := game.New(config.NewConfigBuilder().WithVerbosity(0).Build(), scr)
	g.Init()

	assert.Equal(t, '♔', cellAt(sim, boardLeft+4*cellWidth+1, 7))
	assert.Equal(t, '♜', cellAt(sim, boardLeft+1, 0))
	assert.Equal(t, "White: Your turn...", rowText(sim, statusRow))
	assert.Equal(t, "1", rowText(sim, 7)[:1])

	action := typeText(scr, "e2e4")
	require.Equal(t, Action{Kind: ActionText, Text: "e2e4"}, action)
	status, err := g.Play(action.Text)
	require.NoError(t, err)

	assert.Equal(t, game.StatusThinking, status)
	assert.Equal(t, '♙', cellAt(sim, boardLeft+4*cellWidth+1, 4))
	assert.Equal(t, ' ', cellAt(sim, boardLeft+4*cellWidth+1, 6))
	assert.Equal(t, "Black: Thinking...", rowText(sim, statusRow))
	assert.Equal(t, ">", rowText(sim, promptRow))
}

func TestScreen_ClickMove(t *testing.T) {
	_, scr := newSimScreen(t)
	g := game.New(config.NewConfigBuilder().WithVerbosity(0).Build(), scr)
	g.Init()

	assert.Equal(t, Action{}, click(scr, chess.Sq(6, 0)))
	assert.Equal(t, chess.Sq(6, 0), scr.selected)

	action := click(scr, chess.Sq(5, 2))
	require.Equal(t, ActionMove, action.Kind)
	assert.Equal(t, chess.Sq(6, 0), action.From)
	assert.Equal(t, chess.Sq(5, 2), action.To)
	assert.Equal(t, chess.NoCoord, scr.selected)

	status := g.AttemptMove(int(action.From.File), int(action.From.Rank), int(action.To.File), int(action.To.Rank), chess.NoType)
	assert.Equal(t, game.StatusThinking, status)

	// Clicking the same square twice cancels the selection.
	click(scr, chess.Sq(1, 7))
	assert.Equal(t, Action{}, click(scr, chess.Sq(1, 7)))
	assert.Equal(t, chess.NoCoord, scr.selected)
}

func TestScreen_Keys(t *testing.T) {
	sim, scr := newSimScreen(t)
	scr.Redraw(chess.NewBoard())

	scr.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'e', tcell.ModNone))
	scr.HandleEvent(tcell.NewEventKey(tcell.KeyRune, '9', tcell.ModNone))
	scr.HandleEvent(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone))
	assert.Equal(t, "> e", rowText(sim, promptRow))

	assert.Equal(t, Action{Kind: ActionText, Text: "e"},
		scr.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
	assert.Equal(t, Action{}, scr.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
	assert.Equal(t, ActionQuit, scr.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)).Kind)
	assert.Equal(t, ActionQuit, scr.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)).Kind)
}

func TestScreen_SquareAt(t *testing.T) {
	_, scr := newSimScreen(t)
	tests := []struct {
		x, y int
		want chess.Coord
		ok   bool
	}{
		{boardLeft, 7, chess.Sq(0, 0), true},
		{boardLeft + 7*cellWidth + 2, 0, chess.Sq(7, 7), true},
		{0, 3, chess.NoCoord, false},
		{boardLeft + 8*cellWidth, 3, chess.NoCoord, false},
		{boardLeft + (256+4)*cellWidth, 3, chess.NoCoord, false},
		{boardLeft, chess.BoardSize, chess.NoCoord, false},
	}
	for _, tt := range tests {
		got, ok := scr.SquareAt(tt.x, tt.y)
		assert.Equal(t, tt.ok, ok, "SquareAt(%d, %d)", tt.x, tt.y)
		assert.Equal(t, tt.want, got, "SquareAt(%d, %d)", tt.x, tt.y)
	}
}

func TestScreen_LogAndFatal(t *testing.T) {
	sim, scr := newSimScreen(t)
	scr.Redraw(chess.NewBoard())
	for i := 0; i < maxLogLines+2; i++ {
		scr.Log(strings.Repeat("x", i+1))
	}
	assert.Len(t, scr.logs, maxLogLines)
	assert.Equal(t, "xxx", rowText(sim, logRow))

	scr.Fatal(errors.New("board corrupted"))
	assert.EqualError(t, scr.Err(), "board corrupted")
	assert.Equal(t, "fatal: board corrupted", rowText(sim, logRow+maxLogLines+1))
}
