package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/game"
)

// Screen layout, in terminal cells.
const (
	boardLeft   = 2 // room for the rank labels
	cellWidth   = 3
	statusRow   = chess.BoardSize + 1
	promptRow   = chess.BoardSize + 2
	logRow      = chess.BoardSize + 4
	maxLogLines = 5
)

var (
	lightStyle  = tcell.StyleDefault.Background(tcell.NewRGBColor(0xf0, 0xd9, 0xb5)).Foreground(tcell.ColorBlack)
	darkStyle   = tcell.StyleDefault.Background(tcell.NewRGBColor(0xb5, 0x88, 0x63)).Foreground(tcell.ColorBlack)
	selectStyle = tcell.StyleDefault.Background(tcell.NewRGBColor(0xcd, 0xd2, 0x6a)).Foreground(tcell.ColorBlack)
	errorStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// ActionKind says what an input event asks the game to do.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionQuit
	// ActionText carries typed move text such as "e2e4".
	ActionText
	// ActionMove carries a move picked with two mouse clicks.
	ActionMove
)

// Action is the result of handling one terminal event.
type Action struct {
	Kind     ActionKind
	Text     string
	From, To chess.Coord
}

// Screen draws the game on a terminal and implements game.Host.
// It is driven from a single goroutine.
type Screen struct {
	screen   tcell.Screen
	board    *chess.Board
	status   game.Status
	logs     []string
	fatal    error
	input    []rune
	selected chess.Coord
}

var _ game.Host = (*Screen)(nil)

// NewScreen wraps an initialized tcell screen.
func NewScreen(s tcell.Screen) *Screen {
	s.EnableMouse()
	return &Screen{
		screen:   s,
		board:    chess.NewBoard(),
		selected: chess.NoCoord,
	}
}

// Log implements game.Host. Only the most recent lines are kept.
func (s *Screen) Log(msg string) {
	s.logs = append(s.logs, msg)
	if len(s.logs) > maxLogLines {
		s.logs = s.logs[len(s.logs)-maxLogLines:]
	}
	s.draw()
}

// Fatal implements game.Host.
func (s *Screen) Fatal(err error) {
	s.fatal = err
	s.draw()
}

// Err returns the error passed to Fatal, if any.
func (s *Screen) Err() error {
	return s.fatal
}

// SetStatus implements game.Host.
func (s *Screen) SetStatus(status game.Status) {
	s.status = status
}

// Redraw implements game.Host.
func (s *Screen) Redraw(board *chess.Board) {
	s.board = board
	s.draw()
}

// SquareAt maps a terminal cell to a board square.
func (s *Screen) SquareAt(x, y int) (chess.Coord, bool) {
	if x < boardLeft || y < 0 || y >= chess.BoardSize {
		return chess.NoCoord, false
	}
	c := chess.Sq((x-boardLeft)/cellWidth, chess.BoardSize-1-y)
	return c, c.Valid()
}

// HandleEvent turns one terminal event into an Action.
func (s *Screen) HandleEvent(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.screen.Sync()
		s.draw()
	case *tcell.EventKey:
		return s.handleKey(ev)
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			return s.handleClick(ev.Position())
		}
	}
	return Action{}
}

func (s *Screen) handleKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Action{Kind: ActionQuit}
	case tcell.KeyEnter:
		text := string(s.input)
		s.input = s.input[:0]
		s.draw()
		if text == "" {
			return Action{}
		}
		return Action{Kind: ActionText, Text: text}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(s.input) > 0 {
			s.input = s.input[:len(s.input)-1]
			s.draw()
		}
	case tcell.KeyRune:
		if ev.Rune() == 'q' && len(s.input) == 0 {
			return Action{Kind: ActionQuit}
		}
		s.input = append(s.input, ev.Rune())
		s.draw()
	}
	return Action{}
}

func (s *Screen) handleClick(x, y int) Action {
	sq, ok := s.SquareAt(x, y)
	if !ok {
		return Action{}
	}
	if s.selected == chess.NoCoord {
		s.selected = sq
		s.draw()
		return Action{}
	}
	from := s.selected
	s.selected = chess.NoCoord
	if from == sq {
		s.draw()
		return Action{}
	}
	return Action{Kind: ActionMove, From: from, To: sq}
}

func (s *Screen) draw() {
	s.screen.Clear()
	for rank := 0; rank < chess.BoardSize; rank++ {
		y := chess.BoardSize - 1 - rank
		s.put(0, y, fmt.Sprintf("%d", rank+1), tcell.StyleDefault)
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Sq(file, rank)
			style := darkStyle
			switch {
			case sq == s.selected:
				style = selectStyle
			case (file+rank)%2 == 1:
				style = lightStyle
			}
			x := boardLeft + file*cellWidth
			s.put(x, y, " "+string(Glyph(s.board.Get(sq)))+" ", style)
		}
	}
	for file := 0; file < chess.BoardSize; file++ {
		s.put(boardLeft+file*cellWidth+1, chess.BoardSize, string(rune('a'+file)), tcell.StyleDefault)
	}

	s.put(0, statusRow, fmt.Sprintf("%s: %s", s.board.ToMove, s.status), tcell.StyleDefault)
	s.put(0, promptRow, "> "+string(s.input), tcell.StyleDefault)
	for i, line := range s.logs {
		s.put(0, logRow+i, line, tcell.StyleDefault)
	}
	if s.fatal != nil {
		s.put(0, logRow+maxLogLines+1, "fatal: "+s.fatal.Error(), errorStyle)
	}
	s.screen.Show()
}

func (s *Screen) put(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
