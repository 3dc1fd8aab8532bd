package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"tetris/game"
)

// one board cell is two terminal columns, which renders roughly square
const cellWidth = 2

var (
	styleFilled = tcell.StyleDefault.Background(tcell.ColorWhite)
	styleEmpty  = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
)

// Screen draws frames onto a tcell terminal screen. It implements
// engine.Renderer.
type Screen struct {
	tc tcell.Screen
}

// NewScreen takes over the terminal. Call Fini before the process prints
// anything else.
func NewScreen() (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := tc.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	tc.SetStyle(tcell.StyleDefault)
	tc.HideCursor()
	return &Screen{tc: tc}, nil
}

// Fini hands the terminal back.
func (s *Screen) Fini() {
	s.tc.Fini()
}

// Tcell exposes the underlying screen so the input pump can poll its
// events.
func (s *Screen) Tcell() tcell.Screen {
	return s.tc
}

// Render implements engine.Renderer.
func (s *Screen) Render(f game.Frame) {
	s.tc.Clear()

	for y, row := range f.Rows {
		s.drawRow(0, y, row, f.Width)
	}

	// side panel to the right of the board
	x := f.Width*cellWidth + 2
	s.drawText(x, 0, fmt.Sprintf("LINES %d", f.Lines))
	s.drawText(x, 1, fmt.Sprintf("LEVEL %d", f.Level))

	s.drawText(x, 3, "HOLD")
	if f.Hold != nil {
		for y, row := range f.Hold.Rows {
			s.drawRow(x, 4+y, row, f.Hold.Width)
		}
	}

	if f.Over {
		s.drawText(x, 9, "GAME OVER")
		s.drawText(x, 10, "r restarts, q quits")
	}

	s.tc.Show()
}

func (s *Screen) drawRow(x, y int, row game.Row, width int) {
	for c := 0; c < width; c++ {
		style := styleEmpty
		if row>>c&1 == 1 {
			style = styleFilled
		}
		s.tc.SetContent(x+c*cellWidth, y, ' ', nil, style)
		s.tc.SetContent(x+c*cellWidth+1, y, ' ', nil, style)
	}
}

func (s *Screen) drawText(x, y int, text string) {
	for i, r := range text {
		s.tc.SetContent(x+i, y, r, nil, styleText)
	}
}
