package game

import "strings"

// Frame is the read-only view a renderer consumes: the visible board with
// the falling piece already composited onto the locked cells, plus the
// readout values. Rows run top to bottom, ready to draw. Frames share
// nothing with the live session.
type Frame struct {
	Width  int
	Height int
	Rows   []Row
	Hold   *ShapeFrame
	Lines  int
	Level  int
	Over   bool
}

// ShapeFrame is the hold box content: the stored shape in its spawn
// orientation, rows top to bottom.
type ShapeFrame struct {
	Shape  ShapeID
	Width  int
	Height int
	Rows   []Row
}

// Frame builds the current visual snapshot.
func (g *Game) Frame() Frame {
	width := g.rules.BoardWidth()
	height := g.rules.BoardHeight()
	pieceRows := g.piece.OccupiedRows()
	pieceBottom, _ := g.piece.Position()

	rows := make([]Row, 0, height)
	for r := height - 1; r >= 0; r-- {
		row := g.board.Row(r)
		if i := r - pieceBottom; i >= 0 && i < len(pieceRows) {
			row |= pieceRows[i]
		}
		rows = append(rows, row)
	}

	f := Frame{
		Width:  width,
		Height: height,
		Rows:   rows,
		Lines:  g.cleared,
		Level:  g.Level(),
		Over:   g.over,
	}
	if g.held != nil {
		f.Hold = newShapeFrame(*g.held)
	}
	return f
}

func newShapeFrame(id ShapeID) *ShapeFrame {
	v := ShapeByID(id).variants[RotSpawn]
	rows := make([]Row, v.height)
	for i, r := range v.rows {
		rows[v.height-1-i] = r
	}
	return &ShapeFrame{Shape: id, Width: v.width, Height: v.height, Rows: rows}
}

// String renders the board as text, one line per row from the top, '#' for
// occupied and '.' for empty. Handy in logs and test failures.
func (f Frame) String() string {
	var sb strings.Builder
	for i, row := range f.Rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		writeRow(&sb, row, f.Width)
	}
	return sb.String()
}

func (sf ShapeFrame) String() string {
	var sb strings.Builder
	for i, row := range sf.Rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		writeRow(&sb, row, sf.Width)
	}
	return sb.String()
}

func writeRow(sb *strings.Builder, row Row, width int) {
	for c := 0; c < width; c++ {
		if row>>c&1 == 1 {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('.')
		}
	}
}
