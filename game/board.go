package game

import "fmt"

// Board holds the locked cells as a stack of row bitmasks, index 0 at the
// bottom. Rows exist only up to the highest locked cell; the stack grows by
// appending as pieces lock above it. Nothing here caps how tall the stack
// gets, the session ends through spawn collision instead.
type Board struct {
	width int
	full  Row
	rows  []Row
}

// NewBoard creates an empty board. Widths outside 1..64 cannot be packed
// into a Row and panic.
func NewBoard(width int) *Board {
	if width < 1 || width > 64 {
		panic(fmt.Sprintf("board width %d out of range 1..64", width))
	}
	return &Board{width: width, full: Row(1)<<width - 1}
}

func (b *Board) Width() int {
	return b.width
}

// Height returns the number of stored rows, i.e. the top of the stack.
func (b *Board) Height() int {
	return len(b.rows)
}

// FullRow is the mask a stored row equals exactly when every column is
// occupied.
func (b *Board) FullRow() Row {
	return b.full
}

// Row returns the mask stored at index i. Indices above the stack are empty
// by definition and return 0.
func (b *Board) Row(i int) Row {
	if i < 0 || i >= len(b.rows) {
		return 0
	}
	return b.rows[i]
}

// Rows returns a copy of the stored rows, bottom first.
func (b *Board) Rows() []Row {
	out := make([]Row, len(b.rows))
	copy(out, b.rows)
	return out
}

// Clone returns an independent copy, used by placement search to try
// hypothetical locks.
func (b *Board) Clone() *Board {
	c := &Board{width: b.width, full: b.full, rows: make([]Row, len(b.rows))}
	copy(c.rows, b.rows)
	return c
}

// Fits reports whether the piece sits inside the floor and side walls and
// overlaps no locked cell. There is no ceiling check: rows above the stack
// are empty, so anything up there fits as long as the walls allow it.
func (b *Board) Fits(p Piece) bool {
	row, col := p.Position()
	if row < 0 || col < 0 || col+p.Width() > b.width {
		return false
	}
	for i, mask := range p.OccupiedRows() {
		r := row + i
		if r >= len(b.rows) {
			break
		}
		if b.rows[r]&mask != 0 {
			return false
		}
	}
	return true
}

// Merge ORs the given row masks into the board starting at startRow,
// appending new rows where the piece reaches above the current stack.
func (b *Board) Merge(rows []Row, startRow int) {
	for i, mask := range rows {
		r := startRow + i
		if r < len(b.rows) {
			b.rows[r] |= mask
		} else {
			b.rows = append(b.rows, mask)
		}
	}
}

// ClearFullRows deletes every completely filled row, keeps the rest in
// order, and returns how many were removed. Everything above a cleared row
// shifts down by the number of cleared rows below it.
func (b *Board) ClearFullRows() int {
	kept := b.rows[:0]
	for _, r := range b.rows {
		if r != b.full {
			kept = append(kept, r)
		}
	}
	cleared := len(b.rows) - len(kept)
	b.rows = kept
	return cleared
}
