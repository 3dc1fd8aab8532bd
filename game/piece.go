package game

// Piece is a live instance of a shape on the board: an orientation plus the
// position of the orientation's bounding box. Row is the board row of the
// bottom row of the box, Col the board column of its bit-0 column.
//
// Piece is a value type. Moved and the Rotated pair return candidates
// without touching the original; the Game commits a candidate only after
// the board validates it, so no revert step exists anywhere.
type Piece struct {
	shape *Shape
	rot   Rotation
	row   int
	col   int
}

// NewPiece places a shape at the given position without validating it.
func NewPiece(id ShapeID, rot Rotation, row, col int) Piece {
	return Piece{shape: ShapeByID(id), rot: rot, row: row, col: col}
}

func (p Piece) Shape() ShapeID {
	return p.shape.id
}

func (p Piece) Rotation() Rotation {
	return p.rot
}

// Position returns the board coordinates of the bounding box anchor.
func (p Piece) Position() (row, col int) {
	return p.row, p.col
}

func (p Piece) Width() int {
	return p.shape.variants[p.rot].width
}

func (p Piece) Height() int {
	return p.shape.variants[p.rot].height
}

// OccupiedRows returns the piece's row masks shifted to its board columns,
// bottom row first. Overlap against stored board rows is then one AND each.
func (p Piece) OccupiedRows() []Row {
	v := p.shape.variants[p.rot]
	rows := make([]Row, v.height)
	for i, r := range v.rows {
		rows[i] = r << p.col
	}
	return rows
}

// Moved returns a copy translated by the given row and column deltas.
func (p Piece) Moved(dRow, dCol int) Piece {
	p.row += dRow
	p.col += dCol
	return p
}

// RotatedRight returns a copy turned one step clockwise. The anchor stays
// put; only the orientation changes.
func (p Piece) RotatedRight() Piece {
	p.rot = p.rot.Clockwise()
	return p
}

// RotatedLeft returns a copy turned one step counterclockwise.
func (p Piece) RotatedLeft() Piece {
	p.rot = p.rot.CounterClockwise()
	return p
}
