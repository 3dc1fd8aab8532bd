package game

import "math/bits"

// Row is one horizontal line of cells packed into a bitmask. Bit i set means
// column i is occupied; column 0 is the leftmost rendered column. A single
// uint64 covers every legal board width, so overlap checks are one AND.
type Row uint64

// ShapeID identifies one of the seven canonical piece geometries.
type ShapeID int

const (
	ShapeO ShapeID = iota
	ShapeI
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
	ShapeT
)

const NumShapes = 7

// maxShapeHeight is the tallest bounding box over every shape and rotation
// (the upright I piece). Spawn placement needs at least this much headroom.
const maxShapeHeight = 4

func (id ShapeID) String() string {
	switch id {
	case ShapeO:
		return "O"
	case ShapeI:
		return "I"
	case ShapeS:
		return "S"
	case ShapeZ:
		return "Z"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	case ShapeT:
		return "T"
	default:
		return "?"
	}
}

// variant is one orientation of a shape: its rows bottom-first, trimmed to
// the bounding box, plus the box dimensions.
type variant struct {
	rows   []Row
	width  int
	height int
}

// Shape is an immutable piece geometry with all four orientations
// precomputed at package init. Instances are shared; nothing mutates them.
type Shape struct {
	id       ShapeID
	variants [4]variant
}

// base geometries, bottom row first
var baseRows = [NumShapes][]Row{
	ShapeO: {0b11, 0b11},
	ShapeI: {0b1, 0b1, 0b1, 0b1},
	ShapeS: {0b011, 0b110},
	ShapeZ: {0b110, 0b011},
	ShapeJ: {0b11, 0b10, 0b10},
	ShapeL: {0b11, 0b01, 0b01},
	ShapeT: {0b010, 0b111},
}

var shapes = buildShapes()

// ShapeByID returns the shared shape for id.
func ShapeByID(id ShapeID) *Shape {
	return shapes[id]
}

func (s *Shape) ID() ShapeID {
	return s.id
}

func buildShapes() [NumShapes]*Shape {
	var out [NumShapes]*Shape
	for id := ShapeO; id < NumShapes; id++ {
		base := newVariant(baseRows[id])
		once := rotateOnce(base)
		twice := rotateOnce(once)
		thrice := rotateOnce(twice)

		s := &Shape{id: id}
		// One transform step turns the shape counterclockwise, so the
		// clockwise orientation sits three steps from spawn.
		s.variants[RotSpawn] = base
		s.variants[RotLeft] = once
		s.variants[RotFlip] = twice
		s.variants[RotRight] = thrice
		out[id] = s
	}
	return out
}

func newVariant(rows []Row) variant {
	width := 0
	for _, r := range rows {
		if n := bits.Len64(uint64(r)); n > width {
			width = n
		}
	}
	return variant{rows: rows, width: width, height: len(rows)}
}

// rotateOnce turns a variant 90 degrees counterclockwise: new row k takes
// its bit j from old row height-1-j, bit k. The bounding box swaps sides.
func rotateOnce(v variant) variant {
	rows := make([]Row, v.width)
	for k := 0; k < v.width; k++ {
		var row Row
		for j := 0; j < v.height; j++ {
			if v.rows[v.height-1-j]>>k&1 == 1 {
				row |= 1 << j
			}
		}
		rows[k] = row
	}
	return newVariant(rows)
}
