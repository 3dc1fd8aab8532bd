package game

// Rotation is one of the four orientations a piece can hold. The zero value
// is the spawn orientation.
type Rotation int

const (
	RotSpawn Rotation = iota
	RotRight
	RotFlip
	RotLeft
)

// The cyclic order is spelled out rather than computed with modular
// arithmetic so the clockwise/counterclockwise pairing stays explicit.
var cwNext = [4]Rotation{
	RotSpawn: RotRight,
	RotRight: RotFlip,
	RotFlip:  RotLeft,
	RotLeft:  RotSpawn,
}

var ccwNext = [4]Rotation{
	RotSpawn: RotLeft,
	RotLeft:  RotFlip,
	RotFlip:  RotRight,
	RotRight: RotSpawn,
}

// Clockwise returns the orientation one rotate-right step away.
func (r Rotation) Clockwise() Rotation {
	return cwNext[r]
}

// CounterClockwise returns the orientation one rotate-left step away.
func (r Rotation) CounterClockwise() Rotation {
	return ccwNext[r]
}

func (r Rotation) String() string {
	switch r {
	case RotSpawn:
		return "spawn"
	case RotRight:
		return "right"
	case RotFlip:
		return "flip"
	case RotLeft:
		return "left"
	default:
		return "?"
	}
}
