package game

import "time"

// Rules supplies the session parameters: board dimensions, the starting
// level, and how fast gravity runs at a given level.
type Rules interface {
	BoardWidth() int
	BoardHeight() int
	StartingLevel() int
	// GravityInterval returns the wait between automatic downward moves at
	// the given level.
	GravityInterval(level int) time.Duration
}
