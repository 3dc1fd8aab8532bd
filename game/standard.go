package game

import "time"

// StandardRules is the classic ruleset: a 10x20 board and gravity that
// starts at 800ms per row, speeding up by 50ms per level. The fields are
// exported so callers can tweak a copy before handing it to NewGame.
type StandardRules struct {
	Width  int
	Height int
	Level  int

	BaseInterval time.Duration
	LevelStep    time.Duration
	MinInterval  time.Duration
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		Width:        10,
		Height:       20,
		BaseInterval: 800 * time.Millisecond,
		LevelStep:    50 * time.Millisecond,
		MinInterval:  50 * time.Millisecond,
	}
}

func (sr *StandardRules) BoardWidth() int {
	return sr.Width
}

func (sr *StandardRules) BoardHeight() int {
	return sr.Height
}

func (sr *StandardRules) StartingLevel() int {
	return sr.Level
}

// GravityInterval never returns less than MinInterval, so a long session
// keeps a positive wait instead of sliding into a busy loop past level 16.
func (sr *StandardRules) GravityInterval(level int) time.Duration {
	interval := sr.BaseInterval - time.Duration(level)*sr.LevelStep
	if interval < sr.MinInterval {
		return sr.MinInterval
	}
	return interval
}
