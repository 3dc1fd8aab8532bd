package engine

import "tetris/game"

// ActionSource hands the engine at most one pending action per poll. Poll
// must never block: an idle source returns ActionNone and the loop moves on
// to the gravity check. Closed reports that no further input can arrive, at
// which point Run returns.
type ActionSource interface {
	Poll() game.Action
	Closed() bool
}

// Combine chains sources in priority order: the first pending action wins,
// and the whole source closes as soon as any part does. The terminal runs
// the keyboard ahead of the bot this way, so quit and restart stay in the
// player's hands while the bot drives the piece.
func Combine(sources ...ActionSource) ActionSource {
	return combined(sources)
}

type combined []ActionSource

func (c combined) Poll() game.Action {
	for _, s := range c {
		if a := s.Poll(); a != game.ActionNone {
			return a
		}
	}
	return game.ActionNone
}

func (c combined) Closed() bool {
	for _, s := range c {
		if s.Closed() {
			return true
		}
	}
	return false
}
