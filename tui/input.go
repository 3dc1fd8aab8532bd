package tui

import (
	"github.com/gdamore/tcell/v2"

	"tetris/game"
)

var runeActions = map[rune]game.Action{
	' ': game.ActionHardDrop,
	'x': game.ActionRotateRight,
	'z': game.ActionRotateLeft,
	'c': game.ActionHold,
	'r': game.ActionRestart,
}

var keyActions = map[tcell.Key]game.Action{
	tcell.KeyDown:  game.ActionMoveDown,
	tcell.KeyLeft:  game.ActionMoveLeft,
	tcell.KeyRight: game.ActionMoveRight,
	tcell.KeyUp:    game.ActionRotateRight,
}

// Input pumps tcell key events into actions. It implements
// engine.ActionSource: the engine polls it between frames while a
// goroutine blocks on the terminal.
type Input struct {
	actions chan game.Action
	quit    chan struct{}
}

// NewInput starts the event pump on the given screen.
func NewInput(tc tcell.Screen) *Input {
	in := &Input{
		actions: make(chan game.Action, 8),
		quit:    make(chan struct{}),
	}
	go in.pump(tc)
	return in
}

func (in *Input) pump(tc tcell.Screen) {
	for {
		switch ev := tc.PollEvent().(type) {
		case *tcell.EventResize:
			tc.Sync()
		case *tcell.EventKey:
			action, ok := translate(ev)
			if !ok {
				close(in.quit)
				return
			}
			select {
			case in.actions <- action:
			default:
				// the engine is behind, drop the key
			}
		case nil:
			// screen finalized under us
			close(in.quit)
			return
		}
	}
}

// translate maps a key event to an action. ok is false for the quit keys.
func translate(ev *tcell.EventKey) (game.Action, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.ActionNone, false
	case tcell.KeyRune:
		r := ev.Rune()
		if r == 'q' {
			return game.ActionNone, false
		}
		if action, ok := runeActions[r]; ok {
			return action, true
		}
		return game.ActionNone, true
	default:
		if action, ok := keyActions[ev.Key()]; ok {
			return action, true
		}
		return game.ActionNone, true
	}
}

// Poll implements engine.ActionSource.
func (in *Input) Poll() game.Action {
	select {
	case action := <-in.actions:
		return action
	default:
		return game.ActionNone
	}
}

// Closed implements engine.ActionSource.
func (in *Input) Closed() bool {
	select {
	case <-in.quit:
		return true
	default:
		return false
	}
}
