package game

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
)

// Game is the controller for one play session. It owns the board, the
// falling piece and the hold slot, and it is the only code that commits
// piece positions, so the placement invariant (in bounds, no overlap) holds
// between any two calls.
//
// A session that has ended stays around for inspection: every mutating
// operation turns into a no-op once Over reports true. Starting over means
// building a fresh Game and dropping this one, there is no reset in here.
//
// Game is not safe for concurrent use. The driver is a single loop.
type Game struct {
	rules Rules
	board *Board
	piece Piece

	held          *ShapeID
	holdAvailable bool

	cleared int
	locked  int
	over    bool

	pick func() ShapeID
}

// Option configures a Game at construction.
type Option func(*Game)

// WithSeed makes the shape sequence deterministic for the given seed.
func WithSeed(seed uint64) Option {
	return func(g *Game) {
		rng := rand.New(rand.NewSource(seed))
		g.pick = func() ShapeID { return ShapeID(rng.Intn(NumShapes)) }
	}
}

// WithPicker replaces shape selection entirely. Tests use it to script
// exact spawn sequences.
func WithPicker(pick func() ShapeID) Option {
	return func(g *Game) { g.pick = pick }
}

// NewGame starts a session with an empty board and the first piece already
// spawned. Without options the shape sequence is seeded from the clock.
func NewGame(rules Rules, opts ...Option) *Game {
	if w := rules.BoardWidth(); w < 1 || w > 64 {
		panic(fmt.Sprintf("board width %d out of range 1..64", w))
	}
	if h := rules.BoardHeight(); h < maxShapeHeight {
		panic(fmt.Sprintf("board height %d cannot fit the tallest piece", h))
	}
	g := &Game{
		rules:         rules,
		board:         NewBoard(rules.BoardWidth()),
		holdAvailable: true,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.pick == nil {
		WithSeed(uint64(time.Now().UnixNano()))(g)
	}
	g.spawn(g.pick())
	return g
}

// spawn replaces the falling piece with a fresh one of the given shape at
// the spawn position: bounding box flush with the top of the board, anchor
// column at half the board width. A spawn that collides with the stack ends
// the session; the colliding piece stays as the terminal falling piece so
// the last frame still shows where it jammed.
func (g *Game) spawn(id ShapeID) {
	height := ShapeByID(id).variants[RotSpawn].height
	p := NewPiece(id, RotSpawn, g.rules.BoardHeight()-height, g.rules.BoardWidth()/2)
	g.piece = p
	if !g.board.Fits(p) {
		g.over = true
	}
}

// MoveDown advances the piece one row toward the floor and reports whether
// it moved. A refused move is the lock trigger: the piece merges into the
// stack, full rows clear, the hold slot reopens and the next piece spawns.
func (g *Game) MoveDown() bool {
	if g.over {
		return false
	}
	if moved := g.piece.Moved(-1, 0); g.board.Fits(moved) {
		g.piece = moved
		return true
	}
	g.lock()
	return false
}

// MoveLeft shifts the piece one column left if the board allows it.
func (g *Game) MoveLeft() {
	g.tryPiece(g.piece.Moved(0, -1))
}

// MoveRight shifts the piece one column right if the board allows it.
func (g *Game) MoveRight() {
	g.tryPiece(g.piece.Moved(0, 1))
}

// RotateRight turns the piece one step clockwise. An orientation that does
// not fit at the current anchor is refused outright; there are no wall
// kicks.
func (g *Game) RotateRight() {
	g.tryPiece(g.piece.RotatedRight())
}

// RotateLeft turns the piece one step counterclockwise.
func (g *Game) RotateLeft() {
	g.tryPiece(g.piece.RotatedLeft())
}

// Drop sends the piece straight down until the refused move locks it.
func (g *Game) Drop() {
	for g.MoveDown() {
	}
}

// Hold stashes the falling shape. The first hold of a cycle stores it and
// spawns a replacement; later holds swap the stored shape back in as a
// fresh spawn. Only one hold is allowed per lock cycle, further attempts do
// nothing and in particular do not burn the slot for the next cycle.
func (g *Game) Hold() {
	if g.over {
		return
	}
	current := g.piece.Shape()
	switch {
	case g.held == nil:
		g.held = &current
		g.spawn(g.pick())
	case g.holdAvailable:
		swapped := *g.held
		g.held = &current
		g.spawn(swapped)
	default:
		return
	}
	g.holdAvailable = false
}

func (g *Game) tryPiece(candidate Piece) {
	if g.over {
		return
	}
	if g.board.Fits(candidate) {
		g.piece = candidate
	}
}

func (g *Game) lock() {
	row, _ := g.piece.Position()
	g.board.Merge(g.piece.OccupiedRows(), row)
	g.cleared += g.board.ClearFullRows()
	g.locked++
	g.holdAvailable = true
	g.spawn(g.pick())
}

// Apply runs one driver action against the session. ActionRestart is the
// driver's job (it swaps in a new Game) and ActionNone is idle, both fall
// through untouched. The return value mirrors MoveDown for that action and
// is true for every other.
func (g *Game) Apply(a Action) bool {
	switch a {
	case ActionMoveDown:
		return g.MoveDown()
	case ActionMoveLeft:
		g.MoveLeft()
	case ActionMoveRight:
		g.MoveRight()
	case ActionHardDrop:
		g.Drop()
	case ActionRotateRight:
		g.RotateRight()
	case ActionRotateLeft:
		g.RotateLeft()
	case ActionHold:
		g.Hold()
	}
	return true
}

// Lines returns the cumulative number of cleared rows.
func (g *Game) Lines() int {
	return g.cleared
}

// Pieces returns how many pieces have locked into the stack.
func (g *Game) Pieces() int {
	return g.locked
}

// Level is derived on demand: the starting level plus one per ten cleared
// rows. Nothing stores it.
func (g *Game) Level() int {
	return g.rules.StartingLevel() + g.cleared/10
}

// Over reports whether the session has ended.
func (g *Game) Over() bool {
	return g.over
}

// Held returns the stashed shape, if any.
func (g *Game) Held() (ShapeID, bool) {
	if g.held == nil {
		return 0, false
	}
	return *g.held, true
}

// HoldAvailable reports whether a swap is still allowed this lock cycle.
func (g *Game) HoldAvailable() bool {
	return g.holdAvailable
}

// CurrentPiece returns a copy of the falling piece.
func (g *Game) CurrentPiece() Piece {
	return g.piece
}

// BoardSnapshot returns an independent copy of the locked stack.
func (g *Game) BoardSnapshot() *Board {
	return g.board.Clone()
}

// Rules returns the session parameters the game was built with.
func (g *Game) Rules() Rules {
	return g.rules
}
