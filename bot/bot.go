package bot

import (
	"math"

	"golang.org/x/exp/rand"

	"tetris/game"
)

// Bot is a self-playing action source. Each time a new piece spawns it
// scores every placement reachable by rotating at the spawn anchor, sliding
// sideways and dropping, then replays the best one as a queue of actions,
// one per poll.
//
// The search assumes the rows around the spawn anchor are open, which holds
// until the stack is about to end the session anyway. A plan invalidated by
// gravity mid-replay just locks the piece short; the next spawn replans.
type Bot struct {
	weights Weights
	session func() *game.Game
	rng     *rand.Rand

	lastSession *game.Game
	lastPieces  int
	queue       []game.Action
}

// New builds a bot reading the live game through session. The accessor
// matters because the engine replaces the game on restart; a cached pointer
// would leave the bot driving a dead session.
func New(w Weights, session func() *game.Game, seed uint64) *Bot {
	return &Bot{
		weights: w,
		session: session,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Poll implements engine.ActionSource.
func (b *Bot) Poll() game.Action {
	g := b.session()
	if g == nil || g.Over() {
		return game.ActionNone
	}
	if g != b.lastSession || g.Pieces() != b.lastPieces {
		b.lastSession = g
		b.lastPieces = g.Pieces()
		b.queue = b.plan(g)
	}
	if len(b.queue) == 0 {
		return game.ActionNone
	}
	a := b.queue[0]
	b.queue = b.queue[1:]
	return a
}

// Closed implements engine.ActionSource; the bot never runs out of moves.
func (b *Bot) Closed() bool {
	return false
}

func (b *Bot) plan(g *game.Game) []game.Action {
	board := g.BoardSnapshot()
	current := g.CurrentPiece()
	best, ok := b.searchPlacement(board, current)
	if !ok {
		// nowhere to go, get rid of the piece
		return []game.Action{game.ActionHardDrop}
	}
	return actionsTo(current, best)
}

// searchPlacement tries every orientation that fits at the spawn anchor and
// every column the walls allow, drops each candidate and keeps the best
// scoring resting position. Ties break on a coin flip so equal stacks do
// not always pile up on the left.
func (b *Bot) searchPlacement(board *game.Board, start game.Piece) (game.Piece, bool) {
	var best game.Piece
	bestScore := math.Inf(-1)
	found := false

	p := start
	for r := 0; r < 4; r++ {
		if r > 0 {
			p = p.RotatedRight()
			if !board.Fits(p) {
				continue
			}
		}
		_, anchorCol := p.Position()
		for col := 0; col <= board.Width()-p.Width(); col++ {
			cand := p.Moved(0, col-anchorCol)
			if !board.Fits(cand) {
				continue
			}
			rested := dropPiece(board, cand)
			score := b.weights.score(board, rested)
			if score > bestScore || (score == bestScore && b.rng.Intn(2) == 0) {
				bestScore = score
				best = rested
				found = true
			}
		}
	}
	return best, found
}

// dropPiece returns where the piece comes to rest straight below its
// current position.
func dropPiece(board *game.Board, p game.Piece) game.Piece {
	for {
		below := p.Moved(-1, 0)
		if !board.Fits(below) {
			return p
		}
		p = below
	}
}

// actionsTo rebuilds the key sequence from the spawn state to the chosen
// placement: rotations first, then sideways moves, then the hard drop.
func actionsTo(from, to game.Piece) []game.Action {
	var out []game.Action
	for rot := from.Rotation(); rot != to.Rotation(); rot = rot.Clockwise() {
		out = append(out, game.ActionRotateRight)
	}
	_, fromCol := from.Position()
	_, toCol := to.Position()
	for col := fromCol; col < toCol; col++ {
		out = append(out, game.ActionMoveRight)
	}
	for col := fromCol; col > toCol; col-- {
		out = append(out, game.ActionMoveLeft)
	}
	return append(out, game.ActionHardDrop)
}
