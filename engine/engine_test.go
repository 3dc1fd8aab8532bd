package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tetris/game"
	"tetris/metrics"
)

// fakeClock only moves when the test says so.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(0, 0)}
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Sleep(d time.Duration)   { c.now = c.now.Add(d) }
func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

// script replays a fixed action sequence, then stays idle.
type script struct {
	actions []game.Action
	closed  bool
}

func (s *script) Poll() game.Action {
	if len(s.actions) == 0 {
		return game.ActionNone
	}
	a := s.actions[0]
	s.actions = s.actions[1:]
	return a
}

func (s *script) Closed() bool { return s.closed }

func TestGravityWaitsForTheInterval(t *testing.T) {
	clock := newFakeClock()
	eng := New(Config{Clock: clock, Seed: 1})

	row0, _ := eng.Session().CurrentPiece().Position()

	require.True(t, eng.Step())
	row, _ := eng.Session().CurrentPiece().Position()
	require.Equal(t, row0, row, "no time passed, no gravity")

	clock.advance(799 * time.Millisecond)
	eng.Step()
	row, _ = eng.Session().CurrentPiece().Position()
	require.Equal(t, row0, row, "one millisecond short of the interval")

	clock.advance(1 * time.Millisecond)
	eng.Step()
	row, _ = eng.Session().CurrentPiece().Position()
	require.Equal(t, row0-1, row, "the interval elapsed")

	clock.advance(800 * time.Millisecond)
	eng.Step()
	row, _ = eng.Session().CurrentPiece().Position()
	require.Equal(t, row0-2, row, "the timer reset after the first tick")
}

func TestGravityIntervalFollowsLevel(t *testing.T) {
	rules := game.NewStandardRules()
	rules.Level = 10 // 300ms per row

	clock := newFakeClock()
	eng := New(Config{Rules: rules, Clock: clock, Seed: 1})
	row0, _ := eng.Session().CurrentPiece().Position()

	clock.advance(299 * time.Millisecond)
	eng.Step()
	row, _ := eng.Session().CurrentPiece().Position()
	require.Equal(t, row0, row)

	clock.advance(1 * time.Millisecond)
	eng.Step()
	row, _ = eng.Session().CurrentPiece().Position()
	require.Equal(t, row0-1, row)
}

func TestStepAppliesOneAction(t *testing.T) {
	src := &script{actions: []game.Action{game.ActionMoveLeft, game.ActionMoveLeft}}
	eng := New(Config{Source: src, Clock: newFakeClock(), Seed: 1})

	eng.Step()
	_, col := eng.Session().CurrentPiece().Position()
	require.Equal(t, 4, col, "one step consumes exactly one queued action")

	eng.Step()
	_, col = eng.Session().CurrentPiece().Position()
	require.Equal(t, 3, col)
}

func TestRestartSwapsInAFreshSession(t *testing.T) {
	src := &script{actions: []game.Action{game.ActionHardDrop, game.ActionRestart}}
	eng := New(Config{
		Source:    src,
		Clock:     newFakeClock(),
		Collector: metrics.NewCollector(),
		Seed:      7,
	})

	eng.Step() // hard drop locks a piece
	old := eng.Session()
	require.Equal(t, 1, old.Pieces())

	eng.Step() // restart
	require.NotSame(t, old, eng.Session(), "restart must build a new game")
	require.Equal(t, 0, eng.Session().Pieces())
	require.Equal(t, 0, eng.Session().BoardSnapshot().Height())

	records := eng.Records()
	require.Len(t, records, 1, "the replaced session was completed")
	require.Equal(t, uint64(7), records[0].Seed)
	require.Equal(t, 1, records[0].Pieces)
	require.False(t, records[0].GameOver)
}

func TestRunStopsWhenTheSourceCloses(t *testing.T) {
	src := &script{closed: true}
	eng := New(Config{Source: src, Clock: newFakeClock(), Collector: metrics.NewCollector()})

	eng.Run() // must return immediately instead of looping forever
	require.Len(t, eng.Records(), 1)
}

func TestStopEndsTheLoop(t *testing.T) {
	eng := New(Config{Clock: newFakeClock(), Seed: 1})
	eng.Stop()
	require.False(t, eng.Step())
}

func TestCollectorSeesLocksAndFinish(t *testing.T) {
	src := &script{actions: []game.Action{game.ActionHardDrop, game.ActionHardDrop}}
	eng := New(Config{
		Source:    src,
		Clock:     newFakeClock(),
		Collector: metrics.NewCollector(),
		Seed:      3,
	})

	eng.Step()
	eng.Step()

	m := eng.Finish()
	require.Equal(t, 2, m.Pieces)
	require.Equal(t, uint64(3), m.Seed)
	require.False(t, m.GameOver)

	require.Equal(t, m, eng.Finish(), "a second finish must not add records")
	require.Len(t, eng.Records(), 1)
}

func TestEngineOutlivesGameOver(t *testing.T) {
	clock := newFakeClock()
	eng := New(Config{Clock: clock, Collector: metrics.NewCollector(), Seed: 11})

	// gravity alone fills the column at the spawn anchor eventually
	for i := 0; i < 20000 && !eng.Session().Over(); i++ {
		clock.advance(800 * time.Millisecond)
		eng.Step()
	}
	require.True(t, eng.Session().Over())
	require.True(t, eng.Step(), "the loop keeps polling so a restart can arrive")

	m := eng.Finish()
	require.True(t, m.GameOver)
	require.Equal(t, eng.Session().Pieces(), m.Pieces)
}

func TestRestartWorksFromGameOver(t *testing.T) {
	clock := newFakeClock()
	eng := New(Config{Clock: clock, Collector: metrics.NewCollector(), Seed: 11})

	for i := 0; i < 20000 && !eng.Session().Over(); i++ {
		clock.advance(800 * time.Millisecond)
		eng.Step()
	}
	old := eng.Session()
	require.True(t, old.Over())

	eng.SetSource(&script{actions: []game.Action{game.ActionRestart}})
	require.True(t, eng.Step())

	require.NotSame(t, old, eng.Session(), "restart must leave the dead session behind")
	require.False(t, eng.Session().Over())
	require.Equal(t, 0, eng.Session().Pieces())
	require.Equal(t, 0, eng.Session().Lines())
	require.Equal(t, 0, eng.Session().BoardSnapshot().Height())
	require.True(t, old.Over(), "the old session stays as it ended")

	records := eng.Records()
	require.Len(t, records, 1, "the dead session was completed on the way out")
	require.True(t, records[0].GameOver)
}

func TestCombinePollsInPriorityOrder(t *testing.T) {
	keyboard := &script{actions: []game.Action{game.ActionHold}}
	bot := &script{actions: []game.Action{game.ActionMoveRight, game.ActionMoveRight}}

	src := Combine(keyboard, bot)
	require.Equal(t, game.ActionHold, src.Poll(), "the first source wins while it has input")
	require.Equal(t, game.ActionMoveRight, src.Poll())
	require.Equal(t, game.ActionMoveRight, src.Poll())
	require.Equal(t, game.ActionNone, src.Poll())

	require.False(t, src.Closed())
	keyboard.closed = true
	require.True(t, src.Closed(), "any closed part closes the whole source")
}
