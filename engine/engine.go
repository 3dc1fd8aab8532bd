package engine

import (
	"time"

	"github.com/rs/zerolog/log"

	"tetris/game"
	"tetris/metrics"
)

// Renderer receives a fresh frame whenever the visible state changed.
type Renderer interface {
	Render(game.Frame)
}

// Config wires an Engine. Rules, Clock and Collector fall back to sensible
// defaults; Source and Renderer may stay nil for headless or blind runs.
type Config struct {
	Rules     game.Rules
	Source    ActionSource
	Renderer  Renderer
	Clock     Clock
	Collector metrics.Collector
	// Seed fixes the piece sequence for every session this engine starts.
	// Zero draws a fresh seed from the clock per session.
	Seed uint64
	// Poll is how long Run sleeps between loop iterations.
	Poll time.Duration
}

// Engine owns the driver loop: one polled action per iteration, then an
// automatic downward move whenever the gravity interval for the current
// level has elapsed. It also owns the session lifecycle, a restart action
// swaps in a fresh game while the old one is completed into the records and
// dropped.
//
// Everything runs on the caller's goroutine. Sources may pump their input
// from other goroutines, the engine only ever polls.
type Engine struct {
	cfg     Config
	session *game.Game

	lastTick   time.Time
	lastLines  int
	lastPieces int

	records []metrics.SessionMetric
	done    bool
	stopped bool
	ended   bool
}

func New(cfg Config) *Engine {
	if cfg.Rules == nil {
		cfg.Rules = game.NewStandardRules()
	}
	if cfg.Clock == nil {
		cfg.Clock = SystemClock{}
	}
	if cfg.Collector == nil {
		cfg.Collector = metrics.NewDummyCollector()
	}
	if cfg.Poll <= 0 {
		cfg.Poll = 2 * time.Millisecond
	}
	e := &Engine{cfg: cfg}
	e.startSession()
	return e
}

// SetSource replaces the action source. The bot needs the engine's session
// accessor before it can be built, so the terminal wiring constructs the
// engine first and plugs the source in afterwards.
func (e *Engine) SetSource(s ActionSource) {
	e.cfg.Source = s
}

// Session returns the game currently being driven. Restart replaces it.
func (e *Engine) Session() *game.Game {
	return e.session
}

// Records returns the collector's metric for every session finished so far.
func (e *Engine) Records() []metrics.SessionMetric {
	return e.records
}

func (e *Engine) startSession() {
	seed := e.cfg.Seed
	if seed == 0 {
		seed = uint64(e.cfg.Clock.Now().UnixNano())
	}
	e.session = game.NewGame(e.cfg.Rules, game.WithSeed(seed))
	e.lastTick = e.cfg.Clock.Now()
	e.lastLines = 0
	e.lastPieces = 0
	e.done = false
	e.ended = false
	e.cfg.Collector.Start(seed)
	log.Info().Msgf("session started: %dx%d board, level %d, seed %d",
		e.cfg.Rules.BoardWidth(), e.cfg.Rules.BoardHeight(), e.session.Level(), seed)
	e.render()
}

func (e *Engine) finishSession() {
	if e.done {
		return
	}
	e.done = true
	e.cfg.Collector.SetLevel(e.session.Level())
	e.cfg.Collector.SetGameOver(e.session.Over())
	e.records = append(e.records, e.cfg.Collector.Complete())
	log.Info().Msgf("session finished: %d pieces, %d lines, level %d",
		e.session.Pieces(), e.session.Lines(), e.session.Level())
}

// Step runs one loop iteration and reports whether the engine should keep
// going. At most one input action is applied, then the gravity check runs.
func (e *Engine) Step() bool {
	if e.stopped || (e.cfg.Source != nil && e.cfg.Source.Closed()) {
		return false
	}

	changed := false
	if e.cfg.Source != nil {
		if a := e.cfg.Source.Poll(); a != game.ActionNone {
			if a == game.ActionRestart {
				e.finishSession()
				e.startSession()
				return true
			}
			e.session.Apply(a)
			changed = true
		}
	}

	now := e.cfg.Clock.Now()
	if now.Sub(e.lastTick) >= e.session.Rules().GravityInterval(e.session.Level()) {
		e.session.MoveDown()
		e.lastTick = now
		changed = true
	}

	if changed {
		e.noteProgress()
		e.render()
	}
	return true
}

// Run drives Step until the source closes or Stop is called, then finishes
// the running session.
func (e *Engine) Run() {
	for e.Step() {
		e.cfg.Clock.Sleep(e.cfg.Poll)
	}
	e.finishSession()
}

// Stop makes Run return after the current iteration.
func (e *Engine) Stop() {
	e.stopped = true
}

// Finish closes out the running session and returns its metric. Callers
// that drive Step by hand use it instead of Run's implicit finish.
func (e *Engine) Finish() metrics.SessionMetric {
	e.stopped = true
	e.finishSession()
	return e.records[len(e.records)-1]
}

// noteProgress feeds the collector whatever changed since the last look and
// logs the milestones.
func (e *Engine) noteProgress() {
	if pieces := e.session.Pieces(); pieces > e.lastPieces {
		e.cfg.Collector.AddPieces(pieces - e.lastPieces)
		e.lastPieces = pieces
	}
	if lines := e.session.Lines(); lines > e.lastLines {
		e.cfg.Collector.AddLines(lines - e.lastLines)
		e.cfg.Collector.SetLevel(e.session.Level())
		log.Info().Msgf("cleared %d row(s), %d total, level %d",
			lines-e.lastLines, lines, e.session.Level())
		e.lastLines = lines
	}
	if e.session.Over() && !e.ended {
		e.ended = true
		e.cfg.Collector.SetGameOver(true)
		log.Info().Msgf("game over after %d pieces and %d lines",
			e.session.Pieces(), e.session.Lines())
	}
}

func (e *Engine) render() {
	if e.cfg.Renderer == nil {
		return
	}
	e.cfg.Renderer.Render(e.session.Frame())
}
