package metrics

import (
	"time"

	"github.com/google/uuid"
)

// SessionMetric describes one completed play session.
type SessionMetric struct {
	ID        uuid.UUID
	Seed      uint64
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Pieces    int
	Lines     int
	Level     int
	GameOver  bool
}

// Collector accumulates the metric of the session currently running. The
// engine owns the call order: Start once per session, the Add/Set calls as
// play progresses, Complete exactly once at the end.
type Collector interface {
	Start(seed uint64)
	AddPieces(n int)
	AddLines(n int)
	SetLevel(level int)
	SetGameOver(over bool)
	Complete() SessionMetric
}

type collector struct {
	current SessionMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(seed uint64) {
	m.current = SessionMetric{
		ID:        uuid.New(),
		Seed:      seed,
		StartTime: time.Now(),
	}
}

func (m *collector) AddPieces(n int) {
	m.current.Pieces += n
}

func (m *collector) AddLines(n int) {
	m.current.Lines += n
}

func (m *collector) SetLevel(level int) {
	m.current.Level = level
}

func (m *collector) SetGameOver(over bool) {
	m.current.GameOver = over
}

func (m *collector) Complete() SessionMetric {
	m.current.EndTime = time.Now()
	m.current.Duration = m.current.EndTime.Sub(m.current.StartTime)
	return m.current
}

type dummyCollector struct{}

// NewDummyCollector returns a collector that records nothing, for callers
// that do not care about statistics.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(seed uint64)       {}
func (m *dummyCollector) AddPieces(n int)         {}
func (m *dummyCollector) AddLines(n int)          {}
func (m *dummyCollector) SetLevel(level int)      {}
func (m *dummyCollector) SetGameOver(over bool)   {}
func (m *dummyCollector) Complete() SessionMetric { return SessionMetric{} }
