package metrics

import (
	"sync/atomic"
	"time"

	"jungle/game"
)

type SearchMetric struct {
	Depth      int
	Goroutines int
	Duration   time.Duration
	Candidates int // Legal moves at the root
	Nodes      int
	Cutoffs    int
	Score      int
}

type MoveMetric struct {
	Step   int
	Player game.Side
	Move   game.Move
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Side
	Winner         game.Side
	Reason         game.WinReason
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector gathers statistics for one search at a time. Counters are safe to
// bump from several goroutines of the same search.
type Collector interface {
	Start(depth, goroutines int)
	AddNode()
	AddCutoff()
	Complete(candidates, score int) SearchMetric
}

type collector struct {
	depth      int
	goroutines int
	startTime  time.Time
	nodes      atomic.Int64
	cutoffs    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth, goroutines int) {
	m.startTime = time.Now()
	m.depth = depth
	m.goroutines = goroutines
	m.nodes.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete(candidates, score int) SearchMetric {
	return SearchMetric{
		Depth:      m.depth,
		Goroutines: m.goroutines,
		Duration:   time.Since(m.startTime),
		Candidates: candidates,
		Nodes:      int(m.nodes.Load()),
		Cutoffs:    int(m.cutoffs.Load()),
		Score:      score,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth, goroutines int) {}
func (m *dummyCollector) AddNode()                    {}
func (m *dummyCollector) AddCutoff()                  {}
func (m *dummyCollector) Complete(candidates, score int) SearchMetric {
	return SearchMetric{Candidates: candidates, Score: score}
}
