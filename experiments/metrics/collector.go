package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines    int
	Duration      time.Duration
	Rounds        int // Rollouts completed across all candidates
	Depth         int
	Score         string
	Candidates    int
	TargetReached int // Rollouts that ended on the target
}

type MoveMetric struct {
	Step   int
	Player int // Player ID
	Action string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int
	Winner         int // Player ID, 0 if the turn limit was reached
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	TreasuresFound int
}

type Collector interface {
	Start(goroutines, depth int, score string)
	SetCandidates(n int)
	AddTargetReached()
	AddRound()
	Complete() SearchMetric
}

type collector struct {
	goroutines    int
	depth         int
	score         string
	startTime     time.Time
	candidates    atomic.Int32
	rounds        atomic.Int32
	targetReached atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, depth int, score string) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.depth = depth
	m.score = score
	m.candidates.Store(0)
	m.rounds.Store(0)
	m.targetReached.Store(0)
}

func (m *collector) SetCandidates(n int) {
	m.candidates.Store(int32(n))
}

func (m *collector) AddTargetReached() {
	m.targetReached.Add(1)
}

func (m *collector) AddRound() {
	m.rounds.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines:    m.goroutines,
		Duration:      time.Since(m.startTime),
		Rounds:        int(m.rounds.Load()),
		Depth:         m.depth,
		Score:         m.score,
		Candidates:    int(m.candidates.Load()),
		TargetReached: int(m.targetReached.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, depth int, score string) {}
func (m *dummyCollector) SetCandidates(n int)                      {}
func (m *dummyCollector) AddTargetReached()                        {}
func (m *dummyCollector) AddRound()                                {}
func (m *dummyCollector) Complete() SearchMetric                   { return SearchMetric{} }
