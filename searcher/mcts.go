package searcher

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"mazenet/experiments/metrics"
	"mazenet/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(e *Evaluator)

// Evaluator recommends a turn by Monte Carlo simulation: every candidate action is played
// on cloned boards, followed by a short random rollout, and the final states are scored.
type Evaluator struct {
	goroutines int
	duration   time.Duration
	rounds     int
	depth      int
	score      game.Score
	scoreName  string
	rollout    Rollout
	seed       uint64
	collector  func() metrics.Collector // One collector per Recommend call
}

// Recommendation is the evaluator's choice for a turn.
type Recommendation struct {
	Action      game.Action
	Destination game.Coord // Where the player should walk after the action
	Stats
	Candidates []Result // In candidate order
	Metric     metrics.SearchMetric
}

func WithDuration(duration time.Duration) Option {
	return func(e *Evaluator) {
		if duration > 0 {
			e.duration = duration
		}
	}
}

// WithRounds sets the number of rollouts per candidate.
func WithRounds(rounds int) Option {
	return func(e *Evaluator) {
		if rounds > 0 {
			e.rounds = rounds
		}
	}
}

// WithDepth sets the number of simulated player turns per rollout.
func WithDepth(depth int) Option {
	return func(e *Evaluator) {
		if depth > 0 {
			e.depth = min(depth, MaxDepth)
		}
	}
}

func WithScore(name string, score game.Score) Option {
	return func(e *Evaluator) {
		if score != nil {
			e.score = score
			e.scoreName = name
		}
	}
}

func WithRollout(rollout Rollout) Option {
	return func(e *Evaluator) {
		if rollout != nil {
			e.rollout = rollout
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(e *Evaluator) {
		e.seed = seed
	}
}

func WithMetrics() Option {
	return func(e *Evaluator) {
		e.collector = metrics.NewCollector
	}
}

func NewEvaluator(goroutines int, options ...Option) *Evaluator {
	if goroutines < 1 {
		panic("Must use at least one goroutine")
	}
	e := &Evaluator{ // Default values
		goroutines: goroutines,
		depth:      DefaultDepth,
		score:      game.ShortestPath,
		scoreName:  "shortest-path",
		rollout:    RandomRollout,
		seed:       uint64(time.Now().UnixNano()),
		collector:  metrics.NewDummyCollector,
	}
	for _, option := range options {
		option(e)
	}
	if e.rounds <= 0 && e.duration <= 0 {
		panic("Must specify search rounds or duration")
	}
	return e
}

// Recommend scores every legal action for player p chasing target. The board is cloned once
// and never mutated. Recommend is safe for concurrent use.
func (e *Evaluator) Recommend(board *game.Board, p game.Player, target game.Treasure) (Recommendation, error) {
	if _, ok := board.Position(p); !ok {
		return Recommendation{}, fmt.Errorf("%w: %d", game.ErrUnknownPlayer, p)
	}
	snapshot := board.Clone()
	actions := candidates(snapshot)
	if len(actions) == 0 {
		return Recommendation{}, ErrNoLegalAction
	}

	collector := e.collector()
	collector.Start(e.goroutines, e.depth, e.scoreName)
	collector.SetCandidates(len(actions))
	var stats []Stats
	if e.rounds > 0 {
		stats = e.iterate(snapshot, p, target, actions, collector)
	} else {
		stats = e.countdown(snapshot, p, target, actions, collector)
	}
	metric := collector.Complete()

	results := make([]Result, len(actions))
	for i, action := range actions {
		results[i] = Result{Action: action, Stats: stats[i]}
	}
	top := best(results)
	if top < 0 || results[top].Visits == 0 {
		return Recommendation{}, ErrNoLegalAction
	}

	chosen := results[top]
	destination := e.Destination(snapshot, p, target, chosen.Action)
	log.Debug().Msgf("player %d chasing %s: %s to %s, mean %.2f over %d rounds", p, target, chosen.Action, destination, chosen.Mean(), chosen.Visits)

	return Recommendation{
		Action:      chosen.Action,
		Destination: destination,
		Stats:       chosen.Stats,
		Candidates:  results,
		Metric:      metric,
	}, nil
}

// Destination plays the action on a clone of board and returns the reachable tile that
// scores best for the player. Staying put wins ties.
func (e *Evaluator) Destination(board *game.Board, p game.Player, target game.Treasure, action game.Action) game.Coord {
	after := board.Clone()
	if _, err := after.Play(action); err != nil {
		from, _ := board.Position(p)
		return from
	}
	from, _ := after.Position(p)
	dest := from
	bestScore := e.score(after, p, target)
	for _, c := range after.Reachable(from)[1:] {
		moved := after.Clone()
		if err := moved.PlayerMove(p, c.X, c.Y); err != nil {
			continue
		}
		if s := e.score(moved, p, target); s < bestScore {
			bestScore = s
			dest = c
		}
	}
	return dest
}

type task struct {
	candidate int
	round     int
}

// iterate runs a fixed number of rounds per candidate across the worker pool. Every rollout
// writes its own slot and scores are summed in round order afterwards, so the floating point
// totals do not depend on scheduling.
func (e *Evaluator) iterate(snapshot *game.Board, p game.Player, target game.Treasure, actions []game.Action, collector metrics.Collector) []Stats {
	tasks := make(chan task, len(actions)*e.rounds)
	for c := range actions {
		for r := 0; r < e.rounds; r++ {
			tasks <- task{candidate: c, round: r}
		}
	}
	close(tasks)

	scores := make([][]float64, len(actions))
	for c := range scores {
		scores[c] = make([]float64, e.rounds)
	}
	var wg sync.WaitGroup
	for i := 0; i < e.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for t := range tasks {
				scores[t.candidate][t.round] = e.simulate(snapshot, p, target, actions[t.candidate], t.candidate, t.round, collector)
				collector.AddRound()
			}
		}()
	}
	wg.Wait()

	stats := make([]Stats, len(actions))
	for c, rounds := range scores {
		for _, score := range rounds {
			stats[c].add(score)
		}
	}
	return stats
}

// countdown cycles through the candidates until the time budget elapses. Every candidate
// is simulated at least once. Each worker accumulates into its own stats.
func (e *Evaluator) countdown(snapshot *game.Board, p game.Player, target game.Treasure, actions []game.Action, collector metrics.Collector) []Stats {
	done := make(chan any)
	var next atomic.Int64

	locals := make([][]Stats, e.goroutines)
	var wg sync.WaitGroup
	for i := 0; i < e.goroutines; i++ {
		locals[i] = make([]Stats, len(actions))
		wg.Add(1)
		go func(local []Stats) {
			defer wg.Done()

			for {
				n := int(next.Add(1) - 1)
				if n >= len(actions) {
					select {
					case <-done:
						return
					default:
					}
				}
				c, r := n%len(actions), n/len(actions)
				local[c].add(e.simulate(snapshot, p, target, actions[c], c, r, collector))
				collector.AddRound()
			}
		}(locals[i])
	}

	<-time.After(e.duration)
	close(done)
	wg.Wait()

	stats := make([]Stats, len(actions))
	for _, local := range locals {
		for c := range stats {
			stats[c].merge(local[c])
		}
	}
	return stats
}

// simulate plays one rollout of a candidate on a fresh clone and scores the final state.
func (e *Evaluator) simulate(snapshot *game.Board, p game.Player, target game.Treasure, action game.Action, candidate, round int, collector metrics.Collector) float64 {
	rng := rand.New(rand.NewSource(seedFor(e.seed, candidate, round)))
	board := snapshot.Clone()
	if _, err := board.Play(action); err != nil {
		panic(fmt.Sprintf("candidate %s is not playable: %v", action, err))
	}

	for depth := 0; depth < e.depth; depth++ {
		if depth > 0 {
			// The board keeps changing between the player's turns
			shifts := board.LegalShifts()
			shift := shifts[rng.Intn(len(shifts))]
			rotation := game.Rotations[rng.Intn(len(game.Rotations))]
			if _, err := board.Play(game.Action{Shift: shift, Rotation: rotation}); err != nil {
				panic(fmt.Sprintf("legal shift %s is not playable: %v", shift, err))
			}
		}

		dest := e.rollout(board, p, target, rng)
		if err := board.PlayerMove(p, dest.X, dest.Y); err != nil {
			panic(fmt.Sprintf("rollout chose an unreachable tile %s: %v", dest, err))
		}
		if onTarget(board, p, target) {
			collector.AddTargetReached()
			break
		}
	}

	return e.score(board, p, target)
}

func onTarget(b *game.Board, p game.Player, target game.Treasure) bool {
	pos, ok := b.Position(p)
	return ok && target != game.NoTreasure && b.TileAt(pos).Treasure() == target
}
