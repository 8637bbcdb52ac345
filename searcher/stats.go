package searcher

import (
	"slices"

	"mazenet/game"
)

// Stats accumulates the rollout scores of one candidate action.
type Stats struct {
	Visits int
	Sum    float64
	SumSq  float64
}

func (s *Stats) add(score float64) {
	s.Visits++
	s.Sum += score
	s.SumSq += score * score
}

func (s *Stats) merge(o Stats) {
	s.Visits += o.Visits
	s.Sum += o.Sum
	s.SumSq += o.SumSq
}

func (s Stats) Mean() float64 {
	if s.Visits == 0 {
		return 0
	}
	return s.Sum / float64(s.Visits)
}

// Variance is the population variance of the recorded scores.
func (s Stats) Variance() float64 {
	if s.Visits == 0 {
		return 0
	}
	mean := s.Mean()
	v := s.SumSq/float64(s.Visits) - mean*mean
	if v < 0 { // Rounding
		return 0
	}
	return v
}

// better reports whether a ranks above b: lower mean, then lower variance.
// Unvisited stats never rank above visited ones.
func better(a, b Stats) bool {
	if a.Visits == 0 || b.Visits == 0 {
		return a.Visits > 0 && b.Visits == 0
	}
	if am, bm := a.Mean(), b.Mean(); am != bm {
		return am < bm
	}
	return a.Variance() < b.Variance()
}

// Result is the aggregated outcome of one candidate.
type Result struct {
	Action game.Action
	Stats
}

// candidates returns every legal shift combined with each spare rotation, in
// (line index, direction, rotation) order.
func candidates(b *game.Board) []game.Action {
	shifts := b.LegalShifts()
	actions := make([]game.Action, 0, len(shifts)*len(game.Rotations))
	for _, s := range shifts {
		for _, r := range game.Rotations {
			actions = append(actions, game.Action{Shift: s, Rotation: r})
		}
	}
	return actions
}

// best returns the index of the top ranked result. Ties keep the earliest candidate.
func best(results []Result) int {
	top := -1
	for i, r := range results {
		if top < 0 || better(r.Stats, results[top].Stats) {
			top = i
		}
	}
	return top
}

// Rank returns a copy of results ordered best first. Ties keep candidate order.
func Rank(results []Result) []Result {
	ranked := slices.Clone(results)
	slices.SortStableFunc(ranked, func(a, b Result) int {
		switch {
		case better(a.Stats, b.Stats):
			return -1
		case better(b.Stats, a.Stats):
			return 1
		}
		return 0
	})
	return ranked
}
