package agent

import (
	"math"
	"math/rand/v2"

	"mazenet/game"
	"mazenet/searcher"
)

type trainingAgent struct {
	evaluator   *searcher.Evaluator
	temperature float64
	rng         *rand.Rand
}

// NewTrainingAgent returns an agent for self-play that samples actions in proportion to
// exp(-mean/temperature), so weaker actions are still explored.
func NewTrainingAgent(evaluator *searcher.Evaluator, temperature float64, rng *rand.Rand) Agent {
	if temperature <= 0 {
		panic("temperature must be positive")
	}
	return trainingAgent{evaluator: evaluator, temperature: temperature, rng: rng}
}

func (a trainingAgent) FindAction(board *game.Board, p game.Player, target game.Treasure) (searcher.Recommendation, error) {
	rec, err := a.evaluator.Recommend(board, p, target)
	if err != nil {
		return rec, err
	}

	chosen := sample(adjustTemperature(rec.Candidates, a.temperature), a.rng.Float64())
	if chosen < 0 || rec.Candidates[chosen].Action == rec.Action {
		return rec, nil
	}
	rec.Action = rec.Candidates[chosen].Action
	rec.Stats = rec.Candidates[chosen].Stats
	rec.Destination = a.evaluator.Destination(board, p, target, rec.Action)
	return rec, nil
}

// adjustTemperature turns mean scores (lower is better) into sampling probabilities.
// Unvisited candidates get zero weight.
func adjustTemperature(results []searcher.Result, temperature float64) []float64 {
	lowest := math.Inf(1)
	for _, r := range results {
		if r.Visits > 0 {
			lowest = min(lowest, r.Mean())
		}
	}

	probs := make([]float64, len(results))
	sum := 0.0
	for i, r := range results {
		if r.Visits == 0 {
			continue
		}
		// Shift by the lowest mean to keep exp in range
		probs[i] = math.Exp(-(r.Mean() - lowest) / temperature)
		sum += probs[i]
	}
	if sum == 0 {
		return probs
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}

// sample returns the index selected by u in [0,1), or -1 if every probability is zero.
func sample(probs []float64, u float64) int {
	cumulative := 0.0
	last := -1
	for i, prob := range probs {
		if prob == 0 {
			continue
		}
		last = i
		cumulative += prob
		if u < cumulative {
			return i
		}
	}
	return last // Fallback in case of rounding errors
}
