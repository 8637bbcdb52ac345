package agent

import (
	"math/rand/v2"
	"testing"

	"mazenet/game"
	"mazenet/searcher"

	"github.com/stretchr/testify/require"
	xrand "golang.org/x/exp/rand"
)

func standardBoard(seed uint64) *game.Board {
	return game.NewStandardBoard(xrand.New(xrand.NewSource(seed)), 2)
}

func TestEvaluationAgent(t *testing.T) {
	e := searcher.NewEvaluator(4, searcher.WithRounds(1), searcher.WithSeed(3))
	b := standardBoard(3)

	rec, err := NewEvaluationAgent(e).FindAction(b, 1, "sym04")
	require.NoError(t, err)

	want, err := e.Recommend(b, 1, "sym04")
	require.NoError(t, err)
	require.Equal(t, want.Action, rec.Action, "Evaluation agent should play the best action")
}

func TestTrainingAgent(t *testing.T) {
	t.Run("plays a legal action with a reachable destination", func(t *testing.T) {
		e := searcher.NewEvaluator(4, searcher.WithRounds(1), searcher.WithSeed(5))
		a := NewTrainingAgent(e, 2.0, rand.New(rand.NewPCG(1, 2)))
		b := standardBoard(5)

		rec, err := a.FindAction(b, 2, "sym09")
		require.NoError(t, err)

		_, err = b.Play(rec.Action)
		require.NoError(t, err)
		require.NoError(t, b.PlayerMove(2, rec.Destination.X, rec.Destination.Y))
	})

	t.Run("panics on a non-positive temperature", func(t *testing.T) {
		e := searcher.NewEvaluator(1, searcher.WithRounds(1))
		require.Panics(t, func() {
			NewTrainingAgent(e, 0, rand.New(rand.NewPCG(1, 2)))
		})
	})
}

func TestAdjustTemperature(t *testing.T) {
	results := []searcher.Result{
		{Stats: searcher.Stats{Visits: 1, Sum: 1, SumSq: 1}},
		{Stats: searcher.Stats{Visits: 1, Sum: 3, SumSq: 9}},
		{},
	}

	t.Run("lower means get more weight", func(t *testing.T) {
		probs := adjustTemperature(results, 1.0)
		require.Greater(t, probs[0], probs[1])
		require.Zero(t, probs[2], "Unvisited candidates should never be sampled")
		require.InDelta(t, 1.0, probs[0]+probs[1], 1e-9)
	})

	t.Run("high temperature flattens the distribution", func(t *testing.T) {
		cold := adjustTemperature(results, 0.5)
		hot := adjustTemperature(results, 100)
		require.Less(t, hot[0]-hot[1], cold[0]-cold[1])
	})
}

func TestSample(t *testing.T) {
	probs := []float64{0.25, 0, 0.75}

	require.Equal(t, 0, sample(probs, 0.1))
	require.Equal(t, 2, sample(probs, 0.3))
	require.Equal(t, 2, sample(probs, 0.9999999), "Rounding should fall back to the last weighted candidate")
	require.Equal(t, -1, sample([]float64{0, 0}, 0.5))
}
