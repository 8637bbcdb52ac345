package engine

import (
	"testing"

	"mazenet/game"
	"mazenet/searcher"
	"mazenet/searcher/agent"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newAgents(n int, seed uint64) []agent.Agent {
	agents := make([]agent.Agent, n)
	for i := range agents {
		e := searcher.NewEvaluator(2, searcher.WithRounds(1), searcher.WithSeed(seed+uint64(i)))
		agents[i] = agent.NewEvaluationAgent(e)
	}
	return agents
}

func TestNewLocalEngine(t *testing.T) {
	t.Run("deals treasures evenly", func(t *testing.T) {
		b := game.NewStandardBoard(rand.New(rand.NewSource(1)), 3)
		e := NewLocalEngine(b, newAgents(3, 1), game.SymbolTreasures(), 0)

		for _, p := range b.Players() {
			require.Equal(t, 8, e.Remaining(p), "Player %d should hold a third of the treasures", p)
		}
		require.Equal(t, game.Treasure("sym01"), e.Target(1))
		require.Equal(t, game.Treasure("sym02"), e.Target(2))
	})

	t.Run("caps treasures per player", func(t *testing.T) {
		b := game.NewStandardBoard(rand.New(rand.NewSource(1)), 2)
		e := NewLocalEngine(b, newAgents(2, 1), game.SymbolTreasures(), 3)

		require.Equal(t, 3, e.Remaining(1))
		require.Equal(t, 3, e.Remaining(2))
	})

	t.Run("targets home without treasures", func(t *testing.T) {
		b := game.NewStandardBoard(rand.New(rand.NewSource(1)), 2)
		e := NewLocalEngine(b, newAgents(2, 1), nil, 0)

		require.Equal(t, game.Home(2), e.Target(2))
	})

	t.Run("panics when agents do not match players", func(t *testing.T) {
		b := game.NewStandardBoard(rand.New(rand.NewSource(1)), 2)
		require.Panics(t, func() {
			NewLocalEngine(b, newAgents(3, 1), game.SymbolTreasures(), 0)
		})
	})
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("keeps board invariants every turn", func(t *testing.T) {
		b := game.NewStandardBoard(rand.New(rand.NewSource(2)), 2)
		e := NewLocalEngine(b, newAgents(2, 2), game.SymbolTreasures(), 0)
		before := b.Hash()

		winner, gameMetric, moveMetrics := e.Run(6)

		require.Zero(t, winner, "Nobody can collect 12 treasures in 6 turns")
		require.Len(t, moveMetrics, 6)
		require.Equal(t, 6, gameMetric.TotalMoves)
		require.Equal(t, 1, gameMetric.StartingPlayer)
		for i, m := range moveMetrics {
			require.Equal(t, i+1, m.Step)
			require.Equal(t, i%2+1, m.Player, "Players should alternate")
		}
		require.NotEqual(t, before, b.Hash(), "Board should change")
		require.NoError(t, b.Validate())
	})

	t.Run("player standing at home with nothing to find wins", func(t *testing.T) {
		b := game.NewStandardBoard(rand.New(rand.NewSource(3)), 2)
		e := NewLocalEngine(b, newAgents(2, 3), nil, 0)

		winner, gameMetric, _ := e.Run(10)

		require.Equal(t, game.Player(1), winner)
		require.Equal(t, 1, gameMetric.Winner)
		require.Equal(t, 1, gameMetric.TotalMoves)
	})
}

func TestLocalEngineTurn(t *testing.T) {
	t.Run("collects the target and advances to the next", func(t *testing.T) {
		b := game.NewStandardBoard(rand.New(rand.NewSource(4)), 2)
		pos, _ := b.Position(1)
		// The start tile stays put under every shift, so dealing it guarantees a find
		home := b.TileAt(pos).Treasure()
		e := NewLocalEngine(b, newAgents(2, 4), []game.Treasure{home, "sym01", "sym02", "sym03"}, 0)
		require.Equal(t, home, e.Target(1))

		_, won, err := e.Turn(1)
		require.NoError(t, err)

		require.False(t, won)
		require.Equal(t, 1, e.Found(1))
		require.Equal(t, game.Treasure("sym02"), e.Target(1))
	})
}
