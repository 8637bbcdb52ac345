package experiments

import (
	"path/filepath"
	"testing"

	"mazenet/config"
	"mazenet/experiments/metrics"

	"github.com/stretchr/testify/require"
)

func smallExperiment() Experiment {
	evaluators := []config.EvaluatorConfig{
		{Goroutines: 2, Rounds: 1, Depth: 1, Score: "shortest-path", Rollout: "random"},
		{Goroutines: 2, Rounds: 1, Depth: 1, Score: "manhattan", Rollout: "greedy"},
	}
	configs := AgentConfigs(evaluators)
	return Experiment{
		Name:     "smoke",
		Configs:  configs,
		MatchUps: AgainstBaseline(configs),
		Games:    2,
		Game:     config.GameConfig{Players: 2, TreasuresPerPlayer: 2, MaxTurns: 4},
		Seed:     11,
	}
}

func TestAgentConfigs(t *testing.T) {
	configs := AgentConfigs([]config.EvaluatorConfig{{Goroutines: 1}, {Goroutines: 2}})

	require.Equal(t, 1, configs[0].ID)
	require.Equal(t, 2, configs[1].ID)
	require.Equal(t, 2, configs[1].Goroutines)
}

func TestAgainstBaseline(t *testing.T) {
	configs := []metrics.AgentConfig{{ID: 1}, {ID: 2}, {ID: 3}}
	matchUps := AgainstBaseline(configs)

	require.Len(t, matchUps, 3)
	for _, m := range matchUps {
		require.Equal(t, 1, m[0].ID, "Baseline should be in every match up")
	}
	require.Equal(t, 3, matchUps[2][1].ID)
}

func TestExperimentRun(t *testing.T) {
	x := smallExperiment()
	result := x.Run()

	require.Len(t, result.Games, 4, "2 match ups times 2 games")
	require.Equal(t, 1, result.Games[2].Agent1)
	require.Equal(t, 2, result.Games[3].Agent1, "Seats should alternate")
	for _, g := range result.Games {
		require.LessOrEqual(t, g.TotalMoves, 4)
	}
	require.NotEmpty(t, result.Moves)
	for _, m := range result.Moves {
		require.Equal(t, 1, m.Rounds/m.Candidates, "One rollout per candidate")
	}

	dir := t.TempDir()
	writer, err := metrics.NewWriter(dir, x.Name)
	require.NoError(t, err)
	store, err := metrics.OpenStore(filepath.Join(dir, "runs.db"))
	require.NoError(t, err)
	defer store.Close()

	runID, err := x.Store(result, writer, store)
	require.NoError(t, err)

	summary, err := store.Summary(runID)
	require.NoError(t, err)
	require.Len(t, summary, 2)
	require.Equal(t, 6, summary[0].Games, "Baseline plays both sides of the self match up")
}
