package experiments

import (
	"fmt"

	"mazenet/config"
	"mazenet/engine"
	"mazenet/experiments/metrics"
	"mazenet/game"
	"mazenet/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Experiment pits agent configurations against each other in two-player games.
type Experiment struct {
	Name     string
	Configs  []metrics.AgentConfig
	MatchUps [][2]metrics.AgentConfig
	Games    int // Per match up
	Game     config.GameConfig
	Seed     uint64
}

type Result struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
}

// AgentConfigs numbers the evaluator configurations from 1.
func AgentConfigs(evaluators []config.EvaluatorConfig) []metrics.AgentConfig {
	configs := make([]metrics.AgentConfig, len(evaluators))
	for i, e := range evaluators {
		configs[i] = metrics.AgentConfig{
			ID:         i + 1,
			Goroutines: e.Goroutines,
			Duration:   e.Duration,
			Rounds:     e.Rounds,
			Depth:      e.Depth,
			Score:      e.Score,
			Rollout:    e.Rollout,
		}
	}
	return configs
}

// AgainstBaseline pairs the first configuration against every configuration, itself included.
func AgainstBaseline(configs []metrics.AgentConfig) [][2]metrics.AgentConfig {
	matchUps := make([][2]metrics.AgentConfig, 0, len(configs))
	for _, c := range configs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{configs[0], c})
	}
	return matchUps
}

// Run plays every match up Games times. Starting seats alternate between games.
func (x Experiment) Run() Result {
	count := 0
	var result Result

	log.Info().Msgf("starting %s experiment...", x.Name)

	for mi, matchUp := range x.MatchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(x.MatchUps), matchUp[0], matchUp[1])

		for i := 0; i < x.Games; i++ {
			count++
			first, second := matchUp[0], matchUp[1]
			if i%2 == 1 {
				first, second = second, first
			}

			winner, gameMetric, moveMetrics := x.runGame(first, second, x.Seed+uint64(count))
			result.Games = append(result.Games, metrics.GameRecord{
				ID:         count,
				Agent1:     first.ID,
				Agent2:     second.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				result.Moves = append(result.Moves, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %d", mi+1, len(x.MatchUps), i+1, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", x.Name)
	return result
}

// Store writes the result as CSV files under the writer's directory and, if store is not
// nil, into the database. It returns the database run id.
func (x Experiment) Store(result Result, writer *metrics.Writer, store *metrics.Store) (string, error) {
	if writer != nil {
		if err := writer.WriteAgentConfigs(x.Configs); err != nil {
			return "", fmt.Errorf("failed to store agent configs: %w", err)
		}
		if err := writer.WriteGameRecords(result.Games); err != nil {
			return "", fmt.Errorf("failed to write game records: %w", err)
		}
		if err := writer.WriteMoveRecords(result.Moves); err != nil {
			return "", fmt.Errorf("failed to write move records: %w", err)
		}
		log.Info().Msgf("stored records in %s", writer.Dir())
	}

	if store == nil {
		return "", nil
	}
	runID, err := store.SaveRun(x.Name, x.Configs, result.Games, result.Moves)
	if err != nil {
		return "", err
	}
	log.Info().Msgf("stored run %s", runID)
	return runID, nil
}

// runGame plays a single two-player game; config1 controls player 1.
func (x Experiment) runGame(config1, config2 metrics.AgentConfig, seed uint64) (game.Player, metrics.GameMetric, []metrics.MoveMetric) {
	rng := rand.New(rand.NewSource(seed))
	board := game.NewStandardBoard(rng, 2)
	treasures := game.SymbolTreasures()
	rng.Shuffle(len(treasures), func(i, j int) { treasures[i], treasures[j] = treasures[j], treasures[i] })

	agents := []agent.Agent{
		agent.NewEvaluationAgent(evaluatorConfig(config1).NewEvaluator(seed, true)),
		agent.NewEvaluationAgent(evaluatorConfig(config2).NewEvaluator(seed+1, true)),
	}
	e := engine.NewLocalEngine(board, agents, treasures, x.Game.TreasuresPerPlayer)
	return e.Run(x.Game.MaxTurns)
}

func evaluatorConfig(c metrics.AgentConfig) config.EvaluatorConfig {
	return config.EvaluatorConfig{
		Goroutines: c.Goroutines,
		Rounds:     c.Rounds,
		Duration:   c.Duration,
		Depth:      c.Depth,
		Score:      c.Score,
		Rollout:    c.Rollout,
	}
}
