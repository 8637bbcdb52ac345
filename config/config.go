// Package config loads evaluator, game and experiment settings from YAML.
package config

import (
	"fmt"
	"time"

	"mazenet/game"
	"mazenet/meta"
	"mazenet/searcher"
)

type Config struct {
	Evaluator  EvaluatorConfig  `yaml:"evaluator"`
	Game       GameConfig       `yaml:"game"`
	Experiment ExperimentConfig `yaml:"experiment"`
}

// EvaluatorConfig bounds the search by rounds per candidate or by wall-clock duration.
type EvaluatorConfig struct {
	Goroutines int           `yaml:"goroutines"`
	Rounds     int           `yaml:"rounds"`
	Duration   time.Duration `yaml:"duration"`
	Depth      int           `yaml:"depth"`
	Score      string        `yaml:"score"`
	Rollout    string        `yaml:"rollout"`
}

type GameConfig struct {
	Players            int     `yaml:"players"`
	TreasuresPerPlayer int     `yaml:"treasures_per_player"`
	MaxTurns           int     `yaml:"max_turns"`
	Temperature        float64 `yaml:"temperature"` // 0 plays greedily
}

type ExperimentConfig struct {
	Name      string            `yaml:"name"`
	Games     int               `yaml:"games"`
	OutputDir string            `yaml:"output_dir"`
	Database  string            `yaml:"database"`
	Agents    []EvaluatorConfig `yaml:"agents"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Evaluator: EvaluatorConfig{
			Goroutines: meta.GO_ROUTINES,
			Rounds:     meta.ROUNDS,
			Depth:      meta.ROLLOUT_DEPTH,
			Score:      meta.SCORE,
			Rollout:    meta.ROLLOUT,
		},
		Game: GameConfig{
			Players:            meta.PLAYERS,
			TreasuresPerPlayer: meta.TREASURES_PER_PLAYER,
			MaxTurns:           meta.MAX_TURNS,
		},
		Experiment: ExperimentConfig{
			Name:      "rounds",
			Games:     10,
			OutputDir: "experiments/results",
			Database:  "experiments/results/mazenet.db",
		},
	}
}

func (c Config) Validate() error {
	if err := c.Evaluator.Validate(); err != nil {
		return fmt.Errorf("evaluator: %w", err)
	}
	if c.Game.Players < 1 || c.Game.Players > game.MaxPlayers {
		return fmt.Errorf("game: players must be between 1 and %d, got %d", game.MaxPlayers, c.Game.Players)
	}
	if c.Game.TreasuresPerPlayer < 0 || c.Game.TreasuresPerPlayer*c.Game.Players > len(game.SymbolTreasures()) {
		return fmt.Errorf("game: cannot deal %d treasures to each of %d players", c.Game.TreasuresPerPlayer, c.Game.Players)
	}
	if c.Game.MaxTurns < 1 {
		return fmt.Errorf("game: max_turns must be positive, got %d", c.Game.MaxTurns)
	}
	if c.Game.Temperature < 0 {
		return fmt.Errorf("game: temperature cannot be negative, got %v", c.Game.Temperature)
	}
	for i, a := range c.Experiment.Agents {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("experiment agent %d: %w", i+1, err)
		}
	}
	return nil
}

func (c EvaluatorConfig) Validate() error {
	if c.Goroutines < 1 {
		return fmt.Errorf("goroutines must be positive, got %d", c.Goroutines)
	}
	if c.Rounds <= 0 && c.Duration <= 0 {
		return fmt.Errorf("rounds or duration must be set")
	}
	if _, err := game.ScoreByName(c.Score); err != nil {
		return err
	}
	if _, ok := searcher.RolloutByName(c.Rollout); !ok {
		return fmt.Errorf("unknown rollout %q", c.Rollout)
	}
	return nil
}

// Options translates the configuration into evaluator options.
func (c EvaluatorConfig) Options(seed uint64) []searcher.Option {
	options := []searcher.Option{searcher.WithSeed(seed)}

	if c.Rounds > 0 {
		options = append(options, searcher.WithRounds(c.Rounds))
	}
	if c.Duration > 0 {
		options = append(options, searcher.WithDuration(c.Duration))
	}
	if c.Depth > 0 {
		options = append(options, searcher.WithDepth(c.Depth))
	}
	if score, err := game.ScoreByName(c.Score); err == nil {
		options = append(options, searcher.WithScore(c.Score, score))
	}
	if rollout, ok := searcher.RolloutByName(c.Rollout); ok {
		options = append(options, searcher.WithRollout(rollout))
	}
	return options
}

// NewEvaluator builds an evaluator from the configuration.
func (c EvaluatorConfig) NewEvaluator(seed uint64, withMetrics bool) *searcher.Evaluator {
	options := c.Options(seed)
	if withMetrics {
		options = append(options, searcher.WithMetrics())
	}
	return searcher.NewEvaluator(c.Goroutines, options...)
}
