package main

import (
	"fmt"
	"math/rand/v2"

	"mazenet/engine"
	"mazenet/game"
	"mazenet/searcher/agent"

	"github.com/spf13/cobra"
	xrand "golang.org/x/exp/rand"
)

var (
	simPlayers  int
	simMaxTurns int
	simRender   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play a local game between agents",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("players") {
			cfg.Game.Players = simPlayers
		}
		if cmd.Flags().Changed("max-turns") {
			cfg.Game.MaxTurns = simMaxTurns
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		s := seed()
		rng := xrand.New(xrand.NewSource(s))
		board := game.NewStandardBoard(rng, cfg.Game.Players)
		treasures := game.SymbolTreasures()
		rng.Shuffle(len(treasures), func(i, j int) { treasures[i], treasures[j] = treasures[j], treasures[i] })

		agents := make([]agent.Agent, cfg.Game.Players)
		for i := range agents {
			evaluator := cfg.Evaluator.NewEvaluator(s+uint64(i)+1, true)
			if cfg.Game.Temperature > 0 {
				agents[i] = agent.NewTrainingAgent(evaluator, cfg.Game.Temperature, rand.New(rand.NewPCG(s, uint64(i))))
			} else {
				agents[i] = agent.NewEvaluationAgent(evaluator)
			}
		}

		e := engine.NewLocalEngine(board, agents, treasures, cfg.Game.TreasuresPerPlayer)
		winner, gameMetric, _ := e.Run(cfg.Game.MaxTurns)

		out := cmd.OutOrStdout()
		if simRender {
			fmt.Fprint(out, board.RenderDebug())
		}
		if winner == 0 {
			fmt.Fprintf(out, "no winner after %d turns (seed %d)\n", gameMetric.TotalMoves, s)
		} else {
			fmt.Fprintf(out, "player %d won after %d turns in %s (seed %d)\n", winner, gameMetric.TotalMoves, gameMetric.Duration, s)
		}
		for _, p := range board.Players() {
			fmt.Fprintf(out, "player %d found %d treasures, %d left\n", p, e.Found(p), e.Remaining(p))
		}
		return nil
	},
}

func init() {
	simulateCmd.Flags().IntVar(&simPlayers, "players", 2, "Number of players (1-4)")
	simulateCmd.Flags().IntVar(&simMaxTurns, "max-turns", 300, "Turn limit")
	simulateCmd.Flags().BoolVar(&simRender, "render", false, "Print the final board")
}
