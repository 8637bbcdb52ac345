package main

import (
	"fmt"

	"mazenet/experiments"
	"mazenet/experiments/metrics"

	"github.com/spf13/cobra"
)

var (
	expGames   int
	expNoStore bool
)

var experimentCmd = &cobra.Command{
	Use:   "experiment",
	Short: "Play configured agents against the first one and record the results",
	Long: `experiment plays every configured agent against the first (baseline) agent in
two-player games with alternating starting seats. Results are written as CSV
files under the output directory and saved to the SQLite database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("games") {
			cfg.Experiment.Games = expGames
		}
		if len(cfg.Experiment.Agents) == 0 {
			return fmt.Errorf("experiment: no agents configured")
		}
		if cfg.Experiment.Games < 1 {
			return fmt.Errorf("experiment: games must be positive, got %d", cfg.Experiment.Games)
		}

		configs := experiments.AgentConfigs(cfg.Experiment.Agents)
		gameConfig := cfg.Game
		gameConfig.Players = 2
		x := experiments.Experiment{
			Name:     cfg.Experiment.Name,
			Configs:  configs,
			MatchUps: experiments.AgainstBaseline(configs),
			Games:    cfg.Experiment.Games,
			Game:     gameConfig,
			Seed:     seed(),
		}
		result := x.Run()

		out := cmd.OutOrStdout()
		if expNoStore {
			for _, g := range result.Games {
				fmt.Fprintf(out, "game %d: agent %d vs agent %d, winner player %d after %d moves\n",
					g.ID, g.Agent1, g.Agent2, g.Winner, g.TotalMoves)
			}
			return nil
		}

		writer, err := metrics.NewWriter(cfg.Experiment.OutputDir, x.Name)
		if err != nil {
			return err
		}
		store, err := metrics.OpenStore(cfg.Experiment.Database)
		if err != nil {
			return err
		}
		defer store.Close()

		runID, err := x.Store(result, writer, store)
		if err != nil {
			return err
		}
		summaries, err := store.Summary(runID)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "run %s (%s)\n", runID, writer.Dir())
		for _, s := range summaries {
			fmt.Fprintf(out, "agent %d: %d/%d wins, %d rounds simulated\n", s.Agent, s.Wins, s.Games, s.Rounds)
		}
		return nil
	},
}

func init() {
	experimentCmd.Flags().IntVar(&expGames, "games", 0, "Games per match up (default: from config)")
	experimentCmd.Flags().BoolVar(&expNoStore, "no-store", false, "Print results instead of writing CSV and SQLite output")
}
