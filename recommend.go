package main

import (
	"fmt"

	"mazenet/game"
	"mazenet/searcher"

	"github.com/spf13/cobra"
)

var (
	recBoard  string
	recPlayer int
	recTarget string
	recTop    int
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend a turn for a player",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		board, err := loadBoard(recBoard, game.MaxPlayers)
		if err != nil {
			return err
		}

		p := game.Player(recPlayer)
		target := game.Treasure(recTarget)
		if target == game.NoTreasure {
			target = game.Home(p)
		}

		evaluator := cfg.Evaluator.NewEvaluator(seed(), true)
		rec, err := evaluator.Recommend(board, p, target)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "player %d chasing %s: %s, then walk to %s\n", p, target, rec.Action, rec.Destination)
		fmt.Fprintf(out, "mean %.2f variance %.2f over %d rounds (%d candidates, %s)\n",
			rec.Mean(), rec.Variance(), rec.Visits, len(rec.Candidates), rec.Metric.Duration)

		ranked := searcher.Rank(rec.Candidates)
		for i := 0; i < recTop && i < len(ranked); i++ {
			r := ranked[i]
			fmt.Fprintf(out, "%2d. %-32s mean %6.2f variance %6.2f\n", i+1, r.Action, r.Mean(), r.Variance())
		}
		return nil
	},
}

func init() {
	recommendCmd.Flags().StringVar(&recBoard, "board", "", "JSON board file (default: a new standard board)")
	recommendCmd.Flags().IntVar(&recPlayer, "player", 1, "Player to recommend for")
	recommendCmd.Flags().StringVar(&recTarget, "target", "", "Target treasure (default: the player's home)")
	recommendCmd.Flags().IntVar(&recTop, "top", 5, "Number of ranked candidates to list")
}
