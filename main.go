// mazenet simulates sliding-tile maze games between Monte Carlo agents.
//
// Usage:
//
//	mazenet simulate            - Play a local game between agents
//	mazenet recommend           - Recommend a turn for a board
//	mazenet render              - Print a board
//	mazenet experiment          - Run agent configurations against each other
//
// Global flags:
//
//	--config <path> - Configuration file (default: search ~/.mazenet, ./configs, embedded)
//	--seed <value>  - RNG seed for reproducible boards and searches (0 = time based)
//	--debug         - Log per-turn details
package main

import (
	"fmt"
	"os"
	"time"

	"mazenet/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagSeed   uint64
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazenet",
	Short: "Sliding-tile maze engine with Monte Carlo agents",
	Long: `mazenet plays sliding-tile maze games: players shift a row or column of
the 7x7 board with the spare tile, then walk along open passages to their
next treasure. Automated players pick their turns by Monte Carlo simulation.

Examples:
  mazenet simulate --players 3
  mazenet render --json > board.json
  mazenet recommend --board board.json --player 1 --target sym07
  mazenet experiment --games 4`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if flagDebug {
			level = zerolog.DebugLevel
		}
		zerolog.SetGlobalLevel(level)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a configuration file")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(experimentCmd)
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func seed() uint64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return uint64(time.Now().UnixNano())
}
