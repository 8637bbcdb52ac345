package engine

import (
	"mazenet/experiments/metrics"
	"mazenet/game"
)

type Engine interface {
	// Run plays turns till a player returns home with all its treasures or maxTurns is reached
	Run(maxTurns int) (winner game.Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
