package engine

import (
	"errors"
	"fmt"
	"time"

	"mazenet/experiments/metrics"
	"mazenet/game"
	"mazenet/searcher"
	"mazenet/searcher/agent"
	"mazenet/utils"

	"github.com/rs/zerolog/log"
)

// LocalEngine runs a game between in-process agents. Players take turns in ascending id
// order: shift the board, walk, and collect the current target treasure. Once all dealt
// treasures are found, the target becomes the player's start tile.
type LocalEngine struct {
	Board   *game.Board
	players []game.Player
	agents  map[game.Player]agent.Agent
	targets map[game.Player][]game.Treasure // Remaining treasures, current target first
	found   map[game.Player]int
}

// NewLocalEngine deals the treasures among the board's players. perPlayer of 0 deals
// every treasure evenly.
func NewLocalEngine(board *game.Board, agents []agent.Agent, treasures []game.Treasure, perPlayer int) *LocalEngine {
	players := board.Players()
	if len(players) != len(agents) {
		panic("number of players does not match number of agents")
	}
	if len(players) < 1 {
		panic("need at least one player")
	}
	if perPlayer <= 0 {
		perPlayer = len(treasures) / len(players)
	}

	hands := utils.Deal(treasures, len(players), perPlayer)
	e := &LocalEngine{
		Board:   board,
		players: players,
		agents:  make(map[game.Player]agent.Agent, len(players)),
		targets: make(map[game.Player][]game.Treasure, len(players)),
		found:   make(map[game.Player]int, len(players)),
	}
	for i, p := range players {
		e.agents[p] = agents[i]
		e.targets[p] = hands[i]
	}
	return e
}

// Target returns the treasure the player is currently chasing.
func (e *LocalEngine) Target(p game.Player) game.Treasure {
	if remaining := e.targets[p]; len(remaining) > 0 {
		return remaining[0]
	}
	return game.Home(p)
}

// Remaining returns how many dealt treasures the player still has to find.
func (e *LocalEngine) Remaining(p game.Player) int {
	return len(e.targets[p])
}

func (e *LocalEngine) Found(p game.Player) int {
	return e.found[p]
}

func (e *LocalEngine) Run(maxTurns int) (game.Player, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: int(e.players[0]),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("player %d is starting", e.players[0])

	var winner game.Player
	turn := 1
	for ; winner == 0 && turn <= maxTurns; turn++ {
		p := e.players[(turn-1)%len(e.players)]
		rec, won, err := e.Turn(p)
		if err != nil {
			panic(fmt.Sprintf("turn %d of player %d failed: %v", turn, p, err))
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       int(p),
			Action:       rec.Action.String(),
			SearchMetric: rec.Metric,
		})
		if won {
			winner = p
		}
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.Winner = int(winner)
	for _, p := range e.players {
		gameMetric.TreasuresFound += e.found[p]
	}

	if winner != 0 {
		log.Info().Msgf("player %d won after %d turns", winner, gameMetric.TotalMoves)
	} else {
		log.Info().Msgf("stopped after %d turns without a winner", maxTurns)
	}
	return winner, gameMetric, moveMetrics
}

// Turn lets the player's agent pick an action, commits it to the board and walks the player.
// It reports whether the player won.
func (e *LocalEngine) Turn(p game.Player) (searcher.Recommendation, bool, error) {
	target := e.Target(p)
	rec, err := e.agents[p].FindAction(e.Board, p, target)
	if err != nil {
		return rec, false, err
	}

	if _, err := e.Board.Play(rec.Action); err != nil {
		return rec, false, err
	}
	if err := e.Board.PlayerMove(p, rec.Destination.X, rec.Destination.Y); err != nil {
		if !errors.Is(err, game.ErrUnreachableTarget) {
			return rec, false, err
		}
		log.Warn().Msgf("player %d cannot reach %s, staying put", p, rec.Destination)
	}
	if err := e.Board.Validate(); err != nil {
		return rec, false, fmt.Errorf("board invariants broken after %s: %w", rec.Action, err)
	}

	pos, _ := e.Board.Position(p)
	if e.Board.TileAt(pos).Treasure() != target {
		log.Debug().Msgf("player %d played %s and walked to %s", p, rec.Action, pos)
		return rec, false, nil
	}
	if len(e.targets[p]) == 0 {
		return rec, true, nil
	}

	e.targets[p] = e.targets[p][1:]
	e.found[p]++
	log.Debug().Msgf("player %d found %s, %d left", p, target, len(e.targets[p]))
	return rec, false, nil
}
