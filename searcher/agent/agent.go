package agent

import (
	"mazenet/game"
	"mazenet/searcher"
)

type Agent interface {
	// FindAction returns the turn to play and the search that produced it
	FindAction(board *game.Board, p game.Player, target game.Treasure) (searcher.Recommendation, error)
}
