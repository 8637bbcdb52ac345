package agent

import (
	"mazenet/game"
	"mazenet/searcher"
)

type evaluationAgent struct {
	evaluator *searcher.Evaluator
}

// NewEvaluationAgent returns an agent that always plays the evaluator's best action.
func NewEvaluationAgent(evaluator *searcher.Evaluator) Agent {
	return evaluationAgent{evaluator: evaluator}
}

func (a evaluationAgent) FindAction(board *game.Board, p game.Player, target game.Treasure) (searcher.Recommendation, error) {
	return a.evaluator.Recommend(board, p, target)
}
