package agent

import (
	"jungle/experiments/metrics"
	"jungle/game"
	"jungle/searcher"
)

type evaluationAgent struct {
	minimax *searcher.Minimax
}

// NewEvaluationAgent returns an agent that plays the best move found by minimax.
func NewEvaluationAgent(minimax *searcher.Minimax) Agent {
	return evaluationAgent{minimax: minimax}
}

func (a evaluationAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric, bool) {
	if state.IsTerminal() {
		return game.Move{}, metrics.SearchMetric{}, false
	}
	b := state.Board // Search on a copy
	r := a.minimax.Search(&b, state.CurrentPlayer, a.minimax.Depth())
	return r.Move, r.Metric, r.Found
}
