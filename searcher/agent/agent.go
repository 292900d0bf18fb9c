package agent

import (
	"jungle/experiments/metrics"
	"jungle/game"
)

type Agent interface {
	// FindMove returns a move for the side to move along with performance metrics (if collected).
	// The bool is false when that side has no legal move. The state is left untouched.
	FindMove(state *game.GameState) (game.Move, metrics.SearchMetric, bool)
}
