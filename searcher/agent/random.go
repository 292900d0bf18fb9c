package agent

import (
	"time"

	"jungle/experiments/metrics"
	"jungle/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random legal move.
// A zero seed seeds from the clock.
func NewRandomAgent(seed uint64) Agent {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric, bool) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, false
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{Candidates: len(moves)}, true
}
