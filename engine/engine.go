package engine

import (
	"jungle/experiments/metrics"
	"jungle/game"
)

const MaxTurns = 300

type Engine interface {
	// Run plays a game till there's a winner or a max number of turns is reached
	Run() (outcome game.Outcome, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
