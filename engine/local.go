package engine

import (
	"fmt"
	"time"

	"jungle/experiments/metrics"
	"jungle/game"
	"jungle/searcher/agent"

	"github.com/rs/zerolog/log"
)

type Option func(e *Local)

var _ Engine = (*Local)(nil)

// Local plays two agents against each other in-process, Red's agent first.
type Local struct {
	state    *game.GameState
	agents   [2]agent.Agent
	maxTurns int
}

func WithMaxTurns(maxTurns int) Option {
	return func(e *Local) {
		if maxTurns > 0 {
			e.maxTurns = maxTurns
		}
	}
}

// WithState starts the game from the given position instead of the standard one.
func WithState(state *game.GameState) Option {
	return func(e *Local) {
		if state != nil {
			e.state = state
		}
	}
}

func LocalEngine(red, black agent.Agent, options ...Option) *Local {
	if red == nil || black == nil {
		panic("need an agent for each side")
	}

	e := &Local{
		state:    game.NewGameState(),
		agents:   [2]agent.Agent{red, black},
		maxTurns: MaxTurns,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Local) State() *game.GameState {
	return e.state
}

// Run executes the game loop until a winner is found or the turn cap is hit,
// in which case the outcome is still ongoing.
func (e *Local) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.state.CurrentPlayer,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("%s is starting", e.state.CurrentPlayer)

	turn := 1
	for !e.state.IsTerminal() && turn <= e.maxTurns {
		if e.state.ResolveNoMoves().IsOver() {
			break
		}

		player := e.state.CurrentPlayer
		move, searchMetric, ok := e.agents[agentIndex(player)].FindMove(e.state)
		if !ok || !e.state.IsLegal(move) {
			panic(fmt.Sprintf("agent for %s returned an unplayable move %v", player, move))
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       player,
			Move:         move,
			SearchMetric: searchMetric,
		})

		e.state.Play(move)
		log.Debug().Msgf("turn %d: %s played %v", turn, player, move)
		turn++
	}

	if e.state.IsTerminal() {
		log.Debug().Msgf("game ended: %v", e.state.Outcome)
	} else {
		log.Debug().Msgf("stopped after %d turns (no winner yet)", e.maxTurns)
	}

	gameMetric.Winner = e.state.Winner()
	gameMetric.Reason = e.state.Outcome.Reason
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	return e.state.Outcome, gameMetric, moveMetrics
}

func agentIndex(side game.Side) int {
	if side == game.Black {
		return 1
	}
	return 0
}
