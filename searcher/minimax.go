package searcher

import (
	"sync"
	"time"

	"jungle/experiments/metrics"
	"jungle/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(m *Minimax)

// Result of a root search. Found is false when the side to move had no legal
// move, which loses the game for that side.
type Result struct {
	Move   game.Move
	Score  int
	Found  bool
	Metric metrics.SearchMetric
}

// Minimax picks moves by depth-bounded minimax with alpha-beta pruning over
// the board it is given, mutating the board in place and restoring it before
// returning. A Minimax runs one search at a time.
type Minimax struct {
	depth      int
	goroutines int
	evaluate   game.Evaluate
	rng        *rand.Rand
	metrics    metrics.Collector
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth >= 0 {
			m.depth = depth
		}
	}
}

// WithGoroutines spreads root moves over n workers, each searching its own
// copy of the board.
func WithGoroutines(n int) Option {
	return func(m *Minimax) {
		if n > 0 {
			m.goroutines = n
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithSeed fixes the tie-break source; seed 0 is ignored.
func WithSeed(seed uint64) Option {
	return func(m *Minimax) {
		if seed != 0 {
			m.rng = rand.New(rand.NewSource(seed))
		}
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(m *Minimax) {
		if rng != nil {
			m.rng = rng
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:      DefaultDepth,
		goroutines: 1,
		evaluate:   game.EvaluateMaterial,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

// BestMove searches at the configured depth.
func (m *Minimax) BestMove(b *game.Board, side game.Side) (game.Move, bool) {
	r := m.Search(b, side, m.depth)
	return r.Move, r.Found
}

// Search scores every legal move of side and returns one of the best, chosen
// uniformly at random among equal scores. Each root move is searched with the
// full window so its score is exact. Depth 0 behaves like depth 1: only the
// immediate moves are evaluated.
func (m *Minimax) Search(b *game.Board, side game.Side, depth int) Result {
	m.metrics.Start(depth, m.goroutines)

	moves := b.LegalMoves(side)
	if len(moves) == 0 {
		return Result{Metric: m.metrics.Complete(0, -game.WinScore), Score: -game.WinScore}
	}

	var scores []int
	if m.goroutines > 1 && len(moves) > 1 {
		scores = m.scoreParallel(*b, side, moves, depth)
	} else {
		scores = make([]int, len(moves))
		for i, mv := range moves {
			scores[i] = m.scoreMove(b, side, mv, depth)
		}
	}

	best := -Inf
	var candidates []int
	for i, score := range scores {
		switch {
		case score > best:
			best = score
			candidates = append(candidates[:0], i)
		case score == best:
			candidates = append(candidates, i)
		}
	}
	chosen := moves[candidates[m.rng.Intn(len(candidates))]]

	metric := m.metrics.Complete(len(moves), best)
	log.Debug().
		Str("side", side.String()).
		Int("depth", depth).
		Int("nodes", metric.Nodes).
		Int("cutoffs", metric.Cutoffs).
		Int("score", best).
		Int("ties", len(candidates)).
		Msgf("picked %v", chosen)

	return Result{Move: chosen, Score: best, Found: true, Metric: metric}
}

func (m *Minimax) scoreParallel(b game.Board, side game.Side, moves []game.Move, depth int) []int {
	task := make(chan int, len(moves))
	for i := range moves {
		task <- i
	}
	close(task)

	scores := make([]int, len(moves))
	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			local := b // Private copy per worker
			for i := range task {
				scores[i] = m.scoreMove(&local, side, moves[i], depth)
			}
		}()
	}

	wg.Wait()
	return scores
}

func (m *Minimax) scoreMove(b *game.Board, root game.Side, mv game.Move, depth int) int {
	undo := b.Apply(mv)
	defer undo()
	return m.minimax(b, root, depth-1, -Inf, Inf, false)
}

// minimax returns the value of b for root, with root to move when maximizing
// and root's opponent to move otherwise.
func (m *Minimax) minimax(b *game.Board, root game.Side, depth, alpha, beta int, maximizing bool) int {
	m.metrics.AddNode()

	score := m.evaluate(b, root)
	if game.IsDecisive(score) || depth <= 0 {
		return score
	}

	toMove := root
	if !maximizing {
		toMove = root.Opponent()
	}
	moves := b.LegalMoves(toMove)
	if len(moves) == 0 { // The side to move loses
		if maximizing {
			return -game.WinScore
		}
		return game.WinScore
	}

	if maximizing {
		best := -Inf
		for _, mv := range moves {
			best = max(best, m.child(b, root, mv, depth-1, alpha, beta, false))
			alpha = max(alpha, best)
			if beta <= alpha {
				m.metrics.AddCutoff()
				break
			}
		}
		return best
	}

	best := Inf
	for _, mv := range moves {
		best = min(best, m.child(b, root, mv, depth-1, alpha, beta, true))
		beta = min(beta, best)
		if beta <= alpha {
			m.metrics.AddCutoff()
			break
		}
	}
	return best
}

func (m *Minimax) child(b *game.Board, root game.Side, mv game.Move, depth, alpha, beta int, maximizing bool) int {
	undo := b.Apply(mv)
	defer undo()
	return m.minimax(b, root, depth, alpha, beta, maximizing)
}
