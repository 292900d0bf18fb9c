package gamemaster

import (
	"errors"
	"fmt"
	"sync"

	"jungle/game"
	"jungle/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	ErrGameOver         = errors.New("game is over - no moves allowed")
	ErrNotAiTurn        = errors.New("not the engine's turn")
	ErrSearchInProgress = errors.New("engine is already searching")
	ErrSessionReset     = errors.New("session was reset during the search")
)

const updateBuffer = 64

// Searcher picks a move for side on b, leaving b as it found it.
type Searcher interface {
	Search(b *game.Board, side game.Side, depth int) searcher.Result
}

// Update is published after every move applied in a session.
type Update struct {
	Move    game.Move
	Side    game.Side
	Outcome game.Outcome
	Hash    game.StateHash
}

// UpdateGetter returns the next pending update without blocking. The bool is
// false when there is none yet or the game is over and the feed drained.
type UpdateGetter func() (Update, bool)

// AiMove is the result of an engine turn. Found is false when the engine had
// no legal move and therefore lost.
type AiMove struct {
	Move    game.Move
	Found   bool
	Outcome game.Outcome
}

type Option func(s *Session)

func WithSearcher(searcher Searcher) Option {
	return func(s *Session) {
		if searcher != nil {
			s.searcher = searcher
		}
	}
}

func WithScheduler(scheduler Scheduler) Option {
	return func(s *Session) {
		if scheduler != nil {
			s.scheduler = scheduler
		}
	}
}

// WithDepth sets the depth of engine turns triggered by the session itself.
func WithDepth(depth int) Option {
	return func(s *Session) {
		if depth >= 0 {
			s.depth = depth
		}
	}
}

// Session is one human-vs-engine game. The human's moves are applied
// synchronously; the engine's reply is deferred through the Scheduler.
type Session struct {
	id        uuid.UUID
	logger    zerolog.Logger
	searcher  Searcher
	scheduler Scheduler
	depth     int

	// searchMu keeps one search running at a time across games, since a
	// Searcher is not safe for concurrent use.
	searchMu sync.Mutex

	mu         sync.Mutex
	state      *game.GameState
	human      game.Side
	generation int
	thinking   bool
	lastAiMove *game.Move
	updateCh   chan Update
	feedClosed bool
}

func NewSession(options ...Option) *Session {
	id := uuid.New()
	s := &Session{ // Default values
		id:        id,
		logger:    log.With().Str("game", id.String()).Logger(),
		scheduler: GoScheduler(),
		depth:     searcher.DefaultDepth,
	}
	for _, option := range options {
		option(s)
	}
	if s.searcher == nil {
		s.searcher = searcher.NewMinimax(searcher.WithDepth(s.depth))
	}
	return s
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

// NewGame resets the board to the standard layout with Red to move. When the
// engine plays Red its first move is scheduled right away.
func (s *Session) NewGame(human game.Side) (*game.GameState, UpdateGetter, error) {
	if human != game.Red && human != game.Black {
		return nil, nil, fmt.Errorf("invalid human side: %v", human)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.closeFeed()
	s.state = game.NewGameState()
	s.human = human
	s.generation++
	s.thinking = false
	s.lastAiMove = nil
	s.updateCh = make(chan Update, updateBuffer)
	s.feedClosed = false

	s.logger.Info().Msgf("new game, human plays %s", human)

	if s.state.CurrentPlayer != human {
		s.scheduleAiTurn()
	}

	updateCh := s.updateCh
	return s.state.Copy(), func() (Update, bool) {
		select {
		case u, ok := <-updateCh:
			return u, ok
		default:
			return Update{}, false
		}
	}, nil
}

// AttemptMove plays the human's move if it is legal. A rejected move leaves
// the session untouched. After an accepted move that does not end the game,
// the engine's reply is scheduled.
func (s *Session) AttemptMove(from, to game.Square) (accepted bool, outcome game.Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return false, game.Ongoing
	}
	m := game.Move{From: from, To: to}
	if s.state.CurrentPlayer != s.human || !s.state.IsLegal(m) {
		s.logger.Debug().Msgf("rejected move %v", m)
		return false, s.state.Outcome
	}

	s.play(m)
	// The engine loses on the spot if it is left without a move
	if s.state.ResolveNoMoves().IsOver() {
		s.closeFeed()
	}
	if !s.state.IsTerminal() {
		s.scheduleAiTurn()
	}
	return true, s.state.Outcome
}

// RequestAiMove searches depth plies for the engine's side and plays the
// result. If the engine has no legal move it loses and Found is false.
func (s *Session) RequestAiMove(depth int) (AiMove, error) {
	s.mu.Lock()
	if err := s.checkAiTurn(); err != nil {
		s.mu.Unlock()
		return AiMove{}, err
	}
	if s.state.ResolveNoMoves().IsOver() {
		s.closeFeed()
		s.logger.Info().Msgf("engine has no legal move: %v", s.state.Outcome)
		outcome := s.state.Outcome
		s.mu.Unlock()
		return AiMove{Outcome: outcome}, nil
	}
	b := s.state.Board
	side := s.state.CurrentPlayer
	generation := s.generation
	s.thinking = true
	s.mu.Unlock()

	// Search on a private copy so queries stay responsive meanwhile
	s.searchMu.Lock()
	r := s.searcher.Search(&b, side, depth)
	s.searchMu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		return AiMove{}, ErrSessionReset
	}
	s.thinking = false
	if !r.Found {
		// Only a custom searcher can give up here
		s.state.Outcome = game.Outcome{Winner: side.Opponent(), Reason: game.NoLegalMoves}
		s.closeFeed()
		return AiMove{Outcome: s.state.Outcome}, nil
	}

	s.play(r.Move)
	s.lastAiMove = &r.Move
	s.logger.Info().Msgf("engine played %v (score %d)", r.Move, r.Score)
	// The human loses on the spot if left without a move
	if s.state.ResolveNoMoves().IsOver() {
		s.closeFeed()
	}
	return AiMove{Move: r.Move, Found: true, Outcome: s.state.Outcome}, nil
}

func (s *Session) checkAiTurn() error {
	switch {
	case s.state == nil || s.state.IsTerminal():
		return ErrGameOver
	case s.state.CurrentPlayer == s.human:
		return ErrNotAiTurn
	case s.thinking:
		return ErrSearchInProgress
	}
	return nil
}

func (s *Session) scheduleAiTurn() {
	depth := s.depth
	s.scheduler.Defer(func() {
		if _, err := s.RequestAiMove(depth); err != nil {
			s.logger.Debug().Err(err).Msg("skipped engine turn")
		}
	})
}

// play applies a validated move and publishes it. Must hold s.mu.
func (s *Session) play(m game.Move) {
	side := s.state.CurrentPlayer
	outcome := s.state.Play(m)
	s.publish(Update{Move: m, Side: side, Outcome: outcome, Hash: s.state.Hash()})
	if outcome.IsOver() {
		s.logger.Info().Msgf("game over: %v", outcome)
		s.closeFeed()
	}
}

func (s *Session) publish(u Update) {
	if s.feedClosed {
		return
	}
	select {
	case s.updateCh <- u:
	default:
		s.logger.Warn().Msgf("update feed full, dropped %v", u.Move)
	}
}

func (s *Session) closeFeed() {
	if s.updateCh != nil && !s.feedClosed {
		close(s.updateCh)
		s.feedClosed = true
	}
}

func (s *Session) CellAt(row, col int) game.Piece {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return game.Piece{}
	}
	return s.state.Board.At(game.Square{Row: row, Col: col})
}

func (s *Session) TerrainAt(row, col int) game.Terrain {
	return game.TerrainAt(row, col)
}

// LegalDestinations lists where the piece on from may move, or nothing once
// the game is over.
func (s *Session) LegalDestinations(from game.Square) []game.Square {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil || s.state.IsTerminal() {
		return nil
	}
	return s.state.Board.LegalDestinations(from)
}

func (s *Session) CurrentTurn() game.Side {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return game.NoSide
	}
	return s.state.CurrentPlayer
}

func (s *Session) IsTerminal() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state != nil && s.state.IsTerminal()
}

func (s *Session) Outcome() game.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return game.Ongoing
	}
	return s.state.Outcome
}

func (s *Session) HumanSide() game.Side {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.human
}

func (s *Session) LastAiMove() (game.Move, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastAiMove == nil {
		return game.Move{}, false
	}
	return *s.lastAiMove, true
}

// State returns a copy of the current game state.
func (s *Session) State() *game.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return nil
	}
	return s.state.Copy()
}
