package gamemaster

import (
	"testing"
	"time"

	"jungle/game"
	"jungle/searcher"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type searchFunc func(b *game.Board, side game.Side, depth int) searcher.Result

func (f searchFunc) Search(b *game.Board, side game.Side, depth int) searcher.Result {
	return f(b, side, depth)
}

func sq(row, col int) game.Square {
	return game.Square{Row: row, Col: col}
}

func newTestSession(t *testing.T, human game.Side) (*Session, *QueueScheduler, UpdateGetter) {
	scheduler := &QueueScheduler{}
	s := NewSession(
		WithScheduler(scheduler),
		WithSearcher(searcher.NewMinimax(searcher.WithSeed(1))),
		WithDepth(1),
	)
	_, getUpdate, err := s.NewGame(human)
	require.NoError(t, err)
	return s, scheduler, getUpdate
}

func TestSessionNewGame(t *testing.T) {
	t.Run("starting with red to move", func(t *testing.T) {
		s, scheduler, getUpdate := newTestSession(t, game.Red)

		require.Equal(t, game.Red, s.CurrentTurn())
		require.Equal(t, game.Red, s.HumanSide())
		require.False(t, s.IsTerminal())
		require.Equal(t, game.Ongoing, s.Outcome())
		require.Equal(t, game.Piece{Kind: game.Lion, Side: game.Red}, s.CellAt(0, 0))
		require.Equal(t, game.Water, s.TerrainAt(3, 1))
		require.Equal(t, game.OutOfBounds, s.TerrainAt(9, 0))
		require.Zero(t, scheduler.Pending(), "The human moves first, nothing to schedule")

		_, ok := getUpdate()
		require.False(t, ok, "No update before the first move")
		_, ok = s.LastAiMove()
		require.False(t, ok)
	})

	t.Run("rejecting an invalid side", func(t *testing.T) {
		_, _, err := NewSession().NewGame(game.NoSide)
		require.Error(t, err)
	})

	t.Run("letting the engine open when the human plays black", func(t *testing.T) {
		s, scheduler, getUpdate := newTestSession(t, game.Black)
		require.Equal(t, 1, scheduler.Pending())

		scheduler.RunPending()

		mv, ok := s.LastAiMove()
		require.True(t, ok)
		require.Equal(t, game.Black, s.CurrentTurn())
		u, ok := getUpdate()
		require.True(t, ok)
		require.Equal(t, mv, u.Move)
		require.Equal(t, game.Red, u.Side)
		require.Equal(t, s.State().Hash(), u.Hash)
	})

	t.Run("using distinct ids", func(t *testing.T) {
		a, b := NewSession(), NewSession()
		require.NotEqual(t, uuid.Nil, a.ID())
		require.NotEqual(t, a.ID(), b.ID())
	})
}

func TestSessionAttemptMove(t *testing.T) {
	t.Run("rejecting illegal moves without changes", func(t *testing.T) {
		s, scheduler, getUpdate := newTestSession(t, game.Red)
		before := s.State()

		for _, m := range []game.Move{
			{From: sq(0, 0), To: sq(2, 0)}, // Not a step
			{From: sq(6, 0), To: sq(5, 0)}, // Black's piece
			{From: sq(3, 3), To: sq(4, 3)}, // Empty square
		} {
			accepted, outcome := s.AttemptMove(m.From, m.To)
			require.False(t, accepted, "move %v", m)
			require.Equal(t, game.Ongoing, outcome)
		}

		require.Equal(t, before, s.State())
		require.Zero(t, scheduler.Pending())
		_, ok := getUpdate()
		require.False(t, ok)
	})

	t.Run("scheduling the engine reply after a legal move", func(t *testing.T) {
		s, scheduler, getUpdate := newTestSession(t, game.Red)

		accepted, outcome := s.AttemptMove(sq(2, 0), sq(3, 0))
		require.True(t, accepted)
		require.Equal(t, game.Ongoing, outcome)
		require.Equal(t, game.Black, s.CurrentTurn())
		require.Equal(t, 1, scheduler.Pending())

		u, ok := getUpdate()
		require.True(t, ok)
		require.Equal(t, game.Move{From: sq(2, 0), To: sq(3, 0)}, u.Move)
		require.Equal(t, game.Red, u.Side)

		accepted, _ = s.AttemptMove(sq(3, 0), sq(4, 0))
		require.False(t, accepted, "Human cannot move during the engine's turn")

		scheduler.RunPending()
		require.Equal(t, game.Red, s.CurrentTurn())
		u, ok = getUpdate()
		require.True(t, ok)
		require.Equal(t, game.Black, u.Side)
	})

	t.Run("ending the game on den entry", func(t *testing.T) {
		s, scheduler, getUpdate := newTestSession(t, game.Red)
		s.state = game.NewGameStateFrom(game.MustParseBoard(`
		.......
		.......
		.......
		.......
		.......
		.......
		.......
		...L...
		e......`), game.Red)

		accepted, outcome := s.AttemptMove(sq(7, 3), sq(8, 3))

		require.True(t, accepted)
		require.Equal(t, game.Outcome{Winner: game.Red, Reason: game.DenReached}, outcome)
		require.True(t, s.IsTerminal())
		require.Zero(t, scheduler.Pending())
		require.Nil(t, s.LegalDestinations(sq(8, 0)))

		u, ok := getUpdate()
		require.True(t, ok)
		require.Equal(t, outcome, u.Outcome)
		_, ok = getUpdate()
		require.False(t, ok, "Feed should be closed once the game is over")

		accepted, _ = s.AttemptMove(sq(8, 3), sq(8, 2))
		require.False(t, accepted)
		_, err := s.RequestAiMove(1)
		require.ErrorIs(t, err, ErrGameOver)
	})

	t.Run("winning when the engine is left without moves", func(t *testing.T) {
		s, scheduler, _ := newTestSession(t, game.Red)
		s.state = game.NewGameStateFrom(game.MustParseBoard(`
		L......
		.......
		.......
		...R...
		...e...
		...R...
		.......
		.......
		.......`), game.Red)

		accepted, outcome := s.AttemptMove(sq(0, 0), sq(0, 1))

		require.True(t, accepted)
		require.Equal(t, game.Outcome{Winner: game.Red, Reason: game.NoLegalMoves}, outcome)
		require.Zero(t, scheduler.Pending())
	})
}

func TestSessionRequestAiMove(t *testing.T) {
	t.Run("refusing during the human's turn", func(t *testing.T) {
		s, _, _ := newTestSession(t, game.Red)
		_, err := s.RequestAiMove(2)
		require.ErrorIs(t, err, ErrNotAiTurn)
	})

	t.Run("searching at the requested depth", func(t *testing.T) {
		var depths []int
		minimax := searcher.NewMinimax(searcher.WithSeed(2))
		s := NewSession(
			WithScheduler(&QueueScheduler{}),
			WithSearcher(searchFunc(func(b *game.Board, side game.Side, depth int) searcher.Result {
				depths = append(depths, depth)
				return minimax.Search(b, side, depth)
			})),
		)
		_, _, err := s.NewGame(game.Black)
		require.NoError(t, err)

		r, err := s.RequestAiMove(2)

		require.NoError(t, err)
		require.True(t, r.Found)
		require.Equal(t, game.Ongoing, r.Outcome)
		require.Equal(t, []int{2}, depths)
		require.Equal(t, game.Red, s.State().Board.At(r.Move.To).Side)
	})

	t.Run("losing when the engine has no legal move", func(t *testing.T) {
		s, _, _ := newTestSession(t, game.Red)
		s.state = game.NewGameStateFrom(game.MustParseBoard(`
		L......
		.......
		.......
		...R...
		...e...
		...R...
		.......
		.......
		.......`), game.Black)

		r, err := s.RequestAiMove(3)

		require.NoError(t, err)
		require.False(t, r.Found)
		require.Equal(t, game.Outcome{Winner: game.Red, Reason: game.NoLegalMoves}, r.Outcome)
		require.True(t, s.IsTerminal())
	})

	t.Run("discarding a search overtaken by a new game", func(t *testing.T) {
		var s *Session
		s = NewSession(
			WithScheduler(&QueueScheduler{}),
			WithSearcher(searchFunc(func(b *game.Board, side game.Side, depth int) searcher.Result {
				_, _, err := s.NewGame(game.Red)
				require.NoError(t, err)
				return searcher.NewMinimax(searcher.WithSeed(3)).Search(b, side, depth)
			})),
		)
		_, _, err := s.NewGame(game.Black)
		require.NoError(t, err)

		_, err = s.RequestAiMove(1)

		require.ErrorIs(t, err, ErrSessionReset)
		require.Equal(t, game.NewGameState(), s.State(), "The fresh game should be untouched")
	})
}

func TestSessionLegalDestinations(t *testing.T) {
	s, _, _ := newTestSession(t, game.Red)
	require.Equal(t, []game.Square{sq(1, 0), sq(3, 0), sq(2, 1)}, s.LegalDestinations(sq(2, 0)))
	require.Empty(t, s.LegalDestinations(sq(4, 3)), "Empty squares have no destinations")
}

func TestSessionWithGoScheduler(t *testing.T) {
	s := NewSession(WithSearcher(searcher.NewMinimax(searcher.WithSeed(4))), WithDepth(2))
	_, getUpdate, err := s.NewGame(game.Red)
	require.NoError(t, err)

	accepted, _ := s.AttemptMove(sq(2, 0), sq(3, 0))
	require.True(t, accepted)

	require.Eventually(t, func() bool {
		return s.CurrentTurn() == game.Red
	}, 5*time.Second, 10*time.Millisecond, "Engine reply should arrive on its own")

	_, ok := getUpdate()
	require.True(t, ok)
	u, ok := getUpdate()
	require.True(t, ok)
	require.Equal(t, game.Black, u.Side)
}

func TestSessionRestartDuringSearch(t *testing.T) {
	s := NewSession(WithSearcher(searcher.NewMinimax(searcher.WithSeed(6), searcher.WithMetrics())), WithDepth(3))

	var getUpdate UpdateGetter
	for i := 0; i < 4; i++ {
		var err error
		_, getUpdate, err = s.NewGame(game.Black)
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}

	require.Eventually(t, func() bool {
		return s.CurrentTurn() == game.Black
	}, 10*time.Second, 10*time.Millisecond, "The last game should get its opening move")
	time.Sleep(50 * time.Millisecond)

	require.Equal(t, game.Black, s.CurrentTurn(), "Overtaken searches must not play into the new game")
	u, ok := getUpdate()
	require.True(t, ok)
	require.Equal(t, game.Red, u.Side)
	_, ok = getUpdate()
	require.False(t, ok, "Only one engine move belongs to the last game")
}

func TestQueueScheduler(t *testing.T) {
	q := &QueueScheduler{}
	var order []int
	q.Defer(func() {
		order = append(order, 1)
		q.Defer(func() { order = append(order, 3) })
	})
	q.Defer(func() { order = append(order, 2) })
	require.Equal(t, 2, q.Pending())

	q.RunPending()

	require.Equal(t, []int{1, 2, 3}, order)
	require.Zero(t, q.Pending())
}
