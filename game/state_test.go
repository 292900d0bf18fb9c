package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGameStatePlay(t *testing.T) {
	t.Run("passing the turn after an ordinary move", func(t *testing.T) {
		gs := NewGameState()
		require.Equal(t, Red, gs.CurrentPlayer, "Red should move first")

		outcome := gs.Play(mv(2, 0, 3, 0))

		require.Equal(t, Ongoing, outcome)
		require.Equal(t, Black, gs.CurrentPlayer)
		require.Equal(t, mv(2, 0, 3, 0), *gs.LastMove)
		require.Equal(t, Piece{Kind: Rat, Side: Red}, gs.Board.At(Square{3, 0}))
	})

	t.Run("winning on entering the enemy den", func(t *testing.T) {
		b := MustParseBoard(`
		......e
		.......
		.......
		.......
		.......
		.......
		ltwpcdr
		.......
		..C....`)
		gs := NewGameStateFrom(b, Red)

		outcome := gs.Play(mv(8, 2, 8, 3))

		require.Equal(t, Outcome{Winner: Red, Reason: DenReached}, outcome)
		require.True(t, gs.IsTerminal())
		require.Equal(t, Red, gs.CurrentPlayer, "Turn should not pass once decided")
		require.Empty(t, gs.LegalMoves())
	})

	t.Run("winning by taking the last enemy piece", func(t *testing.T) {
		b := MustParseBoard(`
		.......
		.......
		.......
		.......
		T......
		c......
		.......
		.......
		......R`)
		gs := NewGameStateFrom(b, Red)

		outcome := gs.Play(mv(4, 0, 5, 0))

		require.Equal(t, Outcome{Winner: Red, Reason: Annihilation}, outcome)
	})

	t.Run("continuing while a single enemy piece remains", func(t *testing.T) {
		b := MustParseBoard(`
		.......
		.......
		.......
		.......
		T......
		c......
		.......
		.......
		......r`)
		gs := NewGameStateFrom(b, Red)

		require.Equal(t, Ongoing, gs.Play(mv(4, 0, 5, 0)))
		require.Equal(t, Black, gs.CurrentPlayer)
	})

	t.Run("capturing in a trap regardless of rank", func(t *testing.T) {
		b := MustParseBoard(`
		.......
		..Ce...
		.......
		.......
		.......
		.......
		.......
		.......
		......r`)
		gs := NewGameStateFrom(b, Red)

		require.True(t, gs.IsLegal(mv(1, 2, 1, 3)))
		require.Equal(t, Ongoing, gs.Play(mv(1, 2, 1, 3)))
		require.Equal(t, Piece{Kind: Cat, Side: Red}, gs.Board.At(Square{1, 3}))
	})

	t.Run("panicking on an empty source", func(t *testing.T) {
		gs := NewGameState()
		require.Panics(t, func() { gs.Play(mv(4, 3, 4, 2)) })
	})

	t.Run("panicking on a move out of turn", func(t *testing.T) {
		gs := NewGameState()
		require.Panics(t, func() { gs.Play(mv(6, 6, 5, 6)) })
	})

	t.Run("panicking after the game ended", func(t *testing.T) {
		b := MustParseBoard(`
		.......
		.......
		.......
		.......
		T......
		c......
		.......
		.......
		.......`)
		gs := NewGameStateFrom(b, Red)
		gs.Play(mv(4, 0, 5, 0))
		require.Panics(t, func() { gs.Play(mv(5, 0, 6, 0)) })
	})
}

func TestResolveNoMoves(t *testing.T) {
	t.Run("losing with a boxed-in elephant", func(t *testing.T) {
		// Water on both flanks, rats it cannot take above and below.
		b := MustParseBoard(`
		.......
		.......
		.......
		...R...
		...e...
		...R...
		.......
		.......
		.......`)
		gs := NewGameStateFrom(b, Black)

		require.Empty(t, gs.LegalMoves())
		outcome := gs.ResolveNoMoves()

		require.Equal(t, Outcome{Winner: Red, Reason: NoLegalMoves}, outcome)
		require.True(t, gs.IsTerminal())
	})

	t.Run("losing with an elephant cornered by rats", func(t *testing.T) {
		b := MustParseBoard(`
		.......
		.......
		.......
		.......
		.......
		.......
		.......
		R......
		eR.....`)
		gs := NewGameStateFrom(b, Black)

		require.Equal(t, Red, gs.ResolveNoMoves().Winner)
	})

	t.Run("leaving a mobile side alone", func(t *testing.T) {
		gs := NewGameState()
		require.Equal(t, Ongoing, gs.ResolveNoMoves())
	})
}

func TestGameStateHash(t *testing.T) {
	a := NewGameState()
	b := NewGameState()
	require.Equal(t, a.Hash(), b.Hash())

	b.CurrentPlayer = Black
	require.NotEqual(t, a.Hash(), b.Hash(), "Side to move should change the hash")

	c := a.Copy()
	c.Play(mv(2, 0, 3, 0))
	require.NotEqual(t, a.Hash(), c.Hash())
	require.Equal(t, NewStandardBoard(), a.Board, "Copy should not share the board")
}
