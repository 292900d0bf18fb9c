package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

type WinReason int

const (
	NotOver WinReason = iota
	DenReached
	Annihilation
	NoLegalMoves
)

func (r WinReason) String() string {
	switch r {
	case DenReached:
		return "reached the den"
	case Annihilation:
		return "captured all pieces"
	case NoLegalMoves:
		return "opponent has no legal moves"
	default:
		return "ongoing"
	}
}

// Outcome is Ongoing while Winner is NoSide.
type Outcome struct {
	Winner Side
	Reason WinReason
}

var Ongoing = Outcome{}

func (o Outcome) IsOver() bool {
	return o.Winner != NoSide
}

func (o Outcome) String() string {
	if !o.IsOver() {
		return "ongoing"
	}
	return fmt.Sprintf("%s wins (%s)", o.Winner, o.Reason)
}

// GameState is the board plus whose turn it is and whether the game has been
// decided. It is owned by a single caller at a time.
type GameState struct {
	Board         Board
	CurrentPlayer Side
	Outcome       Outcome
	LastMove      *Move
}

// NewGameState returns the standard starting position with Red to move.
func NewGameState() *GameState {
	return &GameState{
		Board:         NewStandardBoard(),
		CurrentPlayer: Red,
	}
}

// NewGameStateFrom starts a game from an arbitrary board.
func NewGameStateFrom(b Board, toMove Side) *GameState {
	return &GameState{
		Board:         b,
		CurrentPlayer: toMove,
	}
}

func (gs *GameState) Copy() *GameState {
	c := *gs
	if gs.LastMove != nil {
		m := *gs.LastMove
		c.LastMove = &m
	}
	return &c
}

func (gs *GameState) IsTerminal() bool {
	return gs.Outcome.IsOver()
}

func (gs *GameState) Winner() Side {
	return gs.Outcome.Winner
}

// LegalMoves returns the legal moves of the side to move, or nothing once the
// game is decided.
func (gs *GameState) LegalMoves() []Move {
	if gs.IsTerminal() {
		return nil
	}
	return gs.Board.LegalMoves(gs.CurrentPlayer)
}

func (gs *GameState) IsLegal(m Move) bool {
	if gs.IsTerminal() {
		return false
	}
	p := gs.Board.At(m.From)
	return !p.IsEmpty() && p.Side == gs.CurrentPlayer && gs.Board.IsLegal(m)
}

// Play applies a move the caller has already validated and settles the game
// if the mover entered the enemy den or took the last enemy piece; otherwise
// the turn passes. It panics when handed a move that IsLegal rejects.
func (gs *GameState) Play(m Move) Outcome {
	if gs.IsTerminal() {
		panic(fmt.Sprintf("move %v played after the game ended: %v", m, gs.Outcome))
	}
	if !gs.IsLegal(m) {
		panic(fmt.Sprintf("illegal move %v for %s", m, gs.CurrentPlayer))
	}

	mover := gs.Board.At(m.From)
	gs.Board.Apply(m)
	gs.LastMove = &m

	opponent := mover.Side.Opponent()
	switch {
	case m.To.Terrain().DenOwner() == opponent:
		gs.Outcome = Outcome{Winner: mover.Side, Reason: DenReached}
	case !gs.Board.HasPieces(opponent):
		gs.Outcome = Outcome{Winner: mover.Side, Reason: Annihilation}
	default:
		gs.CurrentPlayer = opponent
	}
	return gs.Outcome
}

// ResolveNoMoves ends the game if the side to move cannot move: that side
// loses. Callers check this before asking a side for its move.
func (gs *GameState) ResolveNoMoves() Outcome {
	if gs.IsTerminal() {
		return gs.Outcome
	}
	if !gs.Board.HasLegalMove(gs.CurrentPlayer) {
		gs.Outcome = Outcome{Winner: gs.CurrentPlayer.Opponent(), Reason: NoLegalMoves}
	}
	return gs.Outcome
}

func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int8(gs.CurrentPlayer))
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			p := gs.Board.Cells[r][c]
			hasher.Write([]byte{byte(p.Kind), byte(p.Side)})
		}
	}

	return StateHash(hasher.Sum64())
}
