package game

import "fmt"

// Square addresses a cell by row (0..8) and column (0..6).
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (sq Square) OnBoard() bool {
	return OnBoard(sq.Row, sq.Col)
}

func (sq Square) Terrain() Terrain {
	return TerrainAt(sq.Row, sq.Col)
}

func (sq Square) Offset(dr, dc int) Square {
	return Square{Row: sq.Row + dr, Col: sq.Col + dc}
}

func (sq Square) String() string {
	return fmt.Sprintf("(%d,%d)", sq.Row, sq.Col)
}

// Move represents a move in the game.
type Move struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

func (m Move) String() string {
	return m.From.String() + "->" + m.To.String()
}

// IsJump reports whether the move spans more than one cell.
func (m Move) IsJump() bool {
	return abs(m.From.Row-m.To.Row)+abs(m.From.Col-m.To.Col) > 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
