package game

type offset struct{ dr, dc int }

// Probe order is part of the move ordering contract: up, down, left, right.
var stepOffsets = [...]offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

var jumpOffsets = [...]offset{
	{verticalJump, 0}, {-verticalJump, 0},
	{0, horizontalJump}, {0, -horizontalJump},
}

// LegalMoves enumerates every legal move of side. Moves are ordered by the
// mover's square in row-major order; for each mover the four steps (up, down,
// left, right) come before the four jumps (+4 rows, -4 rows, +3 cols,
// -3 cols).
func (b *Board) LegalMoves(side Side) []Move {
	moves := make([]Move, 0, 32)
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			p := b.Cells[r][c]
			if p.IsEmpty() || p.Side != side {
				continue
			}
			moves = b.appendMovesFrom(moves, Square{Row: r, Col: c}, p)
		}
	}
	return moves
}

// LegalDestinations lists the squares the piece on from may move to, in the
// same order as LegalMoves.
func (b *Board) LegalDestinations(from Square) []Square {
	p := b.At(from)
	if p.IsEmpty() {
		return nil
	}
	moves := b.appendMovesFrom(nil, from, p)
	dests := make([]Square, len(moves))
	for i, m := range moves {
		dests[i] = m.To
	}
	return dests
}

// HasLegalMove is LegalMoves(side) != empty without building the list.
func (b *Board) HasLegalMove(side Side) bool {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			p := b.Cells[r][c]
			if p.IsEmpty() || p.Side != side {
				continue
			}
			if len(b.appendMovesFrom(nil, Square{Row: r, Col: c}, p)) > 0 {
				return true
			}
		}
	}
	return false
}

func (b *Board) appendMovesFrom(moves []Move, from Square, p Piece) []Move {
	for _, o := range stepOffsets {
		m := Move{From: from, To: from.Offset(o.dr, o.dc)}
		if b.IsLegal(m) {
			moves = append(moves, m)
		}
	}
	if !p.Kind.CanJump() {
		return moves
	}
	for _, o := range jumpOffsets {
		m := Move{From: from, To: from.Offset(o.dr, o.dc)}
		if b.IsLegal(m) {
			moves = append(moves, m)
		}
	}
	return moves
}
