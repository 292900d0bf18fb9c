package game

const (
	verticalJump   = 4 // rows crossed by a jump along a water column, landing included
	horizontalJump = 3 // columns crossed by a jump along a water row, landing included
)

// IsLegal reports whether m is a legal move on b for the piece standing on
// m.From. The checks short-circuit in order: bounds, source occupancy,
// friendly fire, move shape, own den, water, capture.
func (b *Board) IsLegal(m Move) bool {
	if !m.To.OnBoard() || !m.From.OnBoard() {
		return false
	}

	mover := b.At(m.From)
	if mover.IsEmpty() {
		return false
	}

	target := b.At(m.To)
	if !target.IsEmpty() && target.Side == mover.Side {
		return false
	}

	if !b.isStep(m) && !b.isJump(mover, m) {
		return false
	}

	dest := m.To.Terrain()
	if dest.DenOwner() == mover.Side {
		return false
	}
	// Jumps never land in water either: only a Rat may stand there.
	if dest == Water && mover.Kind != Rat {
		return false
	}

	if !target.IsEmpty() && !CanCapture(mover, target, m.From, m.To) {
		return false
	}
	return true
}

func (b *Board) isStep(m Move) bool {
	dr := abs(m.To.Row - m.From.Row)
	dc := abs(m.To.Col - m.From.Col)
	return dr+dc == 1
}

// isJump checks a Lion or Tiger leap across a water lane: every cell strictly
// between the endpoints must be water and unoccupied.
func (b *Board) isJump(mover Piece, m Move) bool {
	if !mover.Kind.CanJump() {
		return false
	}

	dr := m.To.Row - m.From.Row
	dc := m.To.Col - m.From.Col

	switch {
	case dc == 0 && abs(dr) == verticalJump:
		if !isWaterCol(m.From.Col) {
			return false
		}
	case dr == 0 && abs(dc) == horizontalJump:
		if m.From.Row < firstWaterRow || m.From.Row > lastWaterRow {
			return false
		}
	default:
		return false
	}

	stepR, stepC := sign(dr), sign(dc)
	for sq := m.From.Offset(stepR, stepC); sq != m.To; sq = sq.Offset(stepR, stepC) {
		if sq.Terrain() != Water || !b.At(sq).IsEmpty() {
			return false
		}
	}
	return true
}

func isWaterCol(col int) bool {
	for _, c := range waterCols {
		if c == col {
			return true
		}
	}
	return false
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
