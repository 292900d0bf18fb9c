package game

const (
	Rows = 9
	Cols = 7
)

// WinScore is the sentinel score of a decided position. It exceeds any
// material balance (at most 1+2+...+8 = 36 per side).
const WinScore = 10000

type StateHash uint64

// Evaluate scores a board from the perspective side's point of view: positive
// is good for perspective, negative is good for its opponent.
type Evaluate func(b *Board, perspective Side) int
