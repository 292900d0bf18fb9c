package game

import (
	"fmt"
	"strings"
)

// Board holds the occupant of every cell. It is a plain value: copying a
// Board yields an independent board, and two boards compare equal with ==
// exactly when every cell matches.
type Board struct {
	Cells [Rows][Cols]Piece
}

// Red at the top (row 0), Black at the bottom (row 8).
const standardLayout = `
L.....T
.D...C.
R.P.W.E
.......
.......
.......
e.w.p.r
.c...d.
t.....l`

// NewStandardBoard returns the 16-piece starting position.
func NewStandardBoard() Board {
	b, err := ParseBoard(standardLayout)
	if err != nil {
		panic("standard layout is malformed: " + err.Error())
	}
	return b
}

// ParseBoard reads a layout of 9 lines of 7 characters, row 0 first.
// '.' is empty, R C D W P T L E are Red pieces and their lower case
// forms are Black pieces. Blank lines and surrounding spaces are ignored.
func ParseBoard(layout string) (Board, error) {
	var b Board
	lines := make([]string, 0, Rows)
	for _, line := range strings.Split(layout, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) != Rows {
		return b, fmt.Errorf("layout has %d rows, want %d", len(lines), Rows)
	}
	for r, line := range lines {
		if len(line) != Cols {
			return b, fmt.Errorf("layout row %d has %d columns, want %d", r, len(line), Cols)
		}
		for c := 0; c < Cols; c++ {
			ch := line[c]
			if ch == '.' {
				continue
			}
			p, ok := pieceFromLetter(ch)
			if !ok {
				return b, fmt.Errorf("unknown piece letter %q at (%d,%d)", ch, r, c)
			}
			b.Cells[r][c] = p
		}
	}
	return b, nil
}

// MustParseBoard is ParseBoard for layouts known to be valid.
func MustParseBoard(layout string) Board {
	b, err := ParseBoard(layout)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(Rows * (Cols + 1))
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			sb.WriteByte(b.Cells[r][c].Letter())
		}
		if r < Rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// At returns the occupant of sq; off-board squares read as empty.
func (b *Board) At(sq Square) Piece {
	if !sq.OnBoard() {
		return Piece{}
	}
	return b.Cells[sq.Row][sq.Col]
}

func (b *Board) Set(sq Square, p Piece) {
	b.Cells[sq.Row][sq.Col] = p
}

// Apply moves the occupant of m.From onto m.To, replacing whatever stood
// there, and returns a function that restores both cells. Apply performs no
// legality checks; it panics if either square is off the board or m.From is
// empty.
func (b *Board) Apply(m Move) (undo func()) {
	if !m.From.OnBoard() || !m.To.OnBoard() {
		panic(fmt.Sprintf("move %v leaves the board", m))
	}
	mover := b.Cells[m.From.Row][m.From.Col]
	if mover.IsEmpty() {
		panic(fmt.Sprintf("move %v starts from an empty square", m))
	}
	displaced := b.Cells[m.To.Row][m.To.Col]

	b.Cells[m.To.Row][m.To.Col] = mover
	b.Cells[m.From.Row][m.From.Col] = Piece{}

	return func() {
		b.Cells[m.From.Row][m.From.Col] = mover
		b.Cells[m.To.Row][m.To.Col] = displaced
	}
}

// HasPieces reports whether side has at least one piece left.
func (b *Board) HasPieces(side Side) bool {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if p := b.Cells[r][c]; !p.IsEmpty() && p.Side == side {
				return true
			}
		}
	}
	return false
}

// Material sums the ranks of side's pieces.
func (b *Board) Material(side Side) int {
	total := 0
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if p := b.Cells[r][c]; !p.IsEmpty() && p.Side == side {
				total += p.Kind.Rank()
			}
		}
	}
	return total
}

// DenTaken reports whether a piece of side's opponent stands in side's den.
func (b *Board) DenTaken(side Side) bool {
	p := b.At(Den(side))
	return !p.IsEmpty() && p.Side == side.Opponent()
}
