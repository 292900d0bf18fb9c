package game

import "fmt"

type Side int8

const (
	NoSide Side = iota
	Red         // home row 0, moves first
	Black       // home row 8
)

func (s Side) Opponent() Side {
	switch s {
	case Red:
		return Black
	case Black:
		return Red
	default:
		return NoSide
	}
}

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Black:
		return "black"
	default:
		return "none"
	}
}

// ParseSide accepts "red" or "black".
func ParseSide(s string) (Side, error) {
	switch s {
	case "red":
		return Red, nil
	case "black":
		return Black, nil
	default:
		return NoSide, fmt.Errorf("unknown side %q", s)
	}
}

type Kind int8

const (
	None Kind = iota
	Rat
	Cat
	Dog
	Wolf
	Leopard
	Tiger
	Lion
	Elephant
)

// Rank of a kind; the enumeration order is the rank order.
func (k Kind) Rank() int {
	return int(k)
}

// CanJump reports whether the kind may leap across the water lanes.
func (k Kind) CanJump() bool {
	return k == Lion || k == Tiger
}

var kindLetters = [...]byte{
	None:     '.',
	Rat:      'R',
	Cat:      'C',
	Dog:      'D',
	Wolf:     'W',
	Leopard:  'P',
	Tiger:    'T',
	Lion:     'L',
	Elephant: 'E',
}

var kindNames = [...]string{
	None:     "none",
	Rat:      "rat",
	Cat:      "cat",
	Dog:      "dog",
	Wolf:     "wolf",
	Leopard:  "leopard",
	Tiger:    "tiger",
	Lion:     "lion",
	Elephant: "elephant",
}

func (k Kind) String() string {
	if k < None || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", k)
	}
	return kindNames[k]
}

// Piece is a board occupant. The zero value is an empty cell.
type Piece struct {
	Kind Kind
	Side Side
}

func (p Piece) IsEmpty() bool {
	return p.Kind == None
}

// Letter returns the layout character: upper case for Red, lower case for Black.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	c := kindLetters[p.Kind]
	if p.Side == Black {
		c += 'a' - 'A'
	}
	return c
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	return p.Side.String() + " " + p.Kind.String()
}

func pieceFromLetter(c byte) (Piece, bool) {
	side := Red
	if c >= 'a' && c <= 'z' {
		side = Black
		c -= 'a' - 'A'
	}
	for k := Rat; k <= Elephant; k++ {
		if kindLetters[k] == c {
			return Piece{Kind: k, Side: side}, true
		}
	}
	return Piece{}, false
}
