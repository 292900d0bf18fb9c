package game

type Terrain int8

const (
	OutOfBounds Terrain = iota - 1
	Ground
	Water
	RedTrap
	BlackTrap
	RedDen
	BlackDen
)

func (t Terrain) String() string {
	switch t {
	case Ground:
		return "ground"
	case Water:
		return "water"
	case RedTrap:
		return "red trap"
	case BlackTrap:
		return "black trap"
	case RedDen:
		return "red den"
	case BlackDen:
		return "black den"
	default:
		return "out of bounds"
	}
}

// DenOwner returns the side whose den t is, or NoSide.
func (t Terrain) DenOwner() Side {
	switch t {
	case RedDen:
		return Red
	case BlackDen:
		return Black
	default:
		return NoSide
	}
}

// TrapOwner returns the side whose den the trap guards, or NoSide.
func (t Terrain) TrapOwner() Side {
	switch t {
	case RedTrap:
		return Red
	case BlackTrap:
		return Black
	default:
		return NoSide
	}
}

// The terrain is static for the lifetime of the process; nothing writes to
// terrainMap after package initialisation.
var terrainMap = createTerrainMap()

var waterCols = [...]int{1, 2, 4, 5}

const (
	firstWaterRow = 3
	lastWaterRow  = 5
)

func createTerrainMap() [Rows][Cols]Terrain {
	var m [Rows][Cols]Terrain // Ground is the zero value

	for r := firstWaterRow; r <= lastWaterRow; r++ {
		for _, c := range waterCols {
			m[r][c] = Water
		}
	}

	m[0][2] = RedTrap
	m[0][4] = RedTrap
	m[1][3] = RedTrap
	m[8][2] = BlackTrap
	m[8][4] = BlackTrap
	m[7][3] = BlackTrap

	m[0][3] = RedDen
	m[8][3] = BlackDen
	return m
}

// TerrainAt looks up the static terrain of a cell. Off-board coordinates
// yield OutOfBounds.
func TerrainAt(row, col int) Terrain {
	if !OnBoard(row, col) {
		return OutOfBounds
	}
	return terrainMap[row][col]
}

func OnBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// Den returns the den square of a side.
func Den(s Side) Square {
	if s == Black {
		return Square{Row: 8, Col: 3}
	}
	return Square{Row: 0, Col: 3}
}
