package battleship

import "fmt"

type CellState uint8

const (
	CellEmpty CellState = iota
	CellShip
	CellMiss
	CellHit

	// Painted over the cells of a ship once it is destroyed
	CellSunk
)

func (c CellState) String() string {
	switch c {
	case CellEmpty:
		return "Empty"
	case CellShip:
		return "Ship"
	case CellMiss:
		return "Miss"
	case CellHit:
		return "Hit"
	case CellSunk:
		return "Sunk"
	default:
		return "Unknown"
	}
}

type Dot struct {
	X int
	Y int
}

func NewDot(x, y int) Dot {
	return Dot{X: x, Y: y}
}

func (d Dot) String() string {
	return fmt.Sprintf("(%d, %d)", d.X, d.Y)
}

// Offsets of the 8 Chebyshev neighbours plus the dot itself.
var contourOffsets = [...]Dot{
	{1, 1}, {1, 0}, {0, 1},
	{0, 0}, {0, -1}, {-1, 0},
	{1, -1}, {-1, 1}, {-1, -1},
}

// Grid is indexed as grid[x][y].
type Grid [][]CellState

// Creates a new default grid
// All positions are CellEmpty
func NewGrid(gridSize int) Grid {
	grid := make(Grid, gridSize)

	for i := 0; i < gridSize; i++ {
		grid[i] = make([]CellState, gridSize)
	}
	return grid
}

func (g Grid) at(d Dot) CellState {
	return g[d.X][d.Y]
}

func (g Grid) set(d Dot, state CellState) {
	g[d.X][d.Y] = state
}
