package battleship

import "fmt"

const DefaultBoardSize int = 6

type ShotOutcome uint8

const (
	ShotMiss ShotOutcome = iota
	ShotHit
	ShotDestroyed
)

func (o ShotOutcome) String() string {
	switch o {
	case ShotMiss:
		return "Miss"
	case ShotHit:
		return "Hit"
	case ShotDestroyed:
		return "Destroyed"
	default:
		return "Unknown"
	}
}

type Board struct {
	size      int
	hidden    bool
	cells     Grid
	ships     []*Ship
	busy      map[Dot]struct{}
	destroyed int
}

func NewBoard(size int) *Board {
	return &Board{
		size:  size,
		cells: NewGrid(size),
		ships: make([]*Ship, 0, FleetSize),
		busy:  make(map[Dot]struct{}, size*size),
	}
}

func (b *Board) IsOutOfBounds(d Dot) bool {
	return !(0 <= d.X && d.X < b.size && 0 <= d.Y && d.Y < b.size)
}

// markContour adds the ring around every ship dot to the busy set.
// With reveal the ring is also painted as missed water, which is
// what happens once the ship is destroyed.
func (b *Board) markContour(ship *Ship, reveal bool) {
	for _, d := range ship.Dots() {
		for _, offset := range contourOffsets {
			cur := Dot{X: d.X + offset.X, Y: d.Y + offset.Y}
			if b.IsOutOfBounds(cur) || b.IsBusy(cur) {
				continue
			}

			if reveal {
				b.cells.set(cur, CellMiss)
			}
			b.busy[cur] = struct{}{}
		}
	}
}

// AddShip validates every dot of the ship before touching the board,
// so a rejected placement leaves no trace.
func (b *Board) AddShip(ship *Ship) error {
	for _, d := range ship.Dots() {
		if b.IsOutOfBounds(d) {
			return NewBoardErr(BoardErrWrongPlacement).AddDesc(fmt.Sprintf("dot %s is out of bounds", d))
		}
		if b.IsBusy(d) {
			return NewBoardErr(BoardErrWrongPlacement).AddDesc(fmt.Sprintf("dot %s is taken or touches another ship", d))
		}
	}

	for _, d := range ship.Dots() {
		b.cells.set(d, CellShip)
		b.busy[d] = struct{}{}
	}

	b.ships = append(b.ships, ship)
	b.markContour(ship, false)
	return nil
}

func (b *Board) Shoot(d Dot) (ShotOutcome, error) {
	if b.IsOutOfBounds(d) {
		return ShotMiss, NewBoardErr(BoardErrOutOfBounds).AddDesc(d.String())
	}

	if b.IsBusy(d) {
		return ShotMiss, NewBoardErr(BoardErrAlreadyTargeted).AddDesc(d.String())
	}

	b.busy[d] = struct{}{}

	ship := b.shipAt(d)
	if ship == nil {
		b.cells.set(d, CellMiss)
		return ShotMiss, nil
	}

	b.cells.set(d, CellHit)
	ship.RegisterHit()
	if !ship.IsDestroyed() {
		return ShotHit, nil
	}

	b.destroyed++
	for _, sd := range ship.Dots() {
		b.cells.set(sd, CellSunk)
	}
	b.markContour(ship, true)
	return ShotDestroyed, nil
}

// Begin clears the busy set once every ship is placed. The rings kept
// ships apart during placement only; shots must not be blocked by them.
func (b *Board) Begin() {
	b.busy = make(map[Dot]struct{}, b.size*b.size)
}

func (b *Board) shipAt(d Dot) *Ship {
	for _, ship := range b.ships {
		if ship.Contains(d) {
			return ship
		}
	}
	return nil
}

func (b *Board) IsBusy(d Dot) bool {
	_, prs := b.busy[d]
	return prs
}

func (b *Board) BusyCount() int {
	return len(b.busy)
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) Cell(d Dot) CellState {
	return b.cells.at(d)
}

// returns a copy of the ships in placement order.
func (b *Board) Ships() []*Ship {
	ships := make([]*Ship, len(b.ships))
	copy(ships, b.ships)
	return ships
}

func (b *Board) DestroyedCount() int {
	return b.destroyed
}

func (b *Board) Hidden() bool {
	return b.hidden
}

func (b *Board) SetHidden(hidden bool) {
	b.hidden = hidden
}

// HasAdjacentShips reports whether any two distinct ships overlap or
// touch, diagonals included.
func (b *Board) HasAdjacentShips() bool {
	for i, first := range b.ships {
		for _, second := range b.ships[i+1:] {
			for _, d1 := range first.Dots() {
				for _, d2 := range second.Dots() {
					if chebyshev(d1, d2) < 2 {
						return true
					}
				}
			}
		}
	}
	return false
}

func chebyshev(a, b Dot) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
