package battleship

type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "Vertical"
	}
	return "Horizontal"
}

type Ship struct {
	bow         Dot
	length      int
	orientation Orientation
	lives       int
}

func NewShip(bow Dot, length int, orientation Orientation) *Ship {
	return &Ship{
		bow:         bow,
		length:      length,
		orientation: orientation,
		lives:       length,
	}
}

// Dots derives the cells covered by the ship starting at the bow.
// Horizontal ships advance along X, vertical ones along Y.
func (sh *Ship) Dots() []Dot {
	dots := make([]Dot, 0, sh.length)

	for i := 0; i < sh.length; i++ {
		cur := sh.bow
		if sh.orientation == Horizontal {
			cur.X += i
		} else {
			cur.Y += i
		}
		dots = append(dots, cur)
	}
	return dots
}

func (sh *Ship) Contains(d Dot) bool {
	for _, sd := range sh.Dots() {
		if sd == d {
			return true
		}
	}
	return false
}

func (sh *Ship) RegisterHit() {
	if sh.lives == 0 {
		panic("battleship: hit registered on a destroyed ship")
	}
	sh.lives--
}

func (sh *Ship) IsDestroyed() bool {
	return sh.lives == 0
}

func (sh *Ship) Bow() Dot {
	return sh.bow
}

func (sh *Ship) Length() int {
	return sh.length
}

func (sh *Ship) Orientation() Orientation {
	return sh.orientation
}

func (sh *Ship) Lives() int {
	return sh.lives
}
