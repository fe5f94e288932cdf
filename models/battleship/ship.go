package battleship

type Orientation uint8

const (
	OrientationVertical Orientation = iota + 1
	OrientationHorizontal
)

// Ship placements to choose from
var Orientations = [2]Orientation{OrientationVertical, OrientationHorizontal}

func (o Orientation) String() string {
	switch o {
	case OrientationVertical:
		return "Vertical"
	case OrientationHorizontal:
		return "Horizontal"
	default:
		return "Unknown"
	}
}

// Ship is three connected positions. Vertical ships have the
// front above the middle, horizontal ones have it before.
type Ship struct {
	orientation Orientation
	front       *Position
	middle      *Position
	rear        *Position
	sunk        bool
}

// NewShip picks an orientation, then a middle cell from the
// restricted domain, and derives front and rear from it.
func NewShip(g *Grid) *Ship {
	sh := &Ship{orientation: Orientations[g.rng.IntN(len(Orientations))]}

	col := g.RandomMiddleColumn(sh.orientation)
	row := g.RandomMiddleRow(sh.orientation)
	sh.middle = newPositionAt(Coordinates{col: col, row: row}, ShipPartMiddle)

	var front, rear Coordinates
	if sh.orientation == OrientationVertical {
		front, _ = sh.middle.Above()
		rear, _ = sh.middle.Below()
	} else {
		front, _ = sh.middle.Before()
		rear, _ = sh.middle.After()
	}
	sh.front = newPositionAt(front, ShipPartFront)
	sh.rear = newPositionAt(rear, ShipPartRear)

	return sh
}

func (sh *Ship) Orientation() Orientation {
	return sh.orientation
}

func (sh *Ship) IsVertical() bool {
	return sh.orientation == OrientationVertical
}

func (sh *Ship) IsHorizontal() bool {
	return sh.orientation == OrientationHorizontal
}

func (sh *Ship) Front() *Position {
	return sh.front
}

func (sh *Ship) Middle() *Position {
	return sh.middle
}

func (sh *Ship) Rear() *Position {
	return sh.rear
}

// Positions returns front, middle and rear in that order.
func (sh *Ship) Positions() [3]*Position {
	return [3]*Position{sh.front, sh.middle, sh.rear}
}

func (sh *Ship) IsSunk() bool {
	return sh.sunk
}

// Sink marks the ship sunk once every part has been hit.
// It never clears the flag.
func (sh *Ship) Sink() bool {
	if sh.front.IsHit() && sh.middle.IsHit() && sh.rear.IsHit() {
		sh.sunk = true
	}
	return sh.sunk
}
