package battleship

import "fmt"

type ShipPart uint8

const (
	ShipPartNone ShipPart = iota
	ShipPartFront
	ShipPartMiddle
	ShipPartRear
)

func (sp ShipPart) String() string {
	switch sp {
	case ShipPartFront:
		return "Front"
	case ShipPartMiddle:
		return "Middle"
	case ShipPartRear:
		return "Rear"
	default:
		return ""
	}
}

// Letter is the one-letter role code used in board dumps.
func (sp ShipPart) Letter() byte {
	switch sp {
	case ShipPartFront:
		return 'f'
	case ShipPartMiddle:
		return 'm'
	case ShipPartRear:
		return 'r'
	default:
		return 'n'
	}
}

// Position is a single cell of a grid. It can be hit or not and
// may house one part of a ship.
type Position struct {
	Coordinates
	hit  bool
	part ShipPart
}

func NewPosition(col byte, row int, part ShipPart) (*Position, error) {
	coords, err := NewCoordinates(col, row)
	if err != nil {
		return nil, err
	}
	return &Position{Coordinates: coords, part: part}, nil
}

func newPositionAt(coords Coordinates, part ShipPart) *Position {
	return &Position{Coordinates: coords, part: part}
}

func (p *Position) IsHit() bool {
	return p.hit
}

// MarkHit is idempotent; hitting the same position twice keeps it hit.
func (p *Position) MarkHit() {
	p.hit = true
}

func (p *Position) Part() ShipPart {
	return p.part
}

func (p *Position) IsShipPart() bool {
	return p.part != ShipPartNone
}

// String renders e.g. "C4[mx]": coordinates, role letter, x if hit else o.
func (p *Position) String() string {
	hitLetter := 'o'
	if p.hit {
		hitLetter = 'x'
	}
	return fmt.Sprintf("%s[%c%c]", p.Coordinates, p.part.Letter(), hitLetter)
}
