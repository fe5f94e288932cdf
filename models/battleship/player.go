package battleship

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

// Player owns a name and one grid. lastHitPosition is the last
// position shot on the player's own grid.
type Player struct {
	uuid            string
	name            string
	grid            *Grid
	lastHitPosition *Position
}

func NewPlayer(name string, rng *rand.Rand) *Player {
	return &Player{
		uuid: uuid.NewString()[:10],
		name: name,
		grid: NewGrid(rng),
	}
}

func (p *Player) Uuid() string {
	return p.uuid
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) SetName(name string) {
	p.name = name
}

func (p *Player) Grid() *Grid {
	return p.grid
}

// LastHitPosition is nil until the player's grid has been shot at.
func (p *Player) LastHitPosition() *Position {
	return p.lastHitPosition
}

func (p *Player) IsShipSunk() bool {
	return p.grid.ship.IsSunk()
}

func (p *Player) String() string {
	return p.name
}
