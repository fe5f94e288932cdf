package battleship

import (
	"math/rand/v2"
	"strings"

	cerr "github.com/saeidalz13/battleship-autoplay/internal/error"
)

// Grid is the 8x8 board of one player. cells is indexed
// [row-1][column index] and is fully populated on creation.
type Grid struct {
	cells [GridSize][GridSize]*Position
	ship  *Ship
	rng   *rand.Rand
}

// NewGrid creates the ship of this grid first and then fills
// every cell with an empty, non-hit position. The ship is not
// on the grid until PlaceShip is called.
func NewGrid(rng *rand.Rand) *Grid {
	g := &Grid{rng: rng}
	g.ship = NewShip(g)

	for i, row := range Rows {
		for j, col := range Columns {
			g.cells[i][j] = newPositionAt(Coordinates{col: col, row: row}, ShipPartNone)
		}
	}
	return g
}

func (g *Grid) Ship() *Ship {
	return g.ship
}

func (g *Grid) RandomColumn() byte {
	return Columns[g.rng.IntN(len(Columns))]
}

func (g *Grid) RandomRow() int {
	return Rows[g.rng.IntN(len(Rows))]
}

// RandomMiddleRow excludes rows 1 and 8 for vertical ships so that
// the middle always has a cell above and below it.
func (g *Grid) RandomMiddleRow(orientation Orientation) int {
	if orientation == OrientationVertical {
		return MiddleRows[g.rng.IntN(len(MiddleRows))]
	}
	return g.RandomRow()
}

// RandomMiddleColumn excludes columns A and H for horizontal ships.
func (g *Grid) RandomMiddleColumn(orientation Orientation) byte {
	if orientation == OrientationHorizontal {
		return MiddleColumns[g.rng.IntN(len(MiddleColumns))]
	}
	return g.RandomColumn()
}

func (g *Grid) GetCell(col byte, row int) (*Position, error) {
	colIdx := columnIndex(col)
	if colIdx < 0 || row < 1 || row > GridSize {
		return nil, cerr.ErrCoordinateOutOfGrid(col, row)
	}
	return g.cells[row-1][colIdx], nil
}

// GetRandomCell draws the column first, then the row.
func (g *Grid) GetRandomCell() *Position {
	col := g.RandomColumn()
	row := g.RandomRow()
	return g.cells[row-1][columnIndex(col)]
}

// PlaceShip replaces the default positions at the ship's coordinates
// with the ship's own front, middle and rear positions.
func (g *Grid) PlaceShip() {
	for _, p := range g.ship.Positions() {
		g.replaceCell(p)
	}
}

func (g *Grid) replaceCell(p *Position) {
	g.cells[p.row-1][p.colIdx()] = p
}

// Rows returns the cell rows, top to bottom. The array is a copy
// but the positions are the live cells of the grid; use Snapshot
// for a detached view.
func (g *Grid) Rows() [GridSize][GridSize]*Position {
	return g.cells
}

func (g *Grid) String() string {
	var sb strings.Builder
	for _, row := range g.cells {
		sb.WriteByte('\n')
		for _, p := range row {
			sb.WriteString(p.String())
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
