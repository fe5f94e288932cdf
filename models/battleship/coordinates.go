package battleship

import (
	"strconv"

	cerr "github.com/saeidalz13/battleship-autoplay/internal/error"
)

const GridSize = 8

// All columns available, in order
var Columns = [GridSize]byte{'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H'}

// All rows available
var Rows = [GridSize]int{1, 2, 3, 4, 5, 6, 7, 8}

// Columns eligible to house the middle of a horizontal ship
var MiddleColumns = [GridSize - 2]byte{'B', 'C', 'D', 'E', 'F', 'G'}

// Rows eligible to house the middle of a vertical ship
var MiddleRows = [GridSize - 2]int{2, 3, 4, 5, 6, 7}

// Coordinates are fixed once built; a placed ship part never moves.
type Coordinates struct {
	col byte
	row int
}

// NewCoordinates validates col and row against the fixed domains.
func NewCoordinates(col byte, row int) (Coordinates, error) {
	if columnIndex(col) < 0 {
		return Coordinates{}, cerr.ErrColumnNotAllowed(col)
	}
	if row < 1 || row > GridSize {
		return Coordinates{}, cerr.ErrRowNotAllowed(row)
	}
	return Coordinates{col: col, row: row}, nil
}

func (c Coordinates) Col() byte {
	return c.col
}

func (c Coordinates) Row() int {
	return c.row
}

func columnIndex(col byte) int {
	for i, c := range Columns {
		if c == col {
			return i
		}
	}
	return -1
}

func (c Coordinates) colIdx() int {
	return columnIndex(c.col)
}

// Above is on the same column, one row up.
func (c Coordinates) Above() (Coordinates, bool) {
	if c.row-1 < 1 {
		return Coordinates{}, false
	}
	return Coordinates{col: c.col, row: c.row - 1}, true
}

// Below is on the same column, one row down.
func (c Coordinates) Below() (Coordinates, bool) {
	if c.row+1 > GridSize {
		return Coordinates{}, false
	}
	return Coordinates{col: c.col, row: c.row + 1}, true
}

// Before is on the same row, previous column.
func (c Coordinates) Before() (Coordinates, bool) {
	idx := c.colIdx() - 1
	if idx < 0 {
		return Coordinates{}, false
	}
	return Coordinates{col: Columns[idx], row: c.row}, true
}

// After is on the same row, next column.
func (c Coordinates) After() (Coordinates, bool) {
	idx := c.colIdx() + 1
	if idx <= 0 || idx >= GridSize {
		return Coordinates{}, false
	}
	return Coordinates{col: Columns[idx], row: c.row}, true
}

func (c Coordinates) String() string {
	return string(c.col) + strconv.Itoa(c.row)
}
