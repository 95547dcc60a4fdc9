package gamey

import (
	"errors"
	"fmt"
)

var ErrInvalidSize = errors.New("board size must be at least 1")

// PlayerID identifies one of the two players. 0 moves first.
type PlayerID uint8

const (
	Player0 PlayerID = 0
	Player1 PlayerID = 1
)

func (p PlayerID) Other() PlayerID {
	return 1 - p
}

// Cell is either empty or owned by a player.
type Cell uint8

const Empty Cell = 0

func Owned(p PlayerID) Cell {
	return Cell(p) + 1
}

func (c Cell) IsEmpty() bool {
	return c == Empty
}

// Owner returns the owning player, ok is false for an empty cell.
func (c Cell) Owner() (PlayerID, bool) {
	if c == Empty {
		return 0, false
	}
	return PlayerID(c - 1), true
}

// Coordinates are barycentric: X+Y+Z == size-1 for every cell of the board.
type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

func NewCoordinates(x, y, z int) Coordinates {
	return Coordinates{X: x, Y: y, Z: z}
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Side is one edge of the triangle, identified by the component that is zero on it.
type Side int

const (
	SideX Side = iota
	SideY
	SideZ
)

// Sides reports which edges the cell touches. Corners touch two.
func (c Coordinates) Sides() []Side {
	sides := make([]Side, 0, 2)
	if c.X == 0 {
		sides = append(sides, SideX)
	}
	if c.Y == 0 {
		sides = append(sides, SideY)
	}
	if c.Z == 0 {
		sides = append(sides, SideZ)
	}
	return sides
}

// six neighbour offsets: +1 on one component, -1 on another
var directions = [6]Coordinates{
	{1, -1, 0}, {1, 0, -1},
	{-1, 1, 0}, {0, 1, -1},
	{-1, 0, 1}, {0, -1, 1},
}

// Board stores cells row-major. Row r (0 = apex) holds r+1 cells and a cell at
// row r, column c has coordinates x = size-1-r, y = c, z = r-c.
type Board struct {
	size  int
	cells []Cell
}

func NewBoard(size int) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	return &Board{
		size:  size,
		cells: make([]Cell, CellCount(size)),
	}, nil
}

// CellCount is the number of cells on a board of the given side length.
func CellCount(size int) int {
	return size * (size + 1) / 2
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) Len() int {
	return len(b.cells)
}

// Contains bounds every component before summing so huge values cannot wrap around.
func (b *Board) Contains(c Coordinates) bool {
	n := b.size - 1
	if c.X < 0 || c.Y < 0 || c.Z < 0 || c.X > n || c.Y > n || c.Z > n {
		return false
	}
	return c.X+c.Y+c.Z == n
}

// Index maps valid coordinates to their row-major position.
func (b *Board) Index(c Coordinates) int {
	row := b.size - 1 - c.X
	return row*(row+1)/2 + c.Y
}

func (b *Board) rowCol(row, col int) Coordinates {
	return Coordinates{X: b.size - 1 - row, Y: col, Z: row - col}
}

// CoordsAt is the inverse of Index.
func (b *Board) CoordsAt(index int) Coordinates {
	row := 0
	for (row+1)*(row+2)/2 <= index {
		row++
	}
	return b.rowCol(row, index-row*(row+1)/2)
}

func (b *Board) Get(c Coordinates) Cell {
	return b.cells[b.Index(c)]
}

func (b *Board) Set(c Coordinates, cell Cell) {
	b.cells[b.Index(c)] = cell
}

// AllCoords lists every cell in row-major order, the same order YEN layouts use.
func (b *Board) AllCoords() []Coordinates {
	coords := make([]Coordinates, 0, len(b.cells))
	for row := 0; row < b.size; row++ {
		for col := 0; col <= row; col++ {
			coords = append(coords, b.rowCol(row, col))
		}
	}
	return coords
}

func (b *Board) Neighbors(c Coordinates) []Coordinates {
	neighbors := make([]Coordinates, 0, len(directions))
	for _, d := range directions {
		n := Coordinates{X: c.X + d.X, Y: c.Y + d.Y, Z: c.Z + d.Z}
		if b.Contains(n) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}
