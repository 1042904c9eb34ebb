package engine

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Playfield dimensions.
const (
	Cols = 10
	Rows = 32
)

// Bordered is the addressable cell range: the playfield plus a sentinel
// column on each side and a sentinel row below. There is no top border.
var Bordered = core.NewRect(-1, -1, Cols+2, Rows+1)

// Playfield is the interior cell range pieces can occupy.
var Playfield = core.NewRect(0, 0, Cols, Rows)

// Grid is the occupancy map. Border cells are permanently occupied so that
// walls and floor need no special casing in the collision rules.
type Grid struct {
	cells [Rows + 1][Cols + 2]bool
}

// NewGrid returns a grid with its border set and an empty interior.
func NewGrid() *Grid {
	g := &Grid{}
	g.Reset()
	return g
}

// Reset reinitializes border cells to occupied and interior cells to empty.
func (g *Grid) Reset() {
	for r := range g.cells {
		for c := range g.cells[r] {
			g.cells[r][c] = r == 0 || c == 0 || c == Cols+1
		}
	}
}

// slot maps a playfield coordinate to array indexes.
// Panics for coordinates outside the bordered range: callers only query
// cells reachable from valid piece positions.
func slot(x, y int) (row, col int) {
	if !Bordered.Contains(core.Coord{X: x, Y: y}) {
		panic(fmt.Sprintf("engine: cell (%d,%d) outside the bordered playfield", x, y))
	}
	return y + 1, x + 1
}

// Occupied reports whether the cell at (x, y) is filled or a border.
func (g *Grid) Occupied(x, y int) bool {
	r, c := slot(x, y)
	return g.cells[r][c]
}

// set marks an interior cell. Panics on border cells.
func (g *Grid) set(x, y int, v bool) {
	if !Playfield.Contains(core.Coord{X: x, Y: y}) {
		panic(fmt.Sprintf("engine: cell (%d,%d) is not an interior cell", x, y))
	}
	r, c := slot(x, y)
	g.cells[r][c] = v
}

// Lock commits the piece's four cells into the occupancy map.
func (g *Grid) Lock(p Piece) {
	for _, c := range p.Cells {
		g.set(c.X, c.Y, true)
	}
}

// Fits reports whether none of the piece's cells overlap occupied cells.
func (g *Grid) Fits(p Piece) bool {
	for _, c := range p.Cells {
		if g.Occupied(c.X, c.Y) {
			return false
		}
	}
	return true
}

// rowFull reports whether every interior column of row y is occupied.
func (g *Grid) rowFull(y int) bool {
	row := &g.cells[y+1]
	for c := 1; c <= Cols; c++ {
		if !row[c] {
			return false
		}
	}
	return true
}

// collapse removes `run` rows starting at y and shifts everything above
// down by run. The rows freed at the top become empty.
func (g *Grid) collapse(y, run int) {
	for dst := y; dst < Rows; dst++ {
		src := dst + run
		for c := 1; c <= Cols; c++ {
			if src < Rows {
				g.cells[dst+1][c] = g.cells[src+1][c]
			} else {
				g.cells[dst+1][c] = false
			}
		}
	}
}

// ClearFullRows removes every full row, scanning bottom to top and
// collapsing each contiguous run of full rows at once.
// Returns the number of rows removed; 0 leaves the grid unchanged.
func (g *Grid) ClearFullRows() int {
	cleared := 0
	for y := 0; y < Rows; y++ {
		if !g.rowFull(y) {
			continue
		}
		run := 1
		for y+run < Rows && g.rowFull(y+run) {
			run++
		}
		g.collapse(y, run)
		cleared += run
		// The row now at y came from above the run and is not full.
	}
	return cleared
}

// Filled returns the number of occupied interior cells.
func (g *Grid) Filled() int {
	n := 0
	g.EachFilled(func(_, _ int) { n++ })
	return n
}

// EachFilled calls fn for every occupied interior cell, bottom row first.
func (g *Grid) EachFilled(fn func(x, y int)) {
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			if g.cells[y+1][x+1] {
				fn(x, y)
			}
		}
	}
}

// Interior returns a copy of the interior occupancy, indexed [y][x].
func (g *Grid) Interior() [Rows][Cols]bool {
	var out [Rows][Cols]bool
	g.EachFilled(func(x, y int) { out[y][x] = true })
	return out
}
