package engine

// Direction is a lateral move.
type Direction int

const (
	DirLeft  Direction = -1
	DirRight Direction = 1
)

// CanDescend reports whether every cell one row below the piece is free.
// A false result means the piece is resting; the caller locks it.
func CanDescend(p Piece, g *Grid) bool {
	for _, c := range p.Cells {
		if g.Occupied(c.X, c.Y-1) {
			return false
		}
	}
	return true
}

// CanMove reports whether the piece can shift one column in dir.
func CanMove(p Piece, dir Direction, g *Grid) bool {
	dx := int(dir)
	for _, c := range p.Cells {
		if g.Occupied(c.X+dx, c.Y) {
			return false
		}
	}
	return true
}

// CanRotate reports whether the rotated piece stays within columns
// [0, Cols) and at or above row 0, and overlaps nothing.
// There is no upper bound check; pieces only ever move downward from the
// spawn rows, so rotated cells stay below the top of the grid.
func CanRotate(p Piece, g *Grid) bool {
	r := p.Rotated()
	for _, c := range r.Cells {
		if c.X < 0 || c.X >= Cols || c.Y < 0 {
			return false
		}
	}
	return g.Fits(r)
}
