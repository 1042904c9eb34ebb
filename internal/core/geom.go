// Package core provides the boundary types between the block engine and its
// host: coordinates, button codes, the tick flag and the renderer capability.
// It contains no external dependencies (especially no Bubble Tea) so the
// engine stays pure and testable.
package core

// Coord is a cell position on the playfield.
// Origin is the bottom-left playable cell; y grows upward.
type Coord struct {
	X, Y int
}

// Add returns c translated by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Rect is an axis-aligned cell region anchored at its bottom-left corner.
type Rect struct {
	X, Y int // Bottom-left corner
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the exclusive x bound.
func (r Rect) Right() int {
	return r.X + r.W
}

// Top returns the exclusive y bound.
func (r Rect) Top() int {
	return r.Y + r.H
}

// Contains returns true if the cell c is inside this rectangle.
func (r Rect) Contains(c Coord) bool {
	return c.X >= r.X && c.X < r.Right() && c.Y >= r.Y && c.Y < r.Top()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
