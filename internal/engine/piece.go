package engine

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

// PieceType tags one of the seven tetromino shapes.
type PieceType uint8

const (
	PieceI PieceType = iota
	PieceL
	PieceJ
	PieceO
	PieceT
	PieceZ
	PieceS

	pieceTypeCount
)

// PieceTypes lists every shape in table order.
var PieceTypes = [pieceTypeCount]PieceType{PieceI, PieceL, PieceJ, PieceO, PieceT, PieceZ, PieceS}

// String returns the shape letter.
func (t PieceType) String() string {
	if t >= pieceTypeCount {
		return "?"
	}
	return "ILJOTZS"[t : t+1]
}

// SpawnAnchor is where every piece's anchor cell appears: top-center,
// a few rows below the top of the playfield.
var SpawnAnchor = core.Coord{X: 4, Y: 26}

// shapeOffsets holds the four cell offsets of each shape relative to the
// anchor. Entry 0 is always the anchor itself.
var shapeOffsets = [pieceTypeCount][4]core.Coord{
	PieceI: {{X: 0, Y: 0}, {X: -1, Y: 0}, {X: -2, Y: 0}, {X: 1, Y: 0}},
	PieceL: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: -1, Y: 0}, {X: -1, Y: -1}},
	PieceJ: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: -1, Y: 0}, {X: 1, Y: -1}},
	PieceO: {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
	PieceT: {{X: 0, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: 0}, {X: 1, Y: 0}},
	PieceZ: {{X: 0, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 1}, {X: 1, Y: 0}},
	PieceS: {{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: -1, Y: 0}},
}

// Piece is a tetromino on the playfield.
// Cells[0] is the anchor: rotation pivots around it and it never moves
// under rotation. All four cells move together under translation.
type Piece struct {
	Type  PieceType
	Cells [4]core.Coord
}

// Spawn creates a piece of the given type at the spawn anchor.
// Panics on an unknown type.
func Spawn(t PieceType) Piece {
	if t >= pieceTypeCount {
		panic(fmt.Sprintf("engine: unknown piece type %d", t))
	}
	p := Piece{Type: t}
	for i, off := range shapeOffsets[t] {
		p.Cells[i] = SpawnAnchor.Add(off.X, off.Y)
	}
	return p
}

// Anchor returns the pivot cell.
func (p Piece) Anchor() core.Coord {
	return p.Cells[0]
}

// Rotate turns the piece 90 degrees about its anchor in place:
// x' = xc + yc - y, y' = yc - xc + x.
func (p *Piece) Rotate() {
	xc, yc := p.Cells[0].X, p.Cells[0].Y
	for i := 1; i < len(p.Cells); i++ {
		x, y := p.Cells[i].X, p.Cells[i].Y
		p.Cells[i] = core.Coord{X: xc + yc - y, Y: yc - xc + x}
	}
}

// Rotated returns a rotated copy, leaving p untouched.
func (p Piece) Rotated() Piece {
	p.Rotate()
	return p
}

// Translate moves all four cells by (dx, dy) in place.
func (p *Piece) Translate(dx, dy int) {
	for i := range p.Cells {
		p.Cells[i] = p.Cells[i].Add(dx, dy)
	}
}

// Translated returns a translated copy.
func (p Piece) Translated(dx, dy int) Piece {
	p.Translate(dx, dy)
	return p
}

// Shape returns the cell offsets relative to the anchor.
func (p Piece) Shape() [4]core.Coord {
	var out [4]core.Coord
	a := p.Anchor()
	for i, c := range p.Cells {
		out[i] = core.Coord{X: c.X - a.X, Y: c.Y - a.Y}
	}
	return out
}
