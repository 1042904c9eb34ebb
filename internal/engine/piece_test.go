package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
)

func TestSpawnAnchorFirst(t *testing.T) {
	for _, pt := range PieceTypes {
		t.Run(pt.String(), func(t *testing.T) {
			p := Spawn(pt)
			assert.Equal(t, pt, p.Type)
			assert.Equal(t, SpawnAnchor, p.Anchor())
			assert.Equal(t, shapeOffsets[pt], p.Shape())
		})
	}
}

func TestSpawnCellsDistinctAndInside(t *testing.T) {
	for _, pt := range PieceTypes {
		p := Spawn(pt)
		seen := map[core.Coord]bool{}
		for _, c := range p.Cells {
			assert.Falsef(t, seen[c], "%v has duplicate cell %v", pt, c)
			seen[c] = true
			assert.Truef(t, c.X >= 0 && c.X < Cols && c.Y >= 0 && c.Y < Rows,
				"%v spawns outside the playfield at %v", pt, c)
		}
	}
}

func TestSpawnUnknownTypePanics(t *testing.T) {
	assert.Panics(t, func() { Spawn(pieceTypeCount) })
	assert.Panics(t, func() { Spawn(PieceType(200)) })
}

func TestPieceTypeString(t *testing.T) {
	letters := ""
	for _, pt := range PieceTypes {
		letters += pt.String()
	}
	assert.Equal(t, "ILJOTZS", letters)
	assert.Equal(t, "?", pieceTypeCount.String())
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, pt := range PieceTypes {
		for _, shift := range []core.Coord{{X: 0, Y: 0}, {X: -3, Y: -20}, {X: 2, Y: -7}} {
			p := Spawn(pt).Translated(shift.X, shift.Y)
			q := p
			for i := 0; i < 4; i++ {
				q.Rotate()
			}
			assert.Equalf(t, p, q, "%v shifted by %v", pt, shift)
		}
	}
}

func TestRotateKeepsAnchor(t *testing.T) {
	for _, pt := range PieceTypes {
		p := Spawn(pt)
		a := p.Anchor()
		p.Rotate()
		assert.Equal(t, a, p.Anchor())
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	// I lies horizontally; one rotation stands it up through the anchor.
	p := Spawn(PieceI)
	p.Rotate()

	want := [4]core.Coord{{X: 0, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: -2}, {X: 0, Y: 1}}
	assert.Equal(t, want, p.Shape())
}

func TestRotatedDoesNotMutate(t *testing.T) {
	p := Spawn(PieceT)
	orig := p
	r := p.Rotated()

	assert.Equal(t, orig, p)
	assert.NotEqual(t, p, r)
}

func TestTranslateCommutesWithRotate(t *testing.T) {
	vectors := []core.Coord{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: -1}, {X: -2, Y: -9}, {X: 3, Y: -15}}
	for _, pt := range PieceTypes {
		for _, v := range vectors {
			a := Spawn(pt)
			a.Translate(v.X, v.Y)
			a.Rotate()

			b := Spawn(pt)
			b.Rotate()
			b.Translate(v.X, v.Y)

			require.Equalf(t, b, a, "%v by %v", pt, v)
			assert.Equal(t, b.Shape(), a.Shape())
		}
	}
}

func TestTranslateMovesAllCells(t *testing.T) {
	p := Spawn(PieceS)
	q := p.Translated(-1, -3)
	for i := range p.Cells {
		assert.Equal(t, p.Cells[i].Add(-1, -3), q.Cells[i])
	}
}
