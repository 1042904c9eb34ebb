package core

import (
	"strings"
)

// Text area geometry of the dot-matrix display.
const (
	TextLines = 4
	TextWidth = 16
)

// Renderer is the drawing capability the engine renders through.
// The engine issues draw calls for one frame and then commits it; it never
// touches pixels or transport.
type Renderer interface {
	// DrawSquare lights the playfield cell (x, y).
	DrawSquare(x, y int)
	// DrawText writes s on text line `line`.
	DrawText(line int, s string)
	// CommitFrame publishes the frame drawn since the previous commit.
	CommitFrame()
}

// Matrix is a double-buffered monochrome frame buffer.
// Draw calls go to the back buffer; CommitFrame swaps it to the front and
// clears the back, so readers always see a complete frame.
type Matrix struct {
	area   Rect
	back   []bool
	front  []bool
	text   [TextLines]string
	shown  [TextLines]string
	frames uint64
}

// NewMatrix creates a frame buffer covering the given cell area.
func NewMatrix(area Rect) *Matrix {
	return &Matrix{
		area:  area,
		back:  make([]bool, area.W*area.H),
		front: make([]bool, area.W*area.H),
	}
}

// Area returns the cell region covered by the buffer.
func (m *Matrix) Area() Rect {
	return m.area
}

// index maps a cell to its buffer slot.
// Returns -1 for cells outside the area.
func (m *Matrix) index(x, y int) int {
	if !m.area.Contains(Coord{X: x, Y: y}) {
		return -1
	}
	return (y-m.area.Y)*m.area.W + (x - m.area.X)
}

// DrawSquare lights a cell in the back buffer.
// Out-of-area coordinates are silently ignored.
func (m *Matrix) DrawSquare(x, y int) {
	if i := m.index(x, y); i >= 0 {
		m.back[i] = true
	}
}

// DrawText writes a line of text to the back buffer, clipped to TextWidth.
// Invalid line numbers are silently ignored.
func (m *Matrix) DrawText(line int, s string) {
	if line < 0 || line >= TextLines {
		return
	}
	if r := []rune(s); len(r) > TextWidth {
		s = string(r[:TextWidth])
	}
	m.text[line] = s
}

// CommitFrame publishes the back buffer and starts a fresh one.
func (m *Matrix) CommitFrame() {
	m.front, m.back = m.back, m.front
	m.shown = m.text
	clear(m.back)
	m.text = [TextLines]string{}
	m.frames++
}

// Lit reports whether the cell is lit in the committed frame.
func (m *Matrix) Lit(x, y int) bool {
	i := m.index(x, y)
	return i >= 0 && m.front[i]
}

// Text returns a committed text line, or "" for invalid lines.
func (m *Matrix) Text(line int) string {
	if line < 0 || line >= TextLines {
		return ""
	}
	return m.shown[line]
}

// Frames returns the number of committed frames.
func (m *Matrix) Frames() uint64 {
	return m.frames
}

// String converts the committed frame to plain text: the cell area top row
// first ('#' lit, '.' dark), followed by the text lines.
func (m *Matrix) String() string {
	var sb strings.Builder
	sb.Grow((m.area.W+1)*m.area.H + TextLines*(TextWidth+1))

	for y := m.area.Top() - 1; y >= m.area.Y; y-- {
		for x := m.area.X; x < m.area.Right(); x++ {
			if m.Lit(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	for i, line := range m.shown {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line)
	}
	return sb.String()
}
