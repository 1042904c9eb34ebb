package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Cell glyphs; each playfield cell is two columns wide to look square.
const (
	litGlyph  = "██"
	darkGlyph = " ·"
)

type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellBlock
	cellWall
)

// cellStyles maps a cell kind to its lipgloss style.
var cellStyles = [...]lipgloss.Style{
	cellEmpty: lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
	cellBlock: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	cellWall:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Foreground(lipgloss.Color("229")).
	Padding(0, 1).
	Width(core.TextWidth + 2)

// RenderFrame converts the committed frame of m to a styled string: the
// cell area on the left, the text lines in a panel on the right.
// Lit cells outside field are drawn as walls.
// Groups adjacent cells of the same kind to minimize ANSI escape sequences.
func RenderFrame(m *core.Matrix, field core.Rect) string {
	area := m.Area()

	var sb strings.Builder
	sb.Grow(area.W*area.H*len(litGlyph) + area.H)

	for y := area.Top() - 1; y >= area.Y; y-- {
		if y < area.Top()-1 {
			sb.WriteRune('\n')
		}

		x := area.X
		for x < area.Right() {
			kind := classify(m, field, x, y)

			var run strings.Builder
			for x < area.Right() && classify(m, field, x, y) == kind {
				if kind == cellEmpty {
					run.WriteString(darkGlyph)
				} else {
					run.WriteString(litGlyph)
				}
				x++
			}
			sb.WriteString(cellStyles[kind].Render(run.String()))
		}
	}

	lines := make([]string, core.TextLines)
	for i := range lines {
		lines[i] = m.Text(i)
	}
	panel := panelStyle.Render(strings.Join(lines, "\n"))

	return lipgloss.JoinHorizontal(lipgloss.Top, sb.String(), "  ", panel)
}

func classify(m *core.Matrix, field core.Rect, x, y int) cellKind {
	switch {
	case !m.Lit(x, y):
		return cellEmpty
	case field.Contains(core.Coord{X: x, Y: y}):
		return cellBlock
	default:
		return cellWall
	}
}
