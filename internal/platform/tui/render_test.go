package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/blockfall/internal/core"
)

func TestRenderFrame(t *testing.T) {
	m := core.NewMatrix(core.NewRect(-1, -1, 4, 3))
	m.DrawSquare(-1, -1) // wall
	m.DrawSquare(0, 0)   // block
	m.DrawText(0, "SCORE 40")
	m.DrawText(3, "NEXT T")
	m.CommitFrame()

	out := RenderFrame(m, core.NewRect(0, 0, 2, 2))

	if !strings.Contains(out, litGlyph) {
		t.Error("lit cells should render as blocks")
	}
	if !strings.Contains(out, darkGlyph) {
		t.Error("dark cells should render as dots")
	}
	for _, want := range []string{"SCORE 40", "NEXT T"} {
		if !strings.Contains(out, want) {
			t.Errorf("frame should contain %q", want)
		}
	}
}

func TestRenderFrameShowsOnlyCommitted(t *testing.T) {
	m := core.NewMatrix(core.NewRect(0, 0, 2, 1))
	m.DrawSquare(0, 0)
	m.DrawText(0, "PENDING")

	out := RenderFrame(m, m.Area())
	if strings.Contains(out, litGlyph) || strings.Contains(out, "PENDING") {
		t.Error("uncommitted draws must not be visible")
	}
}
