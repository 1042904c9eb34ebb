package engine

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Render draws the current screen and commits the frame.
// The game screen is drawn in a fixed order: borders, locked cells, the
// active piece, then the HUD text.
func (e *Engine) Render(r core.Renderer) {
	switch e.screen {
	case ScreenGame:
		e.renderGame(r)
	case ScreenMainMenu:
		e.renderMenu(r)
	case ScreenHighScores:
		e.renderHighScores(r)
	}
	r.CommitFrame()
}

func (e *Engine) renderGame(r core.Renderer) {
	drawBorders(r)
	e.session.grid.EachFilled(r.DrawSquare)
	for _, c := range e.session.active.Cells {
		r.DrawSquare(c.X, c.Y)
	}

	r.DrawText(0, fmt.Sprintf("SCORE %d", e.session.score))
	r.DrawText(1, fmt.Sprintf("LEVEL %d", e.session.level))
	r.DrawText(2, fmt.Sprintf("ROWS %d", e.session.rows))
	r.DrawText(3, "NEXT "+e.session.next.Type.String())
}

// drawBorders lights the sentinel walls and floor.
func drawBorders(r core.Renderer) {
	for y := -1; y < Rows; y++ {
		r.DrawSquare(-1, y)
		r.DrawSquare(Cols, y)
	}
	for x := 0; x < Cols; x++ {
		r.DrawSquare(x, -1)
	}
}

var menuLabels = [...]string{
	MenuPlay:       "PLAY",
	MenuHighScores: "HISCORES",
}

func (e *Engine) renderMenu(r core.Renderer) {
	r.DrawText(0, "BLOCKFALL")
	for i, label := range menuLabels {
		marker := "  "
		if MenuOption(i) == e.cursor {
			marker = "> "
		}
		r.DrawText(1+i, marker+label)
	}
	if e.scores.Len() > 0 {
		r.DrawText(3, fmt.Sprintf("BEST %d", e.scores.Best()))
	}
}

// renderHighScores lays the table out two entries per text line.
func (e *Engine) renderHighScores(r core.Renderer) {
	scores := e.scores.Scores()
	if len(scores) == 0 {
		r.DrawText(0, "NO SCORES")
		return
	}
	for i := 0; i < len(scores); i += 2 {
		line := fmt.Sprintf("%d.%d", i+1, scores[i])
		if i+1 < len(scores) {
			line = fmt.Sprintf("%-8s%d.%d", line, i+2, scores[i+1])
		}
		r.DrawText(i/2, line)
	}
}
