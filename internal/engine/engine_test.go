package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
)

// press steps through the buttons, releasing between each.
func press(e *Engine, buttons ...core.Button) StepResult {
	var res StepResult
	for _, b := range buttons {
		res = e.Step(b)
		if e.Screen() != ScreenGame {
			e.Step(core.ButtonNone)
		}
	}
	return res
}

func TestEngineStartsOnMainMenu(t *testing.T) {
	e := New(0)

	assert.Equal(t, ScreenMainMenu, e.Screen())
	assert.Equal(t, MenuPlay, e.Cursor())
	assert.Equal(t, 0, e.HighScores().Len())
}

func TestScreenString(t *testing.T) {
	assert.Equal(t, "MainMenu", ScreenMainMenu.String())
	assert.Equal(t, "Game", ScreenGame.String())
	assert.Equal(t, "HighScores", ScreenHighScores.String())
	assert.Equal(t, "Unknown", Screen(7).String())
}

func TestMenuCursor(t *testing.T) {
	e := New(0)

	press(e, core.ButtonSelectDown)
	assert.Equal(t, MenuHighScores, e.Cursor())
	press(e, core.ButtonSelectDown)
	assert.Equal(t, MenuHighScores, e.Cursor())
	press(e, core.ButtonSelectUp)
	assert.Equal(t, MenuPlay, e.Cursor())

	// Left does nothing on the menu
	press(e, core.ButtonLeft)
	assert.Equal(t, ScreenMainMenu, e.Screen())
	assert.Equal(t, MenuPlay, e.Cursor())
}

func TestMenuConfirmPlayStartsGame(t *testing.T) {
	e := New(0)

	res := e.Step(core.ButtonConfirm)
	assert.Equal(t, ScreenGame, res.Screen)
	assert.Equal(t, ScreenGame, e.Screen())
	assert.Equal(t, SpawnAnchor, e.Session().Active().Anchor())
	assert.False(t, e.Session().Over())
}

func TestHighScoresScreenRoundTrip(t *testing.T) {
	e := New(0)

	press(e, core.ButtonSelectDown, core.ButtonConfirm)
	require.Equal(t, ScreenHighScores, e.Screen())

	press(e, core.ButtonDrop)
	assert.Equal(t, ScreenMainMenu, e.Screen())
}

func TestMenuActsOnPressEdges(t *testing.T) {
	e := New(0)
	press(e, core.ButtonSelectDown)

	// Holding confirm enters the high-score screen once and stays there.
	for i := 0; i < 5; i++ {
		e.Step(core.ButtonConfirm)
	}
	assert.Equal(t, ScreenHighScores, e.Screen())

	e.Step(core.ButtonNone)
	e.Step(core.ButtonConfirm)
	assert.Equal(t, ScreenMainMenu, e.Screen())
}

func TestTickCounterAdvancesEveryStep(t *testing.T) {
	e := New(100)
	for i := 0; i < 7; i++ {
		e.Step(core.ButtonNone)
	}
	assert.Equal(t, uint64(107), e.Ticks())
}

func TestStartGameSeedsFromTicks(t *testing.T) {
	a, b := New(55), New(55)
	a.StartGame()
	b.StartGame()
	assert.Equal(t, a.Snapshot(), b.Snapshot())
}

func TestGameOverReturnsToMenuAndRecordsScore(t *testing.T) {
	e := New(0)
	e.StartGame()

	s := e.Session()
	s.grid.set(SpawnAnchor.X, SpawnAnchor.Y, true)
	s.active = Spawn(PieceO).Translated(-4, -26)
	s.score = 500
	s.rows = 3

	res := e.Step(core.ButtonDrop)
	require.NotNil(t, res.Over)
	assert.Equal(t, ScreenMainMenu, res.Screen)
	assert.Equal(t, ScreenMainMenu, e.Screen())
	assert.Equal(t, uint32(500), res.Over.Score)
	assert.Equal(t, uint32(3), res.Over.Rows)
	assert.Equal(t, 0, res.Over.Rank)
	assert.True(t, res.Outcome.GameOver)
	assert.Equal(t, []uint32{500}, e.HighScores().Scores())
	assert.True(t, e.Snapshot().Over)
}

func TestNewGameAfterGameOver(t *testing.T) {
	e := New(0)
	e.StartGame()
	s := e.Session()
	s.grid.set(SpawnAnchor.X, SpawnAnchor.Y, true)
	s.active = Spawn(PieceO).Translated(-4, -26)
	e.Step(core.ButtonDrop)
	require.Equal(t, ScreenMainMenu, e.Screen())

	e.Step(core.ButtonNone)
	e.Step(core.ButtonConfirm)
	assert.Equal(t, ScreenGame, e.Screen())
	assert.False(t, s.Over())
	assert.Equal(t, 0, s.Grid().Filled())
	assert.Equal(t, uint32(0), s.Score())
}

func TestUnknownButtonPanics(t *testing.T) {
	e := New(0)
	assert.Panics(t, func() { e.Step(core.Button(9)) })
}

func TestDeterministicReplay(t *testing.T) {
	script := func(i int) core.Button {
		switch {
		case i == 0:
			return core.ButtonConfirm
		case i%7 == 0:
			return core.ButtonRotate
		case i%5 == 0:
			return core.ButtonLeft
		case i%3 == 0:
			return core.ButtonRight
		case i%11 == 0:
			return core.ButtonDrop
		default:
			return core.ButtonNone
		}
	}

	a, b := New(42), New(42)
	for i := 0; i < 3000; i++ {
		a.Step(script(i))
		b.Step(script(i))
		require.Equalf(t, a.Snapshot(), b.Snapshot(), "diverged at step %d", i)
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	type opening struct{ active, next PieceType }
	seen := map[opening]bool{}
	for seed := uint64(1); seed <= 20; seed++ {
		e := New(seed)
		e.StartGame()
		seen[opening{e.Session().Active().Type, e.Session().Next().Type}] = true
	}
	assert.Greater(t, len(seen), 1)
}
