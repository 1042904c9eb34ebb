package engine

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Screen is the top-level state of the machine.
type Screen uint8

const (
	ScreenMainMenu Screen = iota
	ScreenGame
	ScreenHighScores
)

// String returns a human-readable name for the screen.
func (s Screen) String() string {
	switch s {
	case ScreenMainMenu:
		return "MainMenu"
	case ScreenGame:
		return "Game"
	case ScreenHighScores:
		return "HighScores"
	default:
		return "Unknown"
	}
}

// MenuOption is an entry of the main menu.
type MenuOption uint8

const (
	MenuPlay MenuOption = iota
	MenuHighScores
)

// GameOver describes a finished session.
type GameOver struct {
	Score uint32
	Level int
	Rows  uint32
	Rank  int // position in the high-score table, -1 if it did not place
}

// StepResult is returned by Engine.Step after each tick.
type StepResult struct {
	Screen  Screen
	Outcome StepOutcome
	Over    *GameOver // set on the step that ended a game
}

// Engine is the whole simulation: screen machine, session, RNG and the
// high-score table. The caller owns it and drives it one tick at a time.
type Engine struct {
	screen  Screen
	cursor  MenuOption
	prev    core.Button
	ticks   uint64
	rng     RNG
	session Session
	scores  HighScores
}

// New creates an engine on the main menu. ticks is the initial value of the
// ever-incrementing tick counter that seeds each game.
func New(ticks uint64) *Engine {
	return &Engine{ticks: ticks}
}

// Step advances the machine by one tick with the sampled button code.
// Menu and high-score screens act on press edges only, so a held button
// does not fall through several screens. Panics on an unknown code.
func (e *Engine) Step(b core.Button) StepResult {
	if !b.Valid() {
		panic(fmt.Sprintf("engine: unknown button code %d", b))
	}
	e.ticks++
	pressed := b != core.ButtonNone && b != e.prev
	e.prev = b

	var res StepResult
	switch e.screen {
	case ScreenMainMenu:
		if pressed {
			e.menuInput(b)
		}
	case ScreenHighScores:
		if pressed {
			e.screen = ScreenMainMenu
		}
	case ScreenGame:
		res.Outcome = e.session.Step(b, &e.rng)
		if res.Outcome.GameOver {
			res.Over = e.finish()
		}
	}
	res.Screen = e.screen
	return res
}

// menuInput moves the cursor or confirms the selected entry.
func (e *Engine) menuInput(b core.Button) {
	switch b {
	case core.ButtonSelectUp:
		e.cursor = MenuPlay
	case core.ButtonSelectDown:
		e.cursor = MenuHighScores
	case core.ButtonConfirm:
		if e.cursor == MenuPlay {
			e.StartGame()
		} else {
			e.screen = ScreenHighScores
		}
	}
}

// StartGame seeds the generator from the tick counter, resets the session
// and switches to the game screen.
func (e *Engine) StartGame() {
	e.rng.Seed(e.ticks)
	e.session.Start(&e.rng)
	e.screen = ScreenGame
}

// finish records the final score and returns to the main menu.
func (e *Engine) finish() *GameOver {
	over := &GameOver{
		Score: e.session.Score(),
		Level: e.session.Level(),
		Rows:  e.session.Rows(),
	}
	over.Rank = e.scores.Insert(over.Score)
	e.screen = ScreenMainMenu
	return over
}

// Screen returns the current screen.
func (e *Engine) Screen() Screen { return e.screen }

// Cursor returns the selected main menu entry.
func (e *Engine) Cursor() MenuOption { return e.cursor }

// Ticks returns the tick counter.
func (e *Engine) Ticks() uint64 { return e.ticks }

// Session returns the current (or last) game session.
func (e *Engine) Session() *Session { return &e.session }

// HighScores returns the high-score table.
func (e *Engine) HighScores() *HighScores { return &e.scores }
