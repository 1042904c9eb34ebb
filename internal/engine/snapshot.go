package engine

// Snapshot captures the complete engine state for determinism testing.
// It is comparable with ==.
type Snapshot struct {
	Tick           uint64
	Screen         Screen
	Cursor         MenuOption
	Score          uint32
	Level          int
	Rows           uint32
	Active         Piece
	Next           Piece
	RotationLocked bool
	Over           bool
	Grid           [Rows][Cols]bool
	HighScores     [HighScoreCapacity]uint32
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	s := &e.session
	return Snapshot{
		Tick:           e.ticks,
		Screen:         e.screen,
		Cursor:         e.cursor,
		Score:          s.score,
		Level:          s.level,
		Rows:           s.rows,
		Active:         s.active,
		Next:           s.next,
		RotationLocked: s.rotationLock,
		Over:           s.over,
		Grid:           s.grid.Interior(),
		HighScores:     e.scores.scores,
	}
}
