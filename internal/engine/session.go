package engine

import "github.com/vovakirdan/blockfall/internal/core"

// Scoring and pacing rules.
const (
	SoftDropPoints = 1  // points per row descended by a soft drop
	RowsPerLevel   = 10 // cleared rows needed per level
	MaxLevel       = 9
	GravityBase    = 10 // gravity fires every GravityBase-level ticks
)

// lineScores is the base award per number of rows cleared at once,
// multiplied by level+1.
var lineScores = [5]uint32{0, 40, 100, 300, 1200}

// LineScore returns the points for clearing `rows` rows at `level`.
func LineScore(rows, level int) uint32 {
	if rows <= 0 {
		return 0
	}
	if rows >= len(lineScores) {
		rows = len(lineScores) - 1
	}
	return lineScores[rows] * uint32(level+1)
}

// LevelFor returns the level reached after `rows` total cleared rows.
func LevelFor(rows uint32) int {
	return int(min(MaxLevel, rows/RowsPerLevel))
}

// StepOutcome reports what happened to the session during one step.
type StepOutcome struct {
	Locked   bool // a piece locked into the grid
	Cleared  int  // rows cleared by the lock(s)
	GameOver bool // the promoted piece could not spawn
}

// Session is one game: the grid, the active and queued pieces, and the
// score counters. Score and level only grow until the next Start.
type Session struct {
	grid         Grid
	active       Piece
	next         Piece
	score        uint32
	level        int
	rows         uint32
	rotationLock bool
	gravityTicks int
	over         bool
}

// Start resets the grid and counters and draws the first two pieces.
func (s *Session) Start(rng *RNG) {
	s.grid.Reset()
	s.score = 0
	s.level = 0
	s.rows = 0
	s.rotationLock = false
	s.gravityTicks = 0
	s.over = false
	s.active = randomPiece(rng)
	s.next = randomPiece(rng)
}

// randomPiece spawns a uniformly chosen shape.
func randomPiece(rng *RNG) Piece {
	return Spawn(PieceType(rng.Intn(uint32(pieceTypeCount))))
}

// GravityInterval returns the number of ticks between gravity steps.
func (s *Session) GravityInterval() int {
	return GravityBase - s.level
}

// Step runs one simulation tick: at most one button action, then gravity
// when the interval has elapsed. A finished session ignores further steps.
func (s *Session) Step(b core.Button, rng *RNG) StepOutcome {
	var out StepOutcome
	if s.over {
		out.GameOver = true
		return out
	}

	if b != core.ButtonRotate {
		s.rotationLock = false
	}

	switch b {
	case core.ButtonDrop:
		if CanDescend(s.active, &s.grid) {
			s.active.Translate(0, -1)
			s.score += SoftDropPoints
		} else {
			s.settle(rng, &out)
		}
	case core.ButtonLeft:
		if CanMove(s.active, DirLeft, &s.grid) {
			s.active.Translate(-1, 0)
		}
	case core.ButtonRight:
		if CanMove(s.active, DirRight, &s.grid) {
			s.active.Translate(1, 0)
		}
	case core.ButtonRotate:
		if !s.rotationLock && CanRotate(s.active, &s.grid) {
			s.active.Rotate()
		}
		s.rotationLock = true
	}

	if s.over {
		return out
	}

	s.gravityTicks++
	if s.gravityTicks >= s.GravityInterval() {
		s.gravityTicks = 0
		if CanDescend(s.active, &s.grid) {
			s.active.Translate(0, -1)
		} else {
			s.settle(rng, &out)
		}
	}
	return out
}

// settle locks the active piece, clears rows, scores them, then promotes
// the queued piece. The game ends when the promoted piece overlaps the stack.
func (s *Session) settle(rng *RNG, out *StepOutcome) {
	s.grid.Lock(s.active)
	out.Locked = true

	cleared := s.grid.ClearFullRows()
	if cleared > 0 {
		s.score += LineScore(cleared, s.level)
		s.rows += uint32(cleared)
		s.level = LevelFor(s.rows)
		out.Cleared += cleared
	}

	s.active = s.next
	s.next = randomPiece(rng)
	if !s.grid.Fits(s.active) {
		s.over = true
		out.GameOver = true
	}
}

// Score returns the points earned this session.
func (s *Session) Score() uint32 { return s.score }

// Level returns the current level, 0..MaxLevel.
func (s *Session) Level() int { return s.level }

// Rows returns the total rows cleared this session.
func (s *Session) Rows() uint32 { return s.rows }

// Active returns the falling piece.
func (s *Session) Active() Piece { return s.active }

// Next returns the queued piece.
func (s *Session) Next() Piece { return s.next }

// Grid returns the playfield. Callers must not mutate it.
func (s *Session) Grid() *Grid { return &s.grid }

// Over reports whether the session has ended.
func (s *Session) Over() bool { return s.over }

// RotationLocked reports whether rotate must be released before it acts again.
func (s *Session) RotationLocked() bool { return s.rotationLock }
