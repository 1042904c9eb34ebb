package engine

// HighScoreCapacity is the number of ranked entries kept.
const HighScoreCapacity = 8

// HighScores is a fixed-capacity list of scores sorted descending.
// It lives only as long as the engine that owns it.
type HighScores struct {
	scores [HighScoreCapacity]uint32
	n      int
}

// Insert places score at its ranked position and returns the 0-based rank,
// or -1 when the table is full and score does not beat the smallest entry.
// Equal scores rank after existing ones.
func (h *HighScores) Insert(score uint32) int {
	pos := h.n
	if h.n < HighScoreCapacity {
		h.n++
	} else {
		if score <= h.scores[HighScoreCapacity-1] {
			return -1
		}
		pos = HighScoreCapacity - 1
	}

	for pos > 0 && h.scores[pos-1] < score {
		h.scores[pos] = h.scores[pos-1]
		pos--
	}
	h.scores[pos] = score
	return pos
}

// Len returns the number of recorded entries.
func (h *HighScores) Len() int {
	return h.n
}

// Scores returns the recorded entries, best first.
func (h *HighScores) Scores() []uint32 {
	out := make([]uint32, h.n)
	copy(out, h.scores[:h.n])
	return out
}

// Best returns the top score, or 0 when empty.
func (h *HighScores) Best() uint32 {
	return h.scores[0]
}
