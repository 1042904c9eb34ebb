package core

// TickSource reports whether a periodic tick occurred since the last query.
type TickSource interface {
	Tick() bool
}

// TickFlag is the interrupt-style tick flag: the timer side sets it, the
// loop side tests and clears it. Multiple sets between two queries collapse
// into one tick. Single-threaded use only.
type TickFlag struct {
	pending bool
}

// Set marks a tick as pending.
func (f *TickFlag) Set() {
	f.pending = true
}

// Tick reports whether a tick was pending and clears the flag.
func (f *TickFlag) Tick() bool {
	if !f.pending {
		return false
	}
	f.pending = false
	return true
}

// EveryPoll is a TickSource that ticks on every query.
// Used by headless runs where each loop iteration is one tick.
type EveryPoll struct{}

// Tick implements TickSource.
func (EveryPoll) Tick() bool {
	return true
}
