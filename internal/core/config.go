package core

// RuntimeConfig contains host settings passed to an engine run.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 10)
	Seed     int64 // Initial tick counter; 0 means derive from the clock in the platform layer
}

// DefaultTickRate is the game timer rate in Hz.
const DefaultTickRate = 10

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  40,
		TickRate: DefaultTickRate,
		Seed:     0,
	}
}
