// Package engine implements the falling-block playfield simulation: piece
// generation and movement, collision against a sentinel-bordered grid,
// gravity, row clearing, scoring and the menu/game/high-score screen machine.
//
// The engine is single-threaded and allocation-free per step. It draws through
// core.Renderer and reads one core.Button per step; it has no knowledge of
// terminals, timers or transport.
package engine

import "math/bits"

const (
	pcgMultiplier = 6364136223846793005
	pcgStream     = 0xda3e39cb94b95bdb
)

// RNG is a permuted congruential generator (PCG32): a 64-bit LCG state with
// an xorshift + random-rotate output permutation yielding 32-bit values.
type RNG struct {
	state uint64
	inc   uint64
}

// NewRNG returns a generator seeded with seed.
func NewRNG(seed uint64) RNG {
	var r RNG
	r.Seed(seed)
	return r
}

// Seed initializes state and increment from a single caller value.
// The stream selector is derived from the seed so that nearby seeds pick
// different streams.
func (r *RNG) Seed(seed uint64) {
	r.SeedStream(seed, seed^pcgStream)
}

// SeedStream initializes the generator with an explicit initial state and
// stream selector, exactly as the reference pcg32_srandom_r.
func (r *RNG) SeedStream(initState, seq uint64) {
	r.state = 0
	r.inc = seq<<1 | 1
	r.Next()
	r.state += initState
	r.Next()
}

// Next advances the state and returns the next 32-bit output.
func (r *RNG) Next() uint32 {
	old := r.state
	r.state = old*pcgMultiplier + r.inc
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := int(old >> 59)
	return bits.RotateLeft32(xorshifted, -rot)
}

// Intn returns a value in [0, n). n must be positive.
func (r *RNG) Intn(n uint32) uint32 {
	return r.Next() % n
}
