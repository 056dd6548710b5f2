package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bit returns 0 or 1 with equal probability.
func (r *RNG) Bit() uint8 {
	return uint8(r.r.IntN(2))
}

// FillBinary fills the buffer with independent uniform 0/1 values.
func FillBinary(r *rand.Rand, buf []uint8) {
	for i := range buf {
		buf[i] = uint8(r.IntN(2))
	}
}

// RandomRow returns a row of w independent uniform cells drawn from r.
func RandomRow(r *RNG, w int) []uint8 {
	if w <= 0 {
		return []uint8{}
	}
	row := make([]uint8, w)
	FillBinary(r.r, row)
	return row
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
