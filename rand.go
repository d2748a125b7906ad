package patgen

import "math"

// Rand is a deterministic pseudo-random source using the mulberry32 mixing
// function. Two Rands built from the same seed return identical sequences,
// which is what makes a pattern reproducible from its seed alone. Not for
// anything but visuals.
type Rand struct {
	state uint32
}

// NewRand returns a Rand seeded from a float64 seed via seedState.
func NewRand(seed float64) *Rand {
	return &Rand{state: seedState(seed)}
}

// seedState maps a float64 seed onto the 32-bit mulberry32 state.
// The rule: non-finite seeds become 0; a seed in [0,1) is scaled by 2^32 so
// that fractional seeds cover the whole state space; any other finite seed is
// floored and truncated to 32 bits (negatives wrap two's-complement).
func seedState(seed float64) uint32 {
	if math.IsNaN(seed) || math.IsInf(seed, 0) {
		return 0
	}
	if seed >= 0 && seed < 1 {
		return uint32(uint64(math.Floor(seed * (1 << 32))))
	}
	// Reduce in float space first: a direct conversion of a huge float to an
	// integer type is implementation-defined.
	f := math.Mod(math.Floor(seed), 1<<32)
	if f < 0 {
		f += 1 << 32
	}
	return uint32(f)
}

// Next returns the next value in [0, 1).
func (r *Rand) Next() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / (1 << 32)
}

// Between returns a value in [low, high).
func (r *Rand) Between(low, high float64) float64 {
	if high < low {
		low, high = high, low
	}
	return r.Next()*(high-low) + low
}

// Intn returns an int in [0, n). Returns 0 for n <= 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() * float64(n))
}
