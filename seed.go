package patgen

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Seed holds the numeric seed a pattern is generated from.
type Seed struct {
	val float64
}

// InitSeed resolves the seed for a run.
// `arg` is either the empty string or a decimal number; fractional values in
// [0,1) are the usual case. Empty picks a time-derived fractional seed so
// repeated runs differ, and the chosen value prints with the output filename.
func InitSeed(arg string) (Seed, error) {
	if arg == "" {
		nano := time.Now().UnixNano()
		return Seed{val: float64(nano%(1<<32)) / (1 << 32)}, nil
	}
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return Seed{}, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return Seed{val: v}, nil
}

// Value returns the numeric seed.
func (s Seed) Value() float64 {
	return s.val
}

// Filename returns an output name tagged with the seed's 32-bit state, so any
// result can be regenerated from its filename alone.
func (s Seed) Filename(prefix, ext string) string {
	return fmt.Sprintf("%s%08x%s", prefix, seedState(s.val), ext)
}
