// Package random provides the injectable random-number source used by the
// pebble generator.
//
// All draws are sequential. Replaying the same seed through the same sequence
// of calls reproduces the same values, which is what makes a generated
// calendar reproducible from the seed printed in its report.
package random

import "math/rand/v2"

// Source draws uniform values from closed ranges.
type Source interface {
	// Float returns a uniform value in [lo, hi].
	Float(lo, hi float64) float64
	// Int returns a uniform integer in [lo, hi], both bounds inclusive.
	Int(lo, hi int) int
}

// Range is a closed float interval.
type Range struct {
	Lo, Hi float64
}

// IntRange is a closed integer interval.
type IntRange struct {
	Lo, Hi int
}

// PCG is a Source backed by math/rand/v2's PCG generator.
type PCG struct {
	rng *rand.Rand
}

// New returns a PCG source seeded with seed.
func New(seed uint64) *PCG {
	return &PCG{rng: rand.New(rand.NewPCG(seed, seed^0xdeadbeef))}
}

// Float returns lo + u*(hi-lo) for u uniform in [0, 1). A degenerate range
// still consumes one draw so the sequence does not shift.
func (p *PCG) Float(lo, hi float64) float64 {
	u := p.rng.Float64()
	if hi <= lo {
		return lo
	}
	return lo + u*(hi-lo)
}

// Int returns a uniform integer in [lo, hi].
func (p *PCG) Int(lo, hi int) int {
	return lo + p.rng.IntN(max(hi-lo, 0)+1)
}

// Seed draws a fresh seed in [0, 9999] from an unseeded generator. The small
// range keeps seeds easy to copy from a report by hand.
func Seed() uint64 {
	return uint64(rand.IntN(10000))
}

var _ Source = (*PCG)(nil)
