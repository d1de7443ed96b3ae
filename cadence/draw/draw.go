// Package draw provides the randomness source behind every
// scheduling decision. All random behavior in the cadence
// packages flows through a Source so that tests can script
// exact branch selection instead of sampling distributions.
package draw

import (
	"math/rand/v2"
	"time"
)

// Source yields the two primitive draws the cadence logic
// needs: a bounded integer and a float in [0,1).
type Source interface {
	IntN(n int) int
	Float64() float64
}

// New returns a Source backed by math/rand/v2 seeded with
// seed. A zero seed derives the seed from the current time,
// matching scheduled-run behavior.
func New(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) //nolint:gosec // not cryptographic
	}

	return rand.New(rand.NewPCG(seed, seed))
}

// Between returns a uniform integer in [lo, hi] inclusive.
func Between(src Source, lo int, hi int) int {
	if hi <= lo {
		return lo
	}

	return lo + src.IntN(hi-lo+1)
}

// Sequence is a scripted Source that replays fixed values.
// IntN pops the next integer reduced modulo n; Float64 pops
// the next float. Exhausted scripts return zero values so a
// test that under-scripts fails loudly on the deterministic
// zero branch rather than panicking.
type Sequence struct {
	Ints   []int
	Floats []float64
}

// IntN pops the next scripted integer reduced modulo n.
func (s *Sequence) IntN(n int) int {
	if len(s.Ints) == 0 || n <= 0 {
		return 0
	}

	v := s.Ints[0]
	s.Ints = s.Ints[1:]

	return v % n
}

// Float64 pops the next scripted float.
func (s *Sequence) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}

	v := s.Floats[0]
	s.Floats = s.Floats[1:]

	return v
}
