package rng

import "github.com/MichaelTJones/pcg"

// defaultSeed is the fixed "zero" seed used when callers pass seed==0.
const defaultSeed int64 = 1

// Source is a deterministic, seedable uniform-integer source.
type Source struct {
	gen *pcg.PCG64
}

// NewSource returns a Source seeded deterministically from seed.
// Policy: seed==0 uses defaultSeed instead, so zero-value callers still
// get a reproducible stream rather than an uninitialized one.
func NewSource(seed int64) *Source {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	s1, s2, q1, q2 := expandSeed(uint64(s))

	return &Source{gen: pcg.NewPCG64().Seed(s1, s2, q1, q2)}
}

// expandSeed spreads a single 64-bit seed across PCG64's two state words
// and two sequence-selector words via independent SplitMix64 draws, so
// nearby seeds do not produce correlated generators.
func expandSeed(seed uint64) (s1, s2, q1, q2 uint64) {
	x := seed
	s1, x = splitMix64(x)
	s2, x = splitMix64(x)
	q1, x = splitMix64(x)
	q2, _ = splitMix64(x)

	return s1, s2, q1, q2
}

// splitMix64 returns the next SplitMix64 output and its advanced state.
func splitMix64(x uint64) (out, next uint64) {
	next = x + 0x9e3779b97f4a7c15
	z := next
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z = z ^ (z >> 31)

	return z, next
}

// Derive returns an independent deterministic stream based on s and a
// stream identifier, so unrelated concerns (e.g. flood-fill sampling vs.
// permutation-index sampling) never draw from the same sequence even
// when started from one top-level seed.
func (s *Source) Derive(stream uint64) *Source {
	parent := s.gen.Random()
	mixed, _ := splitMix64(parent ^ (stream + 0x9e3779b97f4a7c15))

	return NewSource(int64(mixed))
}

// Intn returns a uniform pseudo-random integer in [min, max], inclusive.
// Panics if max < min, mirroring the programmer-error-only panic policy
// the rest of this codebase uses for malformed parameters.
func (s *Source) Intn(min, max int) int {
	if max < min {
		panic("rng: max < min")
	}
	span := uint64(max-min) + 1

	return min + int(s.gen.Bounded(span))
}

// Float64 returns a uniform pseudo-random value in [0, 1), used by the
// flood fill's probability checks.
func (s *Source) Float64() float64 {
	const mantissaBits = 53
	return float64(s.gen.Bounded(1<<mantissaBits)) / float64(uint64(1)<<mantissaBits)
}

// Chance reports true with probability p (p in [0,1]); p<=0 always
// returns false, p>=1 always returns true.
func (s *Source) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}

	return s.Float64() < p
}
