package wfc

import "math/bits"

// Source is the uniform random sampler the solver requires: floats in
// [0, 1) for the entropy tiebreak noise, and bounded integers for weighted
// pattern selection. The core never reads a global random source — every
// draw comes from an injected Source, which is what makes a solve
// reproducible given the same seed image, parameters, and Source (spec
// determinism contract).
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// IntN returns a uniform value in [0, n). Panics if n <= 0.
	IntN(n int) int
}

// xxhash64 is an unrolled xxhash64-style mix, the same mixing function the
// teacher package uses for its deterministic coordinate noise. It is the
// basis for HashSource's stream of draws.
func xxhash64(v, seed uint64) uint64 {
	x := v ^ (0x1cad21f72c81017c ^ 0xdb979083e96dd4de) + seed
	x ^= bits.RotateLeft64(x, 49) ^ bits.RotateLeft64(x, 24)
	x *= 0x9fb21c651e98df25
	x ^= (x >> 35) + 4
	x *= 0x9fb21c651e98df25
	x ^= (x >> 28)
	return x
}

// HashSource is a deterministic Source derived entirely from a seed and an
// advancing draw counter: every call to Float64 or IntN mixes (seed,
// counter) through xxhash64 and increments the counter, so a HashSource
// constructed from the same seed reproduces the exact same draw sequence
// regardless of process, platform, or time.
type HashSource struct {
	seed    uint64
	counter uint64
}

// NewHashSource returns a HashSource seeded deterministically from seed.
func NewHashSource(seed uint64) *HashSource {
	return &HashSource{seed: seed}
}

// Float64 returns the next uniform value in [0, 1) in the stream.
func (s *HashSource) Float64() float64 {
	h := xxhash64(s.counter, s.seed)
	s.counter++
	return float64(h>>11) / float64(1<<53)
}

// IntN returns the next uniform value in [0, n) in the stream.
func (s *HashSource) IntN(n int) int {
	if n <= 0 {
		panic("wfc: IntN called with n <= 0")
	}
	h := xxhash64(s.counter, s.seed^0x9e3779b97f4a7c15)
	s.counter++
	return int(h % uint64(n))
}
