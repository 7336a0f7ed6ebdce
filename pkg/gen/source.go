package gen

import (
	"math/rand"
	"time"
)

// Source produces uniformly distributed integers in an inclusive
// range. Implementations are stateful: every call advances the draw
// sequence. A Source is meant for single-threaded use within one run.
type Source interface {
	IntRange(low, high int) int
}

// SeededSource is a Source backed by a seeded math/rand generator.
// The seed is retained so a failing run can be reproduced.
type SeededSource struct {
	rng  *rand.Rand
	seed int64
}

// NewSource creates a SeededSource with the given seed. A zero seed
// selects the current time, for runs that do not need to be replayed.
func NewSource(seed int64) *SeededSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &SeededSource{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// IntRange returns a uniformly distributed integer in [low, high].
func (s *SeededSource) IntRange(low, high int) int {
	return low + s.rng.Intn(high-low+1)
}

// Seed returns the seed this source was created with.
func (s *SeededSource) Seed() int64 {
	return s.seed
}
