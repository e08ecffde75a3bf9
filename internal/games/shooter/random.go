package shooter

import "math/rand"

// Source is the random draw source consumed by spawning.
// Spawning depends on the exact order and number of draws, so a Source is
// owned by one State and never shared.
type Source interface {
	// Intn returns an integer in [0, n).
	Intn(n int) int
	// Bool returns a uniformly distributed boolean.
	Bool() bool
}

type randSource struct {
	rng *rand.Rand
}

// NewSource returns a Source seeded with seed.
// Equal seeds produce equal draw sequences.
func NewSource(seed int64) Source {
	return &randSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *randSource) Intn(n int) int {
	return s.rng.Intn(n)
}

func (s *randSource) Bool() bool {
	return s.rng.Intn(2) == 1
}
