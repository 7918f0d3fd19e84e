// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps Go's standard random generator so that the whole app can
// use a predictable (seeded) random source.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a new service with the given seed. A seed of 0 uses
// the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn returns a random integer in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random float in [0, 1).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Rand exposes the underlying generator, e.g. as an entropy source for ids.
func (s *PRNGService) Rand() *rand.Rand {
	return s.rng
}
