// Package entropy provides the pseudo-random source injected into content
// selection. Seeding it makes scenario and image picks reproducible in
// tests; a zero seed falls back to wall-clock seeding for production.
package entropy

import (
	"math/rand"
	"sync"
	"time"
)

// Source is a seedable random source safe for concurrent use. Request
// handlers share one instance, so draws are serialized internally.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource creates a source from the given seed. Seed 0 means
// time-seeded (non-reproducible).
func NewSource(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a uniform int in [0, n). n must be positive.
func (s *Source) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// Float returns a uniform float64 in [0, 1).
func (s *Source) Float() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}
