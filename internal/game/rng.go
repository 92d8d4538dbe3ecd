package game

import (
	crand "crypto/rand"
	"fmt"
	"math/rand/v2"
)

// Rng is the draw capability the engine depends on. Production code
// injects a seeded generator; tests substitute scripted sequences so
// every randomized path is reproducible.
type Rng interface {
	// DrawOne picks a uniform index in [0, n).
	DrawOne(n int) int
	// DrawFour picks four distinct uniform indices in [0, n).
	// n must be at least 4.
	DrawFour(n int) [4]int
}

type seededRng struct {
	r *rand.Rand
}

// NewSeededRng returns the production Rng, seeded from the operating
// system's entropy source.
func NewSeededRng() Rng {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		panic(fmt.Errorf("game: seeding rng: %w", err))
	}
	return &seededRng{r: rand.New(rand.NewChaCha8(seed))}
}

func (s *seededRng) DrawOne(n int) int {
	return s.r.IntN(n)
}

func (s *seededRng) DrawFour(n int) [4]int {
	if n < 4 {
		panic(fmt.Sprintf("game: DrawFour needs n >= 4, got %d", n))
	}
	perm := s.r.Perm(n)
	var out [4]int
	copy(out[:], perm[:4])
	return out
}
