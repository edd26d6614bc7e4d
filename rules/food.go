package rules

import (
	"sync"

	"golang.org/x/exp/rand"
)

// FoodSource is the uniform random source used to place food. Intn returns a
// value in [0, n).
type FoodSource interface {
	Intn(n int) int
}

// NewRandomFoodSource returns a FoodSource seeded with seed. The same seed
// always yields the same sequence of draws.
func NewRandomFoodSource(seed int64) FoodSource {
	return &lockedSource{r: rand.New(rand.NewSource(uint64(seed)))}
}

type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}

// randomCoordinate picks a grid aligned coordinate below max.
func randomCoordinate(src FoodSource, max, cell int) int {
	return src.Intn(max/cell) * cell
}
