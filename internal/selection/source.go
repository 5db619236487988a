package selection

import (
	"math/rand/v2"
	"sync"
)

// Source yields uniformly distributed integers in [0, n).
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// lockedSource wraps a seeded generator so concurrent sessions can share it.
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// NewSource returns the process-wide generator when seed is zero and a
// reproducible PCG generator otherwise. Both are safe for concurrent use.
func NewSource(seed uint64) Source {
	if seed == 0 {
		return globalSource{}
	}
	return &lockedSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// sample draws n distinct elements from pool with a partial Fisher-Yates
// shuffle over a copy; pool itself is left untouched.
func sample(src Source, pool []string, n int) []string {
	work := make([]string, len(pool))
	copy(work, pool)
	for i := 0; i < n; i++ {
		j := i + src.IntN(len(work)-i)
		work[i], work[j] = work[j], work[i]
	}
	return work[:n:n]
}
