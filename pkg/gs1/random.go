package gs1

import (
	"math/rand/v2"
	"sync"
)

// DigitSource supplies the pseudo-random numbers used by GenerateSSCC.
// Intn returns a value in [0, n).
type DigitSource interface {
	Intn(n int) int
}

type globalSource struct{}

// Intn draws from the math/rand/v2 global generator, which is safe for concurrent use.
func (globalSource) Intn(n int) int { return rand.IntN(n) }

// DefaultDigitSource is used when no source is given to GenerateSSCC.
var DefaultDigitSource DigitSource = globalSource{}

// SeededSource is a deterministic DigitSource. It is safe for concurrent use,
// but concurrent callers observe an interleaved sequence.
type SeededSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSeededSource returns a source that yields the same sequence for the same seed.
func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{rnd: rand.New(rand.NewPCG(seed, seed))}
}

func (s *SeededSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.IntN(n)
}
