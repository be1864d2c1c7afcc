package game

import (
	crand "crypto/rand"
	"math/rand/v2"
	"sync"
)

// Rand is the randomness source injected into engines.
type Rand interface {
	IntN(n int) int
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

// NewRand returns a ChaCha8 generator seeded from the operating system CSPRNG,
// safe for concurrent use.
func NewRand() Rand {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		panic("game: crypto/rand unavailable: " + err.Error())
	}
	return &lockedRand{r: rand.New(rand.NewChaCha8(seed))}
}

// NewSeededRand is deterministic and meant for tests and replays.
func NewSeededRand(seed1, seed2 uint64) Rand {
	return &lockedRand{r: rand.New(rand.NewPCG(seed1, seed2))}
}

// Shuffle is an in-place Fisher-Yates shuffle.
func Shuffle(rng Rand, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, rng.IntN(i+1))
	}
}
