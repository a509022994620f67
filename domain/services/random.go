package services

import (
	"math/rand"
	"sync"
	"time"

	"zocker/domain/interfaces"
)

// lockedRandomSource wraps a math/rand.Rand with a mutex. rand.Rand is not
// safe for concurrent use and resolvers run on concurrent command handlers.
type lockedRandomSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomSource creates the default time-seeded random source.
func NewRandomSource() interfaces.RandomSource {
	return &lockedRandomSource{
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *lockedRandomSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Intn(n)
}
