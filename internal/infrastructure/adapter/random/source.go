// Package random provides RandomSource implementations for the prize selector.
package random

import (
	"math/rand/v2"
	"sync"
)

// Source is a goroutine-safe PCG generator. The zero value is not usable.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource seeds a generator from the runtime's entropy
func NewSource() *Source {
	return NewSeeded(rand.Uint64(), rand.Uint64())
}

// NewSeeded creates a reproducible generator
func NewSeeded(seed1, seed2 uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// Int64N returns a uniform integer in [0, n)
func (s *Source) Int64N(n int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Int64N(n)
}

// Sequence replays fixed values, each reduced modulo n. It wraps around
// when exhausted. Intended for tests that need a specific draw.
type Sequence struct {
	mu     sync.Mutex
	values []int64
	pos    int
}

// NewSequence creates a source replaying values
func NewSequence(values ...int64) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) Int64N(n int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}
