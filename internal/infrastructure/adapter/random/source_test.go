package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeededSourceIsReproducible(t *testing.T) {
	a, b := NewSeeded(1, 2), NewSeeded(1, 2)
	for range 100 {
		assert.Equal(t, a.Int64N(1000), b.Int64N(1000))
	}
}

func TestSourceStaysInRange(t *testing.T) {
	s := NewSource()
	for range 10_000 {
		v := s.Int64N(7)
		assert.GreaterOrEqual(t, v, int64(0))
		assert.Less(t, v, int64(7))
	}
}

func TestSequence(t *testing.T) {
	s := NewSequence(3, 12, -4)

	assert.Equal(t, int64(3), s.Int64N(10))
	assert.Equal(t, int64(2), s.Int64N(10))
	assert.Equal(t, int64(4), s.Int64N(10))
	assert.Equal(t, int64(3), s.Int64N(10), "wraps around")
	assert.Equal(t, int64(0), NewSequence().Int64N(5))
}
