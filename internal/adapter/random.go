package adapter

import (
	"math/rand/v2"
)

// Random defines an interface for random number generation to enable mocking
//
//go:generate mockgen -source=random.go -destination=../mocks/random.go -package=mocks -mock_names=Random=MockRandom
type Random interface {
	// Float64 returns a number in [0.0, 1.0)
	Float64() float64
	// IntN returns a number in [0, n)
	IntN(n int) int
}

// RealRandom implements Random using math/rand/v2
type RealRandom struct{}

// NewRandom creates a new real random implementation
func NewRandom() Random {
	return &RealRandom{}
}

func (r *RealRandom) Float64() float64 {
	return rand.Float64()
}

func (r *RealRandom) IntN(n int) int {
	return rand.IntN(n)
}
