package services

import "math/rand/v2"

// MathRandom is a RandomSource backed by math/rand/v2.
type MathRandom struct{}

func NewRandomSource() MathRandom {
	return MathRandom{}
}

// IntBetween returns a uniform integer in [min, max].
func (MathRandom) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + rand.IntN(max-min+1)
}
