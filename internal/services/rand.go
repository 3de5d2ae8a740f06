package services

import (
  "math/rand"
)

// Rand feeds the randomized filler counters (comment counts, read times) so
// the merge stage can be exercised deterministically in tests.
type Rand interface {
  Intn(n int) int
}

type mathRand struct{}

func (mathRand) Intn(n int) int {
  return rand.Intn(n)
}

func NewRand() Rand {
  return mathRand{}
}
