package rng

import (
	"math/rand"
)

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Seeded is a deterministic generator backed by math/rand
type Seeded struct {
	r *rand.Rand
}

// NewSeeded returns a generator seeded with seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{r: rand.New(rand.NewSource(seed))} // nolint:gosec
}

// Intn returns a number in [0, n)
func (s *Seeded) Intn(n int) int {
	return s.r.Intn(n)
}

// Sequence returns a scripted list of values
// Each value is reduced modulo n. Once exhausted, it returns n-1, which leaves a Fisher-Yates shuffle untouched
type Sequence struct {
	values []int
	pos    int
}

// NewSequence returns a scripted generator
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

// Intn returns the next scripted value
func (s *Sequence) Intn(n int) int {
	if s.pos >= len(s.values) {
		return n - 1
	}

	v := s.values[s.pos]
	s.pos++
	return v % n
}
