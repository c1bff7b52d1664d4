package game

import "math/rand"

// RNG wraps math/rand with the draws the engine needs. Seeding it makes
// encounter selection reproducible in tests.
type RNG struct {
	src *rand.Rand
}

func NewRNG(seed int64) *RNG {
	return &RNG{src: rand.New(rand.NewSource(seed))}
}

// Pick returns a uniformly chosen element of choices.
func (r *RNG) Pick(choices []string) string {
	return choices[r.src.Intn(len(choices))]
}

// Intn returns a random integer in [0, n).
func (r *RNG) Intn(n int) int {
	return r.src.Intn(n)
}

// WeightedSelect returns an index chosen proportionally to weights.
// All weights must be positive.
func (r *RNG) WeightedSelect(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	roll := r.src.Float64() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if roll < cumulative {
			return i
		}
	}
	return len(weights) - 1
}

// Chance returns true with probability 1 in n.
func (r *RNG) Chance(n int) bool {
	return r.src.Intn(n) == 0
}
