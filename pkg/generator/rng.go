package generator

import (
	"math"
	"math/rand"

	"github.com/brianvoe/gofakeit/v6"
)

// Rand is the single pseudorandom stream driving every stochastic decision
// of a generation run. It is constructor-injected and threaded through all
// stages; there is no package-level random state, so fixing the seed
// reproduces identical output tables.
type Rand struct {
	*rand.Rand
	Faker *gofakeit.Faker
}

// NewRand returns a seeded random source with an attached faker sharing
// the same seed.
func NewRand(seed int64) *Rand {
	return &Rand{
		Rand:  rand.New(rand.NewSource(seed)),
		Faker: gofakeit.New(seed),
	}
}

// IntBetween returns a uniform integer in [min, max], both inclusive.
func (r *Rand) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}

// Uniform returns a uniform float in [min, max).
func (r *Rand) Uniform(min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// Chance returns true with probability p.
func (r *Rand) Chance(p float64) bool {
	return r.Float64() < p
}

// Coin returns true or false with equal probability.
func (r *Rand) Coin() bool {
	return r.Intn(2) == 0
}

// WeightedIndex draws an index with probability proportional to weights.
func (r *Rand) WeightedIndex(weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	draw := r.Intn(total)
	for i, w := range weights {
		draw -= w
		if draw < 0 {
			return i
		}
	}
	return len(weights) - 1
}

// Choice returns a uniformly drawn element of items.
func Choice[T any](r *Rand, items []T) T {
	return items[r.Intn(len(items))]
}

// Sample returns k distinct elements of items, drawn without replacement.
// When k exceeds len(items) the whole set is returned.
func Sample[T any](r *Rand, items []T, k int) []T {
	if k > len(items) {
		k = len(items)
	}
	perm := r.Perm(len(items))
	out := make([]T, k)
	for i := 0; i < k; i++ {
		out[i] = items[perm[i]]
	}
	return out
}

// round2 rounds to cents.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
