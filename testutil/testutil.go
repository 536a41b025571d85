package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Triple returns three values uniformly drawn from [minVal, maxVal).
func (r *RNG) Triple(minVal, maxVal float64) [3]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tripleLocked(minVal, maxVal)
}

func (r *RNG) tripleLocked(minVal, maxVal float64) [3]float64 {
	span := maxVal - minVal
	return [3]float64{
		minVal + r.rand.Float64()*span,
		minVal + r.rand.Float64()*span,
		minVal + r.rand.Float64()*span,
	}
}

// Triples returns num triples with values in [minVal, maxVal).
// Locks only once per call (preferred over calling Triple in a loop).
func (r *RNG) Triples(num int, minVal, maxVal float64) [][3]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([][3]float64, num)
	for i := range out {
		out[i] = r.tripleLocked(minVal, maxVal)
	}
	return out
}

// IntTriples returns num integer triples with values in [-bound, bound].
func (r *RNG) IntTriples(num, bound int) [][3]int {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([][3]int, num)
	for i := range out {
		for j := range out[i] {
			out[i][j] = r.rand.Intn(2*bound+1) - bound
		}
	}
	return out
}

// GaussianTriples returns num triples drawn from a standard normal distribution.
func (r *RNG) GaussianTriples(num int) [][3]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([][3]float64, num)
	for i := range out {
		for j := range out[i] {
			out[i][j] = r.rand.NormFloat64()
		}
	}
	return out
}

// ApproxEqual reports whether a and b differ by at most tol relative to the
// larger magnitude (absolute for magnitudes below 1).
func ApproxEqual(a, b, tol float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= tol*scale
}
