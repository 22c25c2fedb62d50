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

// FillUniformRange fills dst with random values in range [minVal, maxVal).
// Locks only once per call (preferred over calling Float64 in a loop).
func (r *RNG) FillUniformRange(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*span
	}
}

// UniformPoints returns n points distributed uniformly in [0, L)².
func (r *RNG) UniformPoints(n int, L float64) (x, y []float64) {
	x = make([]float64, n)
	y = make([]float64, n)
	r.FillUniformRange(x, 0, L)
	r.FillUniformRange(y, 0, L)
	return x, y
}

// ClusteredPoints places perCluster Gaussian-distributed points of width
// sigma around each of clusters random centres, wrapped into [0, L)².
func (r *RNG) ClusteredPoints(clusters, perCluster int, sigma, L float64) (x, y []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	x = make([]float64, 0, clusters*perCluster)
	y = make([]float64, 0, clusters*perCluster)
	for range clusters {
		cx, cy := r.rand.Float64()*L, r.rand.Float64()*L
		for range perCluster {
			x = append(x, wrap(cx+sigma*r.rand.NormFloat64(), L))
			y = append(y, wrap(cy+sigma*r.rand.NormFloat64(), L))
		}
	}
	return x, y
}

// RandomAngles returns n angles uniform in [-π, π).
func (r *RNG) RandomAngles(n int) []float64 {
	out := make([]float64, n)
	r.FillUniformRange(out, -math.Pi, math.Pi)
	return out
}

// SquareLattice returns the n×n lattice with spacing L/n starting at the origin.
func SquareLattice(n int, L float64) (x, y []float64) {
	a := L / float64(n)
	x = make([]float64, 0, n*n)
	y = make([]float64, 0, n*n)
	for i := range n {
		for j := range n {
			x = append(x, float64(i)*a)
			y = append(y, float64(j)*a)
		}
	}
	return x, y
}

func wrap(v, L float64) float64 {
	v = math.Mod(v, L)
	if v < 0 {
		v += L
	}
	if v >= L {
		v = 0
	}
	return v
}
