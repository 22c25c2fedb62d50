// Package testutil provides testing utilities for meshkit.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG and generators for point sets in a
// periodic box.
//
// # Point Sets
//
//	rng := testutil.NewRNG(seed)
//	x, y := rng.UniformPoints(500, L)   // uniform in [0, L)²
//	x, y = testutil.SquareLattice(8, L) // 8×8 lattice, spacing L/8
//	x, y = rng.ClusteredPoints(4, 50, 0.2, L)
package testutil
