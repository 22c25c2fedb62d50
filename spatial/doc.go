// Package spatial computes pair statistics of point sets in a square periodic box.
//
// All routines are O(n²) over point pairs. Rows of the pair matrix are
// distributed over a bounded number of goroutines and merged by a simple
// reduction (min for nearest neighbours, sum for histograms), so results do
// not depend on the worker count.
//
// # Usage
//
//	nn, err := spatial.NearestNeighbourDistance(ctx, x, y, L)
//	rdf, err := spatial.RadialDistributionFunction(ctx, x, y, L,
//	    spatial.WithBins(200),
//	    spatial.WithRMax(L/2),
//	)
//
// Distances use the minimum-image convention, see package periodic.
package spatial
