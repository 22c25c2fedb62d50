package spatial

import (
	"context"
	"math"

	"github.com/hupe1980/meshkit/errs"
	"github.com/hupe1980/meshkit/periodic"
)

// RDF is a binned radial distribution function.
type RDF struct {
	// R holds the bin centres.
	R []float64
	// G holds g(r) per bin.
	G []float64
	// Counts holds the raw number of unordered pairs per bin.
	Counts []int
	// DR is the bin width.
	DR float64
	// Density is the number density N/L².
	Density float64
	// N is the number of points.
	N int
}

// PairCount returns Σ g(r)·2πr·dr·ρ·N, which equals the number of unordered
// pairs with separation below the upper histogram edge.
func (r RDF) PairCount() float64 {
	total := 0.0
	for k, g := range r.G {
		total += g * 2 * math.Pi * r.R[k] * r.DR * r.Density * float64(r.N)
	}
	return total
}

// RadialDistributionFunction histograms all unordered pair separations and
// normalizes each shell count by 2π·r·dr·ρ·N with ρ = N/L².
//
// Self-pairs are excluded and every unordered pair is counted once.
// Separations beyond the upper edge are dropped.
func RadialDistributionFunction(ctx context.Context, x, y []float64, L float64, optFns ...Option) (RDF, error) {
	if err := validatePoints(x, y, L); err != nil {
		return RDF{}, err
	}
	opts := applyOptions(optFns)
	if err := errs.CheckCount("bins", opts.bins, 1); err != nil {
		return RDF{}, err
	}
	if opts.rmax == 0 {
		opts.rmax = L / math.Sqrt2
	}
	if err := errs.CheckPositive("rmax", opts.rmax); err != nil {
		return RDF{}, err
	}

	n := len(x)
	bins := opts.bins
	dr := opts.rmax / float64(bins)
	// Tolerate rounding at the upper edge so that the farthest pair in a
	// square box lands in the last bin.
	edge := opts.rmax * (1 + 1e-12)

	shardCounts := make([][]int, shardCount(n, opts.workers))
	for s := range shardCounts {
		shardCounts[s] = make([]int, bins)
	}

	err := forEachRow(ctx, n, opts.workers, func(s, i int) {
		counts := shardCounts[s]
		for j := i + 1; j < n; j++ {
			r := periodic.Distance2D(x[i], y[i], x[j], y[j], L)
			if r > edge {
				continue
			}
			k := min(int(r/dr), bins-1)
			counts[k]++
		}
	})
	if err != nil {
		return RDF{}, err
	}

	rho := float64(n) / (L * L)
	out := RDF{
		R:       make([]float64, bins),
		G:       make([]float64, bins),
		Counts:  make([]int, bins),
		DR:      dr,
		Density: rho,
		N:       n,
	}
	for _, counts := range shardCounts {
		for k, c := range counts {
			out.Counts[k] += c
		}
	}
	for k := range bins {
		r := (float64(k) + 0.5) * dr
		out.R[k] = r
		out.G[k] = float64(out.Counts[k]) / (2 * math.Pi * r * dr * rho * float64(n))
	}
	return out, nil
}
