package spatial

import (
	"context"
	"math"

	"github.com/hupe1980/meshkit/periodic"
	"golang.org/x/sync/errgroup"
)

// shardCount returns the number of shards forEachRow deals n rows to.
func shardCount(n, workers int) int {
	return max(min(workers, n), 1)
}

// forEachRow calls fn(shard, i) for every row i in [0, n), with shard in
// [0, shardCount(n, workers)). Rows are dealt to shards round-robin so that
// the triangular j > i loops stay balanced.
func forEachRow(ctx context.Context, n, workers int, fn func(shard, i int)) error {
	shards := shardCount(n, workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(shards)

	for s := range shards {
		g.Go(func() error {
			for i := s; i < n; i += shards {
				if err := gctx.Err(); err != nil {
					return err
				}
				fn(s, i)
			}
			return nil
		})
	}

	return g.Wait()
}

// PairDistances returns the minimum-image distance of every unordered pair
// (i, j), i < j, in row-major order: (0,1), (0,2), …, (1,2), ….
func PairDistances(ctx context.Context, x, y []float64, L float64, optFns ...Option) ([]float64, error) {
	if err := validatePoints(x, y, L); err != nil {
		return nil, err
	}
	opts := applyOptions(optFns)

	n := len(x)
	out := make([]float64, n*(n-1)/2)
	err := forEachRow(ctx, n, opts.workers, func(_, i int) {
		base := i*n - i*(i+1)/2
		for j := i + 1; j < n; j++ {
			out[base+j-i-1] = periodic.Distance2D(x[i], y[i], x[j], y[j], L)
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// NearestNeighbourDistance returns, for every point i, the minimum-image
// distance to the closest point j != i. Distinct points at the same position
// have distance 0.
func NearestNeighbourDistance(ctx context.Context, x, y []float64, L float64, optFns ...Option) ([]float64, error) {
	if err := validatePoints(x, y, L); err != nil {
		return nil, err
	}
	opts := applyOptions(optFns)

	n := len(x)
	out := make([]float64, n)
	err := forEachRow(ctx, n, opts.workers, func(_, i int) {
		best := math.Inf(1)
		for j := range n {
			if j == i {
				continue
			}
			if d2 := periodic.SquaredDistance2D(x[i], y[i], x[j], y[j], L); d2 < best {
				best = d2
			}
		}
		out[i] = math.Sqrt(best)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
