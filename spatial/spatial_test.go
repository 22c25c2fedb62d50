package spatial

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/hupe1980/meshkit/errs"
	"github.com/hupe1980/meshkit/periodic"
	"github.com/hupe1980/meshkit/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearestNeighbourDistanceLattice(t *testing.T) {
	const L = 4.0
	x, y := testutil.SquareLattice(8, L)

	nn, err := NearestNeighbourDistance(context.Background(), x, y, L)
	require.NoError(t, err)

	require.Len(t, nn, 64)
	for _, d := range nn {
		assert.InDelta(t, 0.5, d, 1e-12)
	}
}

func TestNearestNeighbourDistanceWrapsAround(t *testing.T) {
	x := []float64{0.1, 9.9, 5}
	y := []float64{5, 5, 0.5}

	nn, err := NearestNeighbourDistance(context.Background(), x, y, 10)
	require.NoError(t, err)

	assert.InDelta(t, 0.2, nn[0], 1e-12)
	assert.InDelta(t, 0.2, nn[1], 1e-12)
	assert.InDelta(t, math.Hypot(4.9, 4.5), nn[2], 1e-12)
}

func TestNearestNeighbourDistanceCoincident(t *testing.T) {
	x := []float64{1, 1, 3}
	y := []float64{1, 1, 3}

	nn, err := NearestNeighbourDistance(context.Background(), x, y, 10)
	require.NoError(t, err)

	assert.Equal(t, 0.0, nn[0])
	assert.Equal(t, 0.0, nn[1])
	assert.InDelta(t, 2*math.Sqrt2, nn[2], 1e-12)
}

func TestNearestNeighbourDistanceMatchesBruteForce(t *testing.T) {
	const L = 3.0
	rng := testutil.NewRNG(4711)
	x, y := rng.UniformPoints(300, L)

	serial, err := NearestNeighbourDistance(context.Background(), x, y, L, WithWorkers(1))
	require.NoError(t, err)
	parallel, err := NearestNeighbourDistance(context.Background(), x, y, L, WithWorkers(7))
	require.NoError(t, err)
	assert.Equal(t, serial, parallel)

	for _, i := range []int{0, 17, 299} {
		best := math.Inf(1)
		for j := range x {
			if j != i {
				best = math.Min(best, periodic.Distance2D(x[i], y[i], x[j], y[j], L))
			}
		}
		assert.InDelta(t, best, serial[i], 1e-12)
	}
}

func TestInvalidArguments(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		x, y []float64
		L    float64
	}{
		{"LengthMismatch", []float64{1, 2}, []float64{1}, 10},
		{"SinglePoint", []float64{1}, []float64{1}, 10},
		{"ZeroBox", []float64{1, 2}, []float64{1, 2}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NearestNeighbourDistance(ctx, tt.x, tt.y, tt.L)
			assert.ErrorIs(t, err, errs.ErrInvalidArgument)

			_, err = RadialDistributionFunction(ctx, tt.x, tt.y, tt.L)
			assert.ErrorIs(t, err, errs.ErrInvalidArgument)

			_, err = PairDistances(ctx, tt.x, tt.y, tt.L)
			assert.ErrorIs(t, err, errs.ErrInvalidArgument)
		})
	}

	_, err := RadialDistributionFunction(ctx, []float64{1, 2}, []float64{1, 2}, 10, WithBins(0))
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = RadialDistributionFunction(ctx, []float64{1, 2}, []float64{1, 2}, 10, WithRMax(-1))
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestPairDistances(t *testing.T) {
	x := []float64{0, 1, 0, 9}
	y := []float64{0, 0, 2, 9}

	d, err := PairDistances(context.Background(), x, y, 10, WithWorkers(3))
	require.NoError(t, err)

	expected := []float64{
		1, 2, math.Sqrt2, // (0,1) (0,2) (0,3)
		math.Sqrt(5), math.Sqrt(4 + 1), // (1,2) (1,3)
		math.Sqrt(1 + 9), // (2,3)
	}
	assert.InDeltaSlice(t, expected, d, 1e-12)
}

func TestRadialDistributionFunctionPairCount(t *testing.T) {
	const L = 5.0
	rng := testutil.NewRNG(4711)
	x, y := rng.UniformPoints(200, L)
	n := float64(len(x))

	rdf, err := RadialDistributionFunction(context.Background(), x, y, L, WithBins(50))
	require.NoError(t, err)

	assert.Len(t, rdf.R, 50)
	assert.Len(t, rdf.G, 50)
	assert.InDelta(t, n*(n-1)/2, rdf.PairCount(), 1e-6)

	total := 0
	for _, c := range rdf.Counts {
		total += c
	}
	assert.Equal(t, len(x)*(len(x)-1)/2, total)
}

func TestRadialDistributionFunctionIndependentOfWorkers(t *testing.T) {
	const L = 2.0
	rng := testutil.NewRNG(42)
	x, y := rng.ClusteredPoints(4, 40, 0.1, L)

	a, err := RadialDistributionFunction(context.Background(), x, y, L, WithWorkers(1), WithRMax(L/2))
	require.NoError(t, err)
	b, err := RadialDistributionFunction(context.Background(), x, y, L, WithWorkers(5), WithRMax(L/2))
	require.NoError(t, err)

	assert.Equal(t, a.Counts, b.Counts)
	assert.Equal(t, a.G, b.G)
}

func TestRadialDistributionFunctionLattice(t *testing.T) {
	const L = 4.0
	x, y := testutil.SquareLattice(4, L)

	// Spacing 1: the only separations are 1, √2, 2, √5, 2√2.
	rdf, err := RadialDistributionFunction(context.Background(), x, y, L, WithBins(5))
	require.NoError(t, err)

	// dr = 2√2/5 ≈ 0.566; bin edges .57, 1.13, 1.70, 2.26, 2.83.
	// Per point: 4 at 1, 4 at √2, 2 at 2, 4 at √5, 1 at 2√2; halve for unordered pairs.
	assert.Equal(t, []int{0, 16 * 4 / 2, 16 * 4 / 2, 16 * (2 + 4) / 2, 16 * 1 / 2}, rdf.Counts)
	assert.InDelta(t, 0.5, rdf.R[0]/rdf.DR, 1e-12)
	assert.InDelta(t, 1.0, rdf.Density, 1e-12)
}

func TestForEachRowShards(t *testing.T) {
	tests := []struct {
		n, workers, shards int
	}{
		{10, 4, 4},
		{3, 8, 3},
		{5, 0, 1},
		{0, 4, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.shards, shardCount(tt.n, tt.workers))

		var mu sync.Mutex
		seen := make(map[int]int)
		err := forEachRow(context.Background(), tt.n, tt.workers, func(s, i int) {
			mu.Lock()
			defer mu.Unlock()
			assert.Less(t, s, tt.shards)
			seen[i]++
		})
		require.NoError(t, err)
		assert.Len(t, seen, tt.n)
		for i := range tt.n {
			assert.Equal(t, 1, seen[i])
		}
	}
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rng := testutil.NewRNG(1)
	x, y := rng.UniformPoints(50, 1)

	_, err := NearestNeighbourDistance(ctx, x, y, 1)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = RadialDistributionFunction(ctx, x, y, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
