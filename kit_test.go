package meshkit

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/hupe1980/meshkit/blobstore"
	"github.com/hupe1980/meshkit/dataio"
	"github.com/hupe1980/meshkit/defect"
	"github.com/hupe1980/meshkit/grid"
	"github.com/hupe1980/meshkit/spatial"
	"github.com/hupe1980/meshkit/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKit_Pairwise(t *testing.T) {
	ctx := context.Background()
	metrics := &BasicMetricsCollector{}
	kit := New(WithMetricsCollector(metrics), WithWorkers(3))

	x, y := testutil.SquareLattice(6, 3)

	nn, err := kit.NearestNeighbourDistance(ctx, x, y, 3)
	require.NoError(t, err)
	for _, d := range nn {
		assert.InDelta(t, 0.5, d, 1e-12)
	}

	rdf, err := kit.RadialDistributionFunction(ctx, x, y, 3, spatial.WithBins(20))
	require.NoError(t, err)
	assert.InDelta(t, float64(36*35/2), rdf.PairCount(), 1e-6)

	d, err := kit.PairDistances(ctx, x, y, 3)
	require.NoError(t, err)
	assert.Len(t, d, 36*35/2)

	_, err = kit.NearestNeighbourDistance(ctx, []float64{1}, []float64{1}, 3)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	stats := metrics.GetStats()
	assert.Equal(t, int64(4), stats.PairwiseCount)
	assert.Equal(t, int64(1), stats.PairwiseErrors)
	assert.Equal(t, int64(3*36), stats.PairwisePoints)
}

func TestKit_MemoryLimit(t *testing.T) {
	kit := New(WithMemoryLimit(256))
	x, y := testutil.SquareLattice(4, 4)

	// 120 pair distances need 960 bytes; 16 nearest distances need 128.
	// A buffer larger than the whole limit is rejected without waiting.
	start := time.Now()
	_, err := kit.PairDistances(context.Background(), x, y, 4)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Less(t, time.Since(start), time.Second)

	_, err = kit.NearestNeighbourDistance(context.Background(), x, y, 4)
	require.NoError(t, err)
}

func TestKit_CountTopologicalCharges(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	kit := New(WithMetricsCollector(metrics))

	f, err := defect.VectorField(1, 1, 10)
	require.NoError(t, err)

	charges, err := kit.CountTopologicalCharges(context.Background(), f.Theta)
	require.NoError(t, err)
	assert.Equal(t, 1, charges.Total())

	_, err = kit.CountTopologicalCharges(context.Background(), grid.New(1, 1))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.ChargeCount)
	assert.Equal(t, int64(1), stats.ChargeErrors)
	assert.Equal(t, int64(1), stats.ChargesFound)
}

func TestKit_Tables(t *testing.T) {
	ctx := context.Background()
	metrics := &BasicMetricsCollector{}
	kit := New(
		WithStore(blobstore.NewMemoryStore()),
		WithMetricsCollector(metrics),
		WithIOLimit(1<<20),
	)

	x := []float64{0.25, 1.5, 2.75}
	y := []float64{3, 4, 5}
	require.NoError(t, kit.SaveXY(ctx, "runs/xy.dat.zst", x, y))

	gotX, gotY, err := kit.LoadXY(ctx, "runs/xy.dat.zst")
	require.NoError(t, err)
	assert.Equal(t, x, gotX)
	assert.Equal(t, y, gotY)

	table := dataio.Table{x, y, x}
	require.NoError(t, kit.SaveTable(ctx, "runs/t.dat", table))
	got, err := kit.LoadTable(ctx, "runs/t.dat")
	require.NoError(t, err)
	assert.Equal(t, table, got)

	_, _, err = kit.LoadXY(ctx, "runs/t.dat")
	assert.ErrorIs(t, err, ErrIO)

	_, err = kit.LoadTable(ctx, "runs/missing.dat")
	assert.ErrorIs(t, err, ErrIO)

	names, err := kit.ListTables(ctx, "runs/")
	require.NoError(t, err)
	assert.Equal(t, []string{"runs/t.dat", "runs/xy.dat.zst"}, names)

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.WriteCount)
	assert.Equal(t, int64(6), stats.WriteRows)
	assert.Equal(t, int64(4), stats.ReadCount)
	assert.Equal(t, int64(2), stats.ReadErrors)
	assert.Equal(t, int64(6), stats.ReadRows)
}

func TestKit_NoStore(t *testing.T) {
	ctx := context.Background()
	kit := New()

	_, err := kit.LoadTable(ctx, "a.dat")
	assert.ErrorIs(t, err, ErrNoStore)
	assert.ErrorIs(t, kit.SaveXY(ctx, "a.dat", nil, nil), ErrNoStore)
	_, err = kit.ListTables(ctx, "")
	assert.ErrorIs(t, err, ErrNoStore)
	assert.Nil(t, kit.Store())
}

func TestKit_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	kit := New(WithLogger(logger), WithStore(blobstore.NewMemoryStore()))
	ctx := context.Background()

	x, y := testutil.SquareLattice(3, 3)
	_, err := kit.NearestNeighbourDistance(ctx, x, y, 3)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"msg":"nearest_neighbour completed"`)
	assert.Contains(t, buf.String(), `"points":9`)

	_, err = kit.LoadTable(ctx, "missing.dat")
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"msg":"table read failed"`)
	assert.Contains(t, buf.String(), `"path":"missing.dat"`)
}

func TestErrorReexports(t *testing.T) {
	var err error = &ShapeMismatchError{What: "x", Expected: 1, Actual: 2}
	assert.ErrorIs(t, err, ErrInvalidArgument)

	err = &MalformedRowError{Line: 3, Expected: 2, Actual: 1}
	assert.ErrorIs(t, err, ErrIO)
	assert.False(t, errors.Is(err, ErrInvalidArgument))
}

func TestLoggerHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, nil)).WithCount(3).WithPath("a.dat")
	logger.LogIO(context.Background(), "write", "a.dat", 3, nil)

	assert.Contains(t, buf.String(), "count=3")
	assert.Contains(t, buf.String(), "table write completed")

	NoopLogger().LogCharges(context.Background(), 4, 1, 1, nil)
}
