package meshkit

import (
	"context"
	"time"

	"github.com/hupe1980/meshkit/blobstore"
	"github.com/hupe1980/meshkit/dataio"
	"github.com/hupe1980/meshkit/defect"
	"github.com/hupe1980/meshkit/grid"
	"github.com/hupe1980/meshkit/resource"
	"github.com/hupe1980/meshkit/spatial"
)

// Kit runs meshkit computations with shared logging, metrics and limits.
// It is safe for concurrent use.
type Kit struct {
	logger  *Logger
	metrics MetricsCollector
	store   blobstore.Store
	rc      *resource.Controller
	workers int
}

// New creates a Kit.
func New(optFns ...Option) *Kit {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Kit{
		logger:  opts.logger,
		metrics: opts.metricsCollector,
		store:   opts.store,
		rc:      resource.NewController(opts.limits),
		workers: opts.workers,
	}
}

// Store returns the configured blob store, or nil.
func (k *Kit) Store() blobstore.Store { return k.store }

func (k *Kit) spatialOptions(optFns []spatial.Option) []spatial.Option {
	return append([]spatial.Option{spatial.WithWorkers(k.workers)}, optFns...)
}

// pairwise runs fn in a job slot and records it.
func (k *Kit) pairwise(ctx context.Context, op string, points int, scratch int64, fn func() error) error {
	start := time.Now()
	err := k.runJob(ctx, scratch, fn)
	k.metrics.RecordPairwise(op, points, time.Since(start), err)
	k.logger.LogPairwise(ctx, op, points, err)
	return err
}

func (k *Kit) runJob(ctx context.Context, scratch int64, fn func() error) error {
	if err := k.rc.AcquireJob(ctx); err != nil {
		return err
	}
	defer k.rc.ReleaseJob()

	if err := k.rc.AcquireMemory(ctx, scratch); err != nil {
		return err
	}
	defer k.rc.ReleaseMemory(scratch)

	return fn()
}

// NearestNeighbourDistance returns, for every point, the minimum-image
// distance to its nearest other point. See spatial.NearestNeighbourDistance.
func (k *Kit) NearestNeighbourDistance(ctx context.Context, x, y []float64, L float64, optFns ...spatial.Option) ([]float64, error) {
	var nn []float64
	err := k.pairwise(ctx, OpNearestNeighbour, len(x), int64(len(x))*8, func() error {
		var err error
		nn, err = spatial.NearestNeighbourDistance(ctx, x, y, L, k.spatialOptions(optFns)...)
		return err
	})
	return nn, err
}

// RadialDistributionFunction computes g(r). See spatial.RadialDistributionFunction.
func (k *Kit) RadialDistributionFunction(ctx context.Context, x, y []float64, L float64, optFns ...spatial.Option) (spatial.RDF, error) {
	var rdf spatial.RDF
	err := k.pairwise(ctx, OpRadialDistribution, len(x), 0, func() error {
		var err error
		rdf, err = spatial.RadialDistributionFunction(ctx, x, y, L, k.spatialOptions(optFns)...)
		return err
	})
	return rdf, err
}

// PairDistances returns all unordered minimum-image pair distances. The
// n(n-1)/2 result is charged against the memory limit while it is built.
func (k *Kit) PairDistances(ctx context.Context, x, y []float64, L float64, optFns ...spatial.Option) ([]float64, error) {
	n := int64(len(x))
	var d []float64
	err := k.pairwise(ctx, OpPairDistances, len(x), n*(n-1)/2*8, func() error {
		var err error
		d, err = spatial.PairDistances(ctx, x, y, L, k.spatialOptions(optFns)...)
		return err
	})
	return d, err
}

// CountTopologicalCharges finds the charged plaquettes of θ.
// See defect.CountTopologicalCharges.
func (k *Kit) CountTopologicalCharges(ctx context.Context, theta grid.Grid, optFns ...defect.CountOption) (defect.Charges, error) {
	start := time.Now()
	charges, err := defect.CountTopologicalCharges(theta, optFns...)
	samples := theta.Len()

	k.metrics.RecordCharges(samples, charges.Len(), time.Since(start), err)
	k.logger.LogCharges(ctx, samples, charges.Len(), charges.Total(), err)
	return charges, err
}

func (k *Kit) tableOptions(optFns []dataio.Option) []dataio.Option {
	return append([]dataio.Option{dataio.WithController(k.rc)}, optFns...)
}

// LoadTable reads a table from the configured store.
func (k *Kit) LoadTable(ctx context.Context, name string, optFns ...dataio.Option) (dataio.Table, error) {
	if k.store == nil {
		return nil, ErrNoStore
	}

	start := time.Now()
	t, err := dataio.Load(ctx, k.store, name, k.tableOptions(optFns)...)
	k.metrics.RecordRead(t.NumRows(), time.Since(start), err)
	k.logger.LogIO(ctx, "read", name, t.NumRows(), err)
	return t, err
}

// SaveTable writes a table to the configured store.
func (k *Kit) SaveTable(ctx context.Context, name string, t dataio.Table, optFns ...dataio.Option) error {
	if k.store == nil {
		return ErrNoStore
	}

	start := time.Now()
	err := dataio.Save(ctx, k.store, name, t, k.tableOptions(optFns)...)
	k.metrics.RecordWrite(t.NumRows(), time.Since(start), err)
	k.logger.LogIO(ctx, "write", name, t.NumRows(), err)
	return err
}

// LoadXY reads a two-column table from the configured store.
func (k *Kit) LoadXY(ctx context.Context, name string, optFns ...dataio.Option) (x, y []float64, err error) {
	if k.store == nil {
		return nil, nil, ErrNoStore
	}

	start := time.Now()
	x, y, err = dataio.LoadXY(ctx, k.store, name, k.tableOptions(optFns)...)
	k.metrics.RecordRead(len(x), time.Since(start), err)
	k.logger.LogIO(ctx, "read", name, len(x), err)
	return x, y, err
}

// SaveXY writes x and y as a two-column table to the configured store.
func (k *Kit) SaveXY(ctx context.Context, name string, x, y []float64, optFns ...dataio.Option) error {
	if k.store == nil {
		return ErrNoStore
	}

	start := time.Now()
	err := dataio.SaveXY(ctx, k.store, name, x, y, k.tableOptions(optFns)...)
	k.metrics.RecordWrite(len(x), time.Since(start), err)
	k.logger.LogIO(ctx, "write", name, len(x), err)
	return err
}

// ListTables returns the sorted names of stored tables with the given prefix.
func (k *Kit) ListTables(ctx context.Context, prefix string) ([]string, error) {
	if k.store == nil {
		return nil, ErrNoStore
	}
	return k.store.List(ctx, prefix)
}
