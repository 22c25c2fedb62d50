package meshkit

import (
	"sync/atomic"
	"time"
)

// Operation names passed to MetricsCollector.RecordPairwise.
const (
	OpNearestNeighbour   = "nearest_neighbour"
	OpRadialDistribution = "radial_distribution"
	OpPairDistances      = "pair_distances"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordPairwise is called after each O(n²) point computation.
	// op is one of the Op constants and points the number of input points.
	RecordPairwise(op string, points int, duration time.Duration, err error)

	// RecordCharges is called after each topological charge count.
	RecordCharges(samples, found int, duration time.Duration, err error)

	// RecordRead is called after each table load.
	RecordRead(rows int, duration time.Duration, err error)

	// RecordWrite is called after each table save.
	RecordWrite(rows int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordPairwise(string, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordCharges(int, int, time.Duration, error)     {}
func (NoopMetricsCollector) RecordRead(int, time.Duration, error)             {}
func (NoopMetricsCollector) RecordWrite(int, time.Duration, error)            {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	PairwiseCount      atomic.Int64
	PairwiseErrors     atomic.Int64
	PairwisePoints     atomic.Int64
	PairwiseTotalNanos atomic.Int64
	ChargeCount        atomic.Int64
	ChargeErrors       atomic.Int64
	ChargesFound       atomic.Int64
	ReadCount          atomic.Int64
	ReadErrors         atomic.Int64
	ReadRows           atomic.Int64
	WriteCount         atomic.Int64
	WriteErrors        atomic.Int64
	WriteRows          atomic.Int64
}

// RecordPairwise implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPairwise(_ string, points int, duration time.Duration, err error) {
	b.PairwiseCount.Add(1)
	b.PairwiseTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.PairwiseErrors.Add(1)
		return
	}
	b.PairwisePoints.Add(int64(points))
}

// RecordCharges implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCharges(_, found int, _ time.Duration, err error) {
	b.ChargeCount.Add(1)
	if err != nil {
		b.ChargeErrors.Add(1)
		return
	}
	b.ChargesFound.Add(int64(found))
}

// RecordRead implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRead(rows int, _ time.Duration, err error) {
	b.ReadCount.Add(1)
	if err != nil {
		b.ReadErrors.Add(1)
		return
	}
	b.ReadRows.Add(int64(rows))
}

// RecordWrite implements MetricsCollector.
func (b *BasicMetricsCollector) RecordWrite(rows int, _ time.Duration, err error) {
	b.WriteCount.Add(1)
	if err != nil {
		b.WriteErrors.Add(1)
		return
	}
	b.WriteRows.Add(int64(rows))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		PairwiseCount:    b.PairwiseCount.Load(),
		PairwiseErrors:   b.PairwiseErrors.Load(),
		PairwisePoints:   b.PairwisePoints.Load(),
		PairwiseAvgNanos: b.getAvgPairwiseNanos(),
		ChargeCount:      b.ChargeCount.Load(),
		ChargeErrors:     b.ChargeErrors.Load(),
		ChargesFound:     b.ChargesFound.Load(),
		ReadCount:        b.ReadCount.Load(),
		ReadErrors:       b.ReadErrors.Load(),
		ReadRows:         b.ReadRows.Load(),
		WriteCount:       b.WriteCount.Load(),
		WriteErrors:      b.WriteErrors.Load(),
		WriteRows:        b.WriteRows.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgPairwiseNanos() int64 {
	count := b.PairwiseCount.Load()
	if count == 0 {
		return 0
	}
	return b.PairwiseTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	PairwiseCount    int64
	PairwiseErrors   int64
	PairwisePoints   int64
	PairwiseAvgNanos int64
	ChargeCount      int64
	ChargeErrors     int64
	ChargesFound     int64
	ReadCount        int64
	ReadErrors       int64
	ReadRows         int64
	WriteCount       int64
	WriteErrors      int64
	WriteRows        int64
}
