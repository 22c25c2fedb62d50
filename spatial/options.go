package spatial

import (
	"runtime"

	"github.com/hupe1980/meshkit/errs"
)

// DefaultBins is the default number of histogram bins for the radial
// distribution function.
const DefaultBins = 100

type options struct {
	workers int
	bins    int
	rmax    float64
}

// Option configures the pair routines.
type Option func(*options)

// WithWorkers limits the number of goroutines used for the pair loop.
// Values <= 0 select runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithBins sets the number of histogram bins. Defaults to DefaultBins.
func WithBins(n int) Option {
	return func(o *options) { o.bins = n }
}

// WithRMax sets the upper histogram edge. Defaults to L/√2, the largest
// minimum-image separation in a square box, so every pair is binned.
func WithRMax(r float64) Option {
	return func(o *options) { o.rmax = r }
}

func applyOptions(optFns []Option) options {
	o := options{bins: DefaultBins}
	for _, fn := range optFns {
		fn(&o)
	}
	if o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	return o
}

func validatePoints(x, y []float64, L float64) error {
	if err := errs.CheckSameLength("x/y", len(x), len(y)); err != nil {
		return err
	}
	if err := errs.CheckCount("point count", len(x), 2); err != nil {
		return err
	}
	return errs.CheckPositive("box size", L)
}
