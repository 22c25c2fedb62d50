package periodic

import (
	"math"

	"github.com/hupe1980/meshkit/errs"
)

// Aperiodic unwraps a periodic sequence with period p into a continuous one.
//
// Whenever two consecutive samples differ by more than p/2 the remainder of
// the sequence is shifted by the multiple of p that brings the jump back
// into [-p/2, p/2]. The first sample is left unchanged.
func Aperiodic(x []float64, p float64) ([]float64, error) {
	if err := errs.CheckPositive("period", p); err != nil {
		return nil, err
	}

	out := make([]float64, len(x))
	if len(x) == 0 {
		return out, nil
	}

	out[0] = x[0]
	offset := 0.0
	for i := 1; i < len(x); i++ {
		jump := x[i] - x[i-1]
		if math.Abs(jump) > p/2 {
			offset -= p * math.Round(jump/p)
		}
		out[i] = x[i] + offset
	}
	return out, nil
}

// AperiodicAngle unwraps a sequence of angles in radians.
func AperiodicAngle(theta []float64) ([]float64, error) {
	return Aperiodic(theta, 2*math.Pi)
}
