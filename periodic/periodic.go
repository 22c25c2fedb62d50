// Package periodic provides minimum-image geometry for periodic boxes and
// unwrapping of periodic sequences.
package periodic

import (
	"math"

	"github.com/hupe1980/meshkit/errs"
)

// Displacement returns the signed minimum-image displacement a-b under
// period L. The result lies in [-L/2, L/2].
func Displacement(a, b, L float64) float64 {
	d := a - b
	return d - L*math.Round(d/L)
}

// Distance returns the minimum-image distance between a and b under period L.
func Distance(a, b, L float64) float64 {
	return math.Abs(Displacement(a, b, L))
}

// Distances applies Distance elementwise.
func Distances(a, b []float64, L float64) ([]float64, error) {
	if err := errs.CheckSameLength("a/b", len(a), len(b)); err != nil {
		return nil, err
	}
	if err := errs.CheckPositive("period", L); err != nil {
		return nil, err
	}

	out := make([]float64, len(a))
	for i := range a {
		out[i] = Distance(a[i], b[i], L)
	}
	return out, nil
}

// Distance2D returns the Euclidean minimum-image distance between two points
// in a square periodic box of side L.
func Distance2D(x1, y1, x2, y2, L float64) float64 {
	return math.Sqrt(SquaredDistance2D(x1, y1, x2, y2, L))
}

// SquaredDistance2D is Distance2D without the square root.
func SquaredDistance2D(x1, y1, x2, y2, L float64) float64 {
	dx := Displacement(x1, x2, L)
	dy := Displacement(y1, y2, L)
	return dx*dx + dy*dy
}

// Wrap maps x into [0, L).
func Wrap(x, L float64) float64 {
	w := x - L*math.Floor(x/L)
	if w >= L {
		// x slightly below a multiple of L can round up to L.
		return 0
	}
	return w
}
