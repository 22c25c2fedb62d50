// Package mesh builds Cartesian and polar coordinate meshes.
//
// Meshes use ndgrid ordering: a mesh of shape (n1, n2) holds
// X.At(i, j) = x_i and Y.At(i, j) = y_j, so the first index runs along the
// first coordinate.
//
//	xs, _ := mesh.Linspace(0, 1, 5) // [0 0.25 0.5 0.75 1]
//	m, _ := mesh.Cartesian(64, 10, mesh.WithNY(32), mesh.WithOrigin(-5, -5))
//	p, _ := mesh.ToPolar(m)
package mesh

import (
	"math"

	"github.com/hupe1980/meshkit/errs"
	"github.com/hupe1980/meshkit/grid"
)

// Mesh is an ordered pair of coordinate grids of identical shape.
//
// For polar meshes X holds the radius and Y the angle.
type Mesh struct {
	X grid.Grid
	Y grid.Grid
}

// Shape returns the mesh dimensions.
func (m Mesh) Shape() (int, int) { return m.X.Shape() }

// Linspace returns n evenly spaced values from start to end inclusive.
func Linspace(start, end float64, n int) ([]float64, error) {
	if err := errs.CheckCount("linspace count", n, 2); err != nil {
		return nil, err
	}

	out := make([]float64, n)
	step := (end - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	// Pin the endpoint; start + (n-1)*step may be off by an ulp.
	out[n-1] = end
	return out, nil
}

// Cartesian returns a mesh of shape (nx, ny) spanning [x0, x0+lx] × [y0, y0+ly].
//
// Defaults: ny = nx, ly = lx, x0 = y0 = 0.
func Cartesian(nx int, lx float64, optFns ...CartesianOption) (Mesh, error) {
	opts := cartesianOptions{ny: nx, ly: lx}
	for _, fn := range optFns {
		fn(&opts)
	}

	if err := errs.CheckPositive("lx", lx); err != nil {
		return Mesh{}, err
	}
	if err := errs.CheckPositive("ly", opts.ly); err != nil {
		return Mesh{}, err
	}

	xs, err := Linspace(opts.x0, opts.x0+lx, nx)
	if err != nil {
		return Mesh{}, err
	}
	ys, err := Linspace(opts.y0, opts.y0+opts.ly, opts.ny)
	if err != nil {
		return Mesh{}, err
	}

	return ndgrid(xs, ys), nil
}

// Polar returns a mesh in (r, θ) of shape (nr, nθ) spanning
// [r0, r0+lr] × [θ0, θ0+lθ].
//
// Defaults: nθ = nr, lθ = 2π, r0 = θ0 = 0.
func Polar(nr int, lr float64, optFns ...PolarOption) (Mesh, error) {
	opts := polarOptions{ntheta: nr, ltheta: 2 * math.Pi}
	for _, fn := range optFns {
		fn(&opts)
	}

	if err := errs.CheckPositive("lr", lr); err != nil {
		return Mesh{}, err
	}
	if err := errs.CheckPositive("lθ", opts.ltheta); err != nil {
		return Mesh{}, err
	}

	rs, err := Linspace(opts.r0, opts.r0+lr, nr)
	if err != nil {
		return Mesh{}, err
	}
	thetas, err := Linspace(opts.theta0, opts.theta0+opts.ltheta, opts.ntheta)
	if err != nil {
		return Mesh{}, err
	}

	return ndgrid(rs, thetas), nil
}

// ToPolar converts a Cartesian mesh into polar coordinates.
// The origin maps to θ = 0.
func ToPolar(m Mesh) (Mesh, error) {
	if err := grid.CheckShape("mesh", m.X, m.Y); err != nil {
		return Mesh{}, err
	}

	r := grid.New(m.X.Rows, m.X.Cols)
	theta := grid.New(m.X.Rows, m.X.Cols)
	for k := range m.X.Data {
		r.Data[k], theta.Data[k] = polar(m.X.Data[k], m.Y.Data[k])
	}
	return Mesh{X: r, Y: theta}, nil
}

// ToPolarPoints converts point coordinates into polar coordinates.
func ToPolarPoints(x, y []float64) (r, theta []float64, err error) {
	if err := errs.CheckSameLength("x/y", len(x), len(y)); err != nil {
		return nil, nil, err
	}

	r = make([]float64, len(x))
	theta = make([]float64, len(x))
	for i := range x {
		r[i], theta[i] = polar(x[i], y[i])
	}
	return r, theta, nil
}

func polar(x, y float64) (float64, float64) {
	r := math.Hypot(x, y)
	if r == 0 {
		return 0, 0
	}
	return r, math.Atan2(y, x)
}

func ndgrid(xs, ys []float64) Mesh {
	return Mesh{
		X: grid.Fill(len(xs), len(ys), func(i, _ int) float64 { return xs[i] }),
		Y: grid.Fill(len(xs), len(ys), func(_, j int) float64 { return ys[j] }),
	}
}
