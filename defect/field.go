// Package defect generates topological defect configurations of 2D
// orientation fields and counts their topological charges.
//
// Angles are in radians. Charges follow the counter-clockwise-positive
// convention: the field θ = atan2(y, x) carries charge +1.
package defect

import (
	"math"

	"github.com/hupe1980/meshkit/errs"
	"github.com/hupe1980/meshkit/grid"
	"github.com/hupe1980/meshkit/mesh"
)

// Core is a single defect location and winding number.
type Core struct {
	X, Y float64
	M    int
}

// Field is an orientation field sampled on a Cartesian mesh.
type Field struct {
	Mesh  mesh.Mesh
	Theta grid.Grid // orientation, wrapped into (-π, π]
	VX    grid.Grid // cos θ
	VY    grid.Grid // sin θ
	Cores []Core
}

// Charge returns the sum of the winding numbers of all cores.
func (f Field) Charge() int {
	total := 0
	for _, c := range f.Cores {
		total += c.M
	}
	return total
}

type fieldOptions struct {
	theta0 float64
	center bool
	xc, yc float64
	x0, y0 float64
}

// FieldOption configures VectorField.
type FieldOption func(*fieldOptions)

// WithFieldTheta0 adds a constant rotation to the whole field.
func WithFieldTheta0(theta0 float64) FieldOption {
	return func(o *fieldOptions) { o.theta0 = theta0 }
}

// WithCenter places the defect core at (xc, yc). Defaults to the box centre.
func WithCenter(xc, yc float64) FieldOption {
	return func(o *fieldOptions) {
		o.center = true
		o.xc = xc
		o.yc = yc
	}
}

// WithBoxOrigin shifts the sampling box to start at (x0, y0).
func WithBoxOrigin(x0, y0 float64) FieldOption {
	return func(o *fieldOptions) {
		o.x0 = x0
		o.y0 = y0
	}
}

// VectorField builds the field θ(x, y) = m·atan2(y-yc, x-xc) + θ0 on an
// nx×nx mesh spanning a box of side lx.
//
// With an even nx and the default centre the core falls inside a plaquette
// rather than on a mesh vertex.
func VectorField(m int, lx float64, nx int, optFns ...FieldOption) (Field, error) {
	var opts fieldOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	msh, err := mesh.Cartesian(nx, lx, mesh.WithOrigin(opts.x0, opts.y0))
	if err != nil {
		return Field{}, err
	}

	if !opts.center {
		opts.xc = opts.x0 + lx/2
		opts.yc = opts.y0 + lx/2
	}

	theta := grid.New(nx, nx)
	for k := range theta.Data {
		dx := msh.X.Data[k] - opts.xc
		dy := msh.Y.Data[k] - opts.yc
		theta.Data[k] = WrapAngle(float64(m)*math.Atan2(dy, dx) + opts.theta0)
	}

	f := Field{
		Mesh:  msh,
		Theta: theta,
		Cores: []Core{{X: opts.xc, Y: opts.yc, M: m}},
	}
	f.VX, f.VY = components(theta)
	return f, nil
}

// Superpose adds the orientation fields of several defect configurations
// sampled on the same mesh.
func Superpose(fields ...Field) (Field, error) {
	if err := errs.CheckCount("field count", len(fields), 1); err != nil {
		return Field{}, err
	}

	first := fields[0]
	theta := first.Theta.Clone()
	cores := append([]Core(nil), first.Cores...)
	for _, f := range fields[1:] {
		if err := grid.CheckShape("superposed field", first.Theta, f.Theta); err != nil {
			return Field{}, err
		}
		for k, v := range f.Theta.Data {
			theta.Data[k] += v
		}
		cores = append(cores, f.Cores...)
	}
	for k, v := range theta.Data {
		theta.Data[k] = WrapAngle(v)
	}

	out := Field{Mesh: first.Mesh, Theta: theta, Cores: cores}
	out.VX, out.VY = components(theta)
	return out, nil
}

// WrapAngle maps a into (-π, π].
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	switch {
	case a > math.Pi:
		a -= 2 * math.Pi
	case a <= -math.Pi:
		a += 2 * math.Pi
	}
	return a
}

func components(theta grid.Grid) (grid.Grid, grid.Grid) {
	return theta.Map(math.Cos), theta.Map(math.Sin)
}
