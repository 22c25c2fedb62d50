package mesh

type cartesianOptions struct {
	ny     int
	ly     float64
	x0, y0 float64
}

// CartesianOption configures Cartesian.
type CartesianOption func(*cartesianOptions)

// WithNY sets the number of points along y. Defaults to nx.
func WithNY(ny int) CartesianOption {
	return func(o *cartesianOptions) { o.ny = ny }
}

// WithLY sets the extent along y. Defaults to lx.
func WithLY(ly float64) CartesianOption {
	return func(o *cartesianOptions) { o.ly = ly }
}

// WithOrigin sets the lower-left corner of the mesh. Defaults to (0, 0).
func WithOrigin(x0, y0 float64) CartesianOption {
	return func(o *cartesianOptions) {
		o.x0 = x0
		o.y0 = y0
	}
}

type polarOptions struct {
	ntheta int
	ltheta float64
	r0     float64
	theta0 float64
}

// PolarOption configures Polar.
type PolarOption func(*polarOptions)

// WithNTheta sets the number of angular points. Defaults to nr.
func WithNTheta(n int) PolarOption {
	return func(o *polarOptions) { o.ntheta = n }
}

// WithLTheta sets the angular extent. Defaults to 2π.
func WithLTheta(l float64) PolarOption {
	return func(o *polarOptions) { o.ltheta = l }
}

// WithR0 sets the inner radius.
func WithR0(r0 float64) PolarOption {
	return func(o *polarOptions) { o.r0 = r0 }
}

// WithTheta0 sets the starting angle.
func WithTheta0(theta0 float64) PolarOption {
	return func(o *polarOptions) { o.theta0 = theta0 }
}
