package defect

import (
	"math"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/meshkit/errs"
	"github.com/hupe1980/meshkit/grid"
	"github.com/hupe1980/meshkit/mesh"
)

// Charge is a nonzero topological charge located at a plaquette.
//
// (I, J) is the lower-left vertex of the plaquette. X and Y locate the
// plaquette centre, in index units unless a mesh was supplied.
type Charge struct {
	I, J  int
	X, Y  float64
	Value int
}

// Charges is the result of CountTopologicalCharges.
type Charges struct {
	// List holds the nonzero charges in row-major plaquette order.
	List []Charge

	cols     int
	positive *roaring.Bitmap
	negative *roaring.Bitmap
}

// Len returns the number of charged plaquettes.
func (c *Charges) Len() int { return len(c.List) }

// Total returns the net charge.
func (c *Charges) Total() int {
	total := 0
	for _, q := range c.List {
		total += q.Value
	}
	return total
}

// At returns the charge of the plaquette with lower-left vertex (i, j).
func (c *Charges) At(i, j int) int {
	if c.positive == nil {
		return 0
	}
	idx := c.index(i, j)
	if !c.positive.Contains(idx) && !c.negative.Contains(idx) {
		return 0
	}
	k := sort.Search(len(c.List), func(k int) bool {
		return c.index(c.List[k].I, c.List[k].J) >= idx
	})
	return c.List[k].Value
}

// Positive returns the charges with Value > 0.
func (c *Charges) Positive() []Charge { return c.filter(c.positive) }

// Negative returns the charges with Value < 0.
func (c *Charges) Negative() []Charge { return c.filter(c.negative) }

// Mask returns the set of charged plaquettes as linear indices i*cols+j.
func (c *Charges) Mask() *roaring.Bitmap {
	if c.positive == nil {
		return roaring.New()
	}
	return roaring.Or(c.positive, c.negative)
}

func (c *Charges) filter(set *roaring.Bitmap) []Charge {
	if set == nil {
		return nil
	}
	out := make([]Charge, 0, set.GetCardinality())
	for _, q := range c.List {
		if set.Contains(c.index(q.I, q.J)) {
			out = append(out, q)
		}
	}
	return out
}

func (c *Charges) index(i, j int) uint32 { return uint32(i*c.cols + j) }

type countOptions struct {
	theta0    float64
	periodicX bool
	periodicY bool
	mesh      *mesh.Mesh
}

// CountOption configures CountTopologicalCharges.
type CountOption func(*countOptions)

// WithTheta0 sets a reference orientation subtracted from every sample
// before measuring. Winding numbers do not depend on it.
func WithTheta0(theta0 float64) CountOption {
	return func(o *countOptions) { o.theta0 = theta0 }
}

// WithPeriodic closes plaquettes across the last row (mx) and/or last
// column (my). Open boundaries skip those plaquettes.
func WithPeriodic(mx, my bool) CountOption {
	return func(o *countOptions) {
		o.periodicX = mx
		o.periodicY = my
	}
}

// WithMesh reports charge positions in the coordinates of m, which must
// have the shape of the orientation field.
func WithMesh(m mesh.Mesh) CountOption {
	return func(o *countOptions) { o.mesh = &m }
}

// CountTopologicalCharges finds every plaquette around which the orientation
// field θ winds by a nonzero multiple of 2π.
//
// θ.At(i, j) is the orientation at mesh vertex (x_i, y_j). The loop
// (i,j) → (i+1,j) → (i+1,j+1) → (i,j+1) is traversed counter-clockwise; each
// edge increment is reduced into (-π, π] and the rounded sum divided by 2π is
// the charge. An increment of exactly ±π is signed by vertex order, so an edge
// shared by two plaquettes always contributes opposite amounts to them and a
// core sitting on a vertex is counted once.
func CountTopologicalCharges(theta grid.Grid, optFns ...CountOption) (Charges, error) {
	var opts countOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	if err := errs.CheckCount("field rows", theta.Rows, 2); err != nil {
		return Charges{}, err
	}
	if err := errs.CheckCount("field cols", theta.Cols, 2); err != nil {
		return Charges{}, err
	}

	var dx, dy float64
	if opts.mesh != nil {
		m := *opts.mesh
		if err := grid.CheckShape("mesh", theta, m.X); err != nil {
			return Charges{}, err
		}
		if err := grid.CheckShape("mesh", theta, m.Y); err != nil {
			return Charges{}, err
		}
		dx = m.X.At(1, 0) - m.X.At(0, 0)
		dy = m.Y.At(0, 1) - m.Y.At(0, 0)
	}

	rows, cols := theta.Shape()
	iEnd, jEnd := rows-1, cols-1
	if opts.periodicX {
		iEnd = rows
	}
	if opts.periodicY {
		jEnd = cols
	}

	at := func(i, j int) float64 { return theta.At(i%rows, j%cols) - opts.theta0 }
	edge := func(i1, j1, i2, j2 int) float64 {
		w := WrapAngle(at(i2, j2) - at(i1, j1))
		if w == math.Pi && (i1%rows)*cols+j1%cols > (i2%rows)*cols+j2%cols {
			return -math.Pi
		}
		return w
	}

	out := Charges{
		cols:     cols,
		positive: roaring.New(),
		negative: roaring.New(),
	}
	for i := range iEnd {
		for j := range jEnd {
			sum := edge(i, j, i+1, j) + edge(i+1, j, i+1, j+1) +
				edge(i+1, j+1, i, j+1) + edge(i, j+1, i, j)
			q := int(math.Round(sum / (2 * math.Pi)))
			if q == 0 {
				continue
			}

			charge := Charge{I: i, J: j, X: float64(i) + 0.5, Y: float64(j) + 0.5, Value: q}
			if opts.mesh != nil {
				charge.X = opts.mesh.X.At(i, j) + dx/2
				charge.Y = opts.mesh.Y.At(i, j) + dy/2
			}
			out.List = append(out.List, charge)

			if q > 0 {
				out.positive.Add(out.index(i, j))
			} else {
				out.negative.Add(out.index(i, j))
			}
		}
	}
	return out, nil
}
