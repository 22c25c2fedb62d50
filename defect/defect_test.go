package defect

import (
	"math"
	"testing"

	"github.com/hupe1980/meshkit/errs"
	"github.com/hupe1980/meshkit/grid"
	"github.com/hupe1980/meshkit/mesh"
	"github.com/hupe1980/meshkit/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plaquetteCentre returns the physical centre of plaquette k on an nx-point
// mesh spanning [0, 1].
func plaquetteCentre(k, nx int) float64 {
	return (float64(k) + 0.5) / float64(nx-1)
}

func TestVectorField(t *testing.T) {
	f, err := VectorField(1, 2, 5)
	require.NoError(t, err)

	rows, cols := f.Theta.Shape()
	assert.Equal(t, 5, rows)
	assert.Equal(t, 5, cols)
	assert.Equal(t, 1, f.Charge())

	// Core at (1, 1): vertex (4, 2) lies at (2, 1), straight to the right.
	assert.InDelta(t, 0.0, f.Theta.At(4, 2), 1e-12)
	assert.InDelta(t, math.Pi/2, f.Theta.At(2, 4), 1e-12)
	assert.InDelta(t, math.Pi, f.Theta.At(0, 2), 1e-12)
	assert.InDelta(t, 1.0, f.VX.At(4, 2), 1e-12)
	assert.InDelta(t, 1.0, f.VY.At(2, 4), 1e-12)
}

func TestVectorFieldOptions(t *testing.T) {
	f, err := VectorField(-1, 1, 3, WithCenter(0, 0), WithFieldTheta0(math.Pi/2), WithBoxOrigin(-0.5, -0.5))
	require.NoError(t, err)

	assert.InDelta(t, -0.5, f.Mesh.X.At(0, 0), 1e-12)
	// (0.5, 0): -atan2(0, 0.5) + π/2
	assert.InDelta(t, math.Pi/2, f.Theta.At(2, 1), 1e-12)
	// (0, 0.5): -π/2 + π/2
	assert.InDelta(t, 0.0, f.Theta.At(1, 2), 1e-12)
	assert.Equal(t, []Core{{X: 0, Y: 0, M: -1}}, f.Cores)
}

func TestVectorFieldInvalid(t *testing.T) {
	_, err := VectorField(1, 1, 1)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = VectorField(1, 0, 8)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestCountSingleDefect(t *testing.T) {
	for _, m := range []int{1, -1} {
		f, err := VectorField(m, 1, 20)
		require.NoError(t, err)

		charges, err := CountTopologicalCharges(f.Theta)
		require.NoError(t, err)

		require.Equal(t, 1, charges.Len(), "m=%d", m)
		q := charges.List[0]
		assert.Equal(t, m, q.Value)
		assert.Equal(t, 9, q.I)
		assert.Equal(t, 9, q.J)
		assert.Equal(t, m, charges.At(9, 9))
		assert.Equal(t, 0, charges.At(0, 0))
		assert.Equal(t, m, charges.Total())
	}
}

func TestCountDefectOnVertex(t *testing.T) {
	// With an odd nx the default core is a mesh vertex, so the jump from the
	// core to its neighbour in -x is exactly π.
	for _, nx := range []int{5, 11, 21, 31} {
		for _, m := range []int{1, -1} {
			f, err := VectorField(m, 1, nx)
			require.NoError(t, err)

			charges, err := CountTopologicalCharges(f.Theta)
			require.NoError(t, err)

			require.Equal(t, 1, charges.Len(), "nx=%d m=%d", nx, m)
			assert.Equal(t, f.Charge(), charges.Total(), "nx=%d m=%d", nx, m)

			k := (nx - 1) / 2
			q := charges.List[0]
			assert.Contains(t, []int{k - 1, k}, q.I, "nx=%d m=%d", nx, m)
			assert.Contains(t, []int{k - 1, k}, q.J, "nx=%d m=%d", nx, m)
		}
	}
}

func TestCountExactPiEdgesCancel(t *testing.T) {
	// Every horizontal edge jumps by exactly π; the shared edges must cancel.
	theta := grid.New(4, 4)
	for i := range 4 {
		for j := range 4 {
			if i%2 == 1 {
				theta.Set(i, j, math.Pi)
			}
		}
	}

	charges, err := CountTopologicalCharges(theta, WithPeriodic(true, true))
	require.NoError(t, err)
	assert.Equal(t, 0, charges.Total())
	assert.Equal(t, 0, charges.Len())
}

func TestChargesZeroValue(t *testing.T) {
	var c Charges

	assert.Equal(t, 0, c.At(3, 4))
	assert.Empty(t, c.Positive())
	assert.Empty(t, c.Negative())
	assert.True(t, c.Mask().IsEmpty())
	assert.Zero(t, c.Total())

	c, err := CountTopologicalCharges(grid.New(1, 1))
	require.Error(t, err)
	assert.Equal(t, 0, c.At(0, 0))
	assert.True(t, c.Mask().IsEmpty())
}

func TestCountRotationInvariant(t *testing.T) {
	f, err := VectorField(1, 1, 12, WithFieldTheta0(2.5))
	require.NoError(t, err)

	a, err := CountTopologicalCharges(f.Theta)
	require.NoError(t, err)
	b, err := CountTopologicalCharges(f.Theta, WithTheta0(1.3))
	require.NoError(t, err)

	assert.Equal(t, a.List, b.List)
	assert.Equal(t, 1, a.Total())
}

func TestCountDefectPairPeriodic(t *testing.T) {
	const nx = 20
	y := plaquetteCentre(9, nx)

	plus, err := VectorField(1, 1, nx, WithCenter(plaquetteCentre(5, nx), y))
	require.NoError(t, err)
	minus, err := VectorField(-1, 1, nx, WithCenter(plaquetteCentre(13, nx), y))
	require.NoError(t, err)

	pair, err := Superpose(plus, minus)
	require.NoError(t, err)
	assert.Equal(t, 0, pair.Charge())

	charges, err := CountTopologicalCharges(pair.Theta, WithPeriodic(true, true), WithMesh(pair.Mesh))
	require.NoError(t, err)

	assert.Equal(t, 0, charges.Total())
	require.Len(t, charges.Positive(), 1)
	require.Len(t, charges.Negative(), 1)

	p := charges.Positive()[0]
	assert.Equal(t, 5, p.I)
	assert.Equal(t, 9, p.J)
	assert.InDelta(t, plaquetteCentre(5, nx), p.X, 1e-12)
	assert.InDelta(t, y, p.Y, 1e-12)

	n := charges.Negative()[0]
	assert.Equal(t, 13, n.I)
	assert.Equal(t, -1, n.Value)

	mask := charges.Mask()
	assert.Equal(t, uint64(2), mask.GetCardinality())
	assert.True(t, mask.Contains(uint32(5*nx+9)))
}

func TestCountPeriodicTotalIsZero(t *testing.T) {
	rng := testutil.NewRNG(4711)
	theta := grid.Grid{Rows: 16, Cols: 16, Data: rng.RandomAngles(256)}

	charges, err := CountTopologicalCharges(theta, WithPeriodic(true, true))
	require.NoError(t, err)

	assert.Positive(t, charges.Len())
	assert.Equal(t, 0, charges.Total())
}

func TestCountOpenSkipsEdges(t *testing.T) {
	const n = 16
	rng := testutil.NewRNG(99)
	theta := grid.Grid{Rows: n, Cols: n, Data: rng.RandomAngles(n * n)}

	open, err := CountTopologicalCharges(theta)
	require.NoError(t, err)
	for _, q := range open.List {
		assert.Less(t, q.I, n-1)
		assert.Less(t, q.J, n-1)
	}

	xOnly, err := CountTopologicalCharges(theta, WithPeriodic(true, false))
	require.NoError(t, err)
	for _, q := range xOnly.List {
		assert.Less(t, q.J, n-1)
	}

	wrapped, err := CountTopologicalCharges(theta, WithPeriodic(true, true))
	require.NoError(t, err)
	seam := 0
	for _, q := range wrapped.List {
		if q.I == n-1 || q.J == n-1 {
			seam++
		}
	}
	assert.Positive(t, seam)
	assert.Equal(t, open.Len()+seam, wrapped.Len())
}

func TestCountInvalid(t *testing.T) {
	_, err := CountTopologicalCharges(grid.New(1, 5))
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	m, err := mesh.Cartesian(4, 1)
	require.NoError(t, err)
	_, err = CountTopologicalCharges(grid.New(3, 3), WithMesh(m))
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestSuperposeShapeMismatch(t *testing.T) {
	a, err := VectorField(1, 1, 4)
	require.NoError(t, err)
	b, err := VectorField(1, 1, 6)
	require.NoError(t, err)

	_, err = Superpose(a, b)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = Superpose()
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
		{5 * math.Pi, math.Pi},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.expected, WrapAngle(tt.in), 1e-9)
	}
}
