package periodic

import (
	"math"
	"testing"

	"github.com/hupe1980/meshkit/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b, L  float64
		expected float64
	}{
		{"WrapShorter", 0.1, 9.9, 10, 0.2},
		{"Direct", 2, 5, 10, 3},
		{"Identical", 4, 4, 10, 0},
		{"HalfBox", 0, 5, 10, 5},
		{"OutsideBox", 21, -1, 10, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Distance(tt.a, tt.b, tt.L), 1e-12)
			assert.InDelta(t, tt.expected, Distance(tt.b, tt.a, tt.L), 1e-12)
		})
	}
}

func TestDisplacementSign(t *testing.T) {
	assert.InDelta(t, 0.2, Displacement(0.1, 9.9, 10), 1e-12)
	assert.InDelta(t, -0.2, Displacement(9.9, 0.1, 10), 1e-12)
}

func TestDistances(t *testing.T) {
	got, err := Distances([]float64{0.1, 2, 7}, []float64{9.9, 5, 1}, 10)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.2, 3, 4}, got, 1e-12)

	_, err = Distances([]float64{1}, []float64{1, 2}, 10)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = Distances([]float64{1}, []float64{1}, 0)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestDistance2D(t *testing.T) {
	assert.InDelta(t, math.Hypot(0.2, 0.3), Distance2D(0.1, 9.8, 9.9, 0.1, 10), 1e-12)
	assert.InDelta(t, 5.0, Distance2D(1, 1, 4, 5, 100), 1e-12)
}

func TestWrap(t *testing.T) {
	tests := []struct {
		x, L, expected float64
	}{
		{3, 10, 3},
		{-1, 10, 9},
		{25, 10, 5},
		{10, 10, 0},
		{-1e-17, 10, 0},
	}
	for _, tt := range tests {
		got := Wrap(tt.x, tt.L)
		assert.InDelta(t, tt.expected, got, 1e-12)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.Less(t, got, tt.L)
	}
}

func TestAperiodic(t *testing.T) {
	t.Run("Forward", func(t *testing.T) {
		got, err := Aperiodic([]float64{8, 9, 0, 1, 2}, 10)
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64{8, 9, 10, 11, 12}, got, 1e-12)
	})

	t.Run("Backward", func(t *testing.T) {
		got, err := Aperiodic([]float64{1, 0, 9, 8}, 10)
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64{1, 0, -1, -2}, got, 1e-12)
	})

	t.Run("InvertsWrap", func(t *testing.T) {
		const L = 3.0
		raw := make([]float64, 50)
		wrapped := make([]float64, len(raw))
		for i := range raw {
			raw[i] = 0.2 * float64(i)
			wrapped[i] = Wrap(raw[i], L)
		}

		got, err := Aperiodic(wrapped, L)
		require.NoError(t, err)
		assert.InDeltaSlice(t, raw, got, 1e-9)
	})

	t.Run("Angles", func(t *testing.T) {
		got, err := AperiodicAngle([]float64{3, -3})
		require.NoError(t, err)
		assert.InDelta(t, 2*math.Pi-3, got[1], 1e-12)
	})

	t.Run("Empty", func(t *testing.T) {
		got, err := Aperiodic(nil, 1)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("InvalidPeriod", func(t *testing.T) {
		_, err := Aperiodic([]float64{1}, -1)
		assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	})
}
