// Package grid provides a dense, row-major float64 matrix.
package grid

import (
	"slices"

	"github.com/hupe1980/meshkit/errs"
)

// Grid is a dense rows×cols matrix stored in row-major order.
type Grid struct {
	Rows int
	Cols int
	Data []float64
}

// New allocates a zero-filled rows×cols grid.
func New(rows, cols int) Grid {
	return Grid{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}
}

// FromRows builds a grid from a slice of equal-length rows.
func FromRows(rows [][]float64) (Grid, error) {
	if len(rows) == 0 {
		return Grid{}, nil
	}
	cols := len(rows[0])
	g := New(len(rows), cols)
	for i, row := range rows {
		if err := errs.CheckSameLength("grid row", cols, len(row)); err != nil {
			return Grid{}, err
		}
		copy(g.Data[i*cols:(i+1)*cols], row)
	}
	return g, nil
}

// Fill returns a rows×cols grid with g(i, j) = f(i, j).
func Fill(rows, cols int, f func(i, j int) float64) Grid {
	g := New(rows, cols)
	for i := range rows {
		row := g.Data[i*cols : (i+1)*cols]
		for j := range row {
			row[j] = f(i, j)
		}
	}
	return g
}

// At returns the element at row i, column j.
func (g Grid) At(i, j int) float64 { return g.Data[i*g.Cols+j] }

// Set stores v at row i, column j.
func (g Grid) Set(i, j int, v float64) { g.Data[i*g.Cols+j] = v }

// Row returns row i as a slice aliasing the grid storage.
func (g Grid) Row(i int) []float64 { return g.Data[i*g.Cols : (i+1)*g.Cols] }

// Shape returns (rows, cols).
func (g Grid) Shape() (int, int) { return g.Rows, g.Cols }

// Len returns the number of elements.
func (g Grid) Len() int { return len(g.Data) }

// SameShape reports whether g and o have identical dimensions.
func (g Grid) SameShape(o Grid) bool { return g.Rows == o.Rows && g.Cols == o.Cols }

// Clone returns a deep copy of g.
func (g Grid) Clone() Grid {
	return Grid{Rows: g.Rows, Cols: g.Cols, Data: slices.Clone(g.Data)}
}

// Map returns a new grid with f applied to every element.
func (g Grid) Map(f func(v float64) float64) Grid {
	out := New(g.Rows, g.Cols)
	for k, v := range g.Data {
		out.Data[k] = f(v)
	}
	return out
}

// CheckShape returns an ErrInvalidArgument error unless a and b agree in shape.
func CheckShape(what string, a, b Grid) error {
	if err := errs.CheckSameLength(what+" rows", a.Rows, b.Rows); err != nil {
		return err
	}
	return errs.CheckSameLength(what+" cols", a.Cols, b.Cols)
}
