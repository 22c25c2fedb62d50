package dataio

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hupe1980/meshkit/blobstore"
	"github.com/hupe1980/meshkit/errs"
)

func localTarget(path string) (*blobstore.LocalStore, string) {
	return blobstore.NewLocalStore(filepath.Dir(path)), filepath.Base(path)
}

// ReadData reads the table at path.
func ReadData(path string, optFns ...Option) (Table, error) {
	store, name := localTarget(path)
	return load(context.Background(), store, name, path, optFns)
}

// WriteData writes the columns to path, replacing any existing file.
func WriteData(path string, cols ...[]float64) error {
	return WriteTable(path, Table(cols))
}

// WriteTable is WriteData with options.
func WriteTable(path string, t Table, optFns ...Option) error {
	store, name := localTarget(path)
	return save(context.Background(), store, name, path, t, optFns)
}

// ReadXYData reads a two-column table. An empty file yields empty slices.
func ReadXYData(path string, optFns ...Option) (x, y []float64, err error) {
	t, err := ReadData(path, optFns...)
	if err != nil {
		return nil, nil, err
	}
	return splitXY(path, t)
}

// WriteXYData writes x and y as a two-column table.
func WriteXYData(path string, x, y []float64, optFns ...Option) error {
	if err := errs.CheckSameLength("xy data", len(x), len(y)); err != nil {
		return err
	}
	return WriteTable(path, Table{x, y}, optFns...)
}

func splitXY(path string, t Table) ([]float64, []float64, error) {
	if t.NumCols() == 0 {
		// An empty point set is written as an empty file.
		return []float64{}, []float64{}, nil
	}
	if t.NumCols() != 2 {
		return nil, nil, fmt.Errorf("%w: %s: expected 2 columns, got %d", errs.ErrIO, path, t.NumCols())
	}
	return t[0], t[1], nil
}
