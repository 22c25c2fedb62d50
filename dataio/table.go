package dataio

import (
	"fmt"

	"github.com/hupe1980/meshkit/errs"
)

// Table is a column-major numeric table.
type Table [][]float64

// NumCols returns the number of columns.
func (t Table) NumCols() int { return len(t) }

// NumRows returns the number of rows, or 0 for an empty table.
func (t Table) NumRows() int {
	if len(t) == 0 {
		return 0
	}
	return len(t[0])
}

// Validate reports ragged columns.
func (t Table) Validate() error {
	for c := range t {
		if err := errs.CheckSameLength(fmt.Sprintf("column %d", c), t.NumRows(), len(t[c])); err != nil {
			return err
		}
	}
	return nil
}

// MalformedRowError reports a row that cannot be parsed or whose column
// count differs from the first row.
type MalformedRowError struct {
	Path     string
	Line     int
	Expected int
	Actual   int
	Err      error
}

func (e *MalformedRowError) Error() string {
	where := fmt.Sprintf("line %d", e.Line)
	if e.Path != "" {
		where = e.Path + ":" + where
	}
	if e.Err != nil {
		return fmt.Sprintf("malformed row at %s: %v", where, e.Err)
	}
	return fmt.Sprintf("malformed row at %s: expected %d columns, got %d", where, e.Expected, e.Actual)
}

// Is reports errs.ErrIO.
func (e *MalformedRowError) Is(target error) bool { return target == errs.ErrIO }

func (e *MalformedRowError) Unwrap() error { return e.Err }
