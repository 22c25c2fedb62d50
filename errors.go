package meshkit

import (
	"errors"

	"github.com/hupe1980/meshkit/dataio"
	"github.com/hupe1980/meshkit/errs"
)

var (
	// ErrInvalidArgument is returned for shape mismatches, degenerate sizes
	// and non-positive periods.
	ErrInvalidArgument = errs.ErrInvalidArgument

	// ErrIO is returned for unreadable or missing files and malformed tables.
	ErrIO = errs.ErrIO

	// ErrNoStore is returned by table methods of a Kit built without WithStore.
	ErrNoStore = errors.New("meshkit: no blob store configured")
)

type (
	// ShapeMismatchError indicates inputs whose lengths or shapes disagree.
	ShapeMismatchError = errs.ShapeMismatchError

	// InvalidValueError indicates a parameter outside its allowed domain.
	InvalidValueError = errs.InvalidValueError

	// MalformedRowError reports an unparsable table row.
	MalformedRowError = dataio.MalformedRowError
)
