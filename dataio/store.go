package dataio

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hupe1980/meshkit/blobstore"
	"github.com/hupe1980/meshkit/errs"
	"github.com/hupe1980/meshkit/resource"
)

// Load reads the table stored under name.
func Load(ctx context.Context, store blobstore.Store, name string, optFns ...Option) (Table, error) {
	return load(ctx, store, name, name, optFns)
}

// Save writes t under name. The blob only appears once fully written.
func Save(ctx context.Context, store blobstore.Store, name string, t Table, optFns ...Option) error {
	return save(ctx, store, name, name, t, optFns)
}

func load(ctx context.Context, store blobstore.Store, name, display string, optFns []Option) (Table, error) {
	opts := applyOptions(name, optFns)

	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, errs.IO("open", display, err)
	}
	defer func() { _ = blob.Close() }()

	raw, err := blobstore.NewReader(ctx, blob)
	if err != nil {
		return nil, errs.IO("read", display, err)
	}
	defer func() { _ = raw.Close() }()

	var src io.Reader = raw
	if opts.controller != nil {
		src = resource.NewRateLimitedReader(ctx, raw, opts.controller)
	}

	r, err := newDecompressor(src, *opts.compression)
	if err != nil {
		return nil, errs.IO("decompress", display, err)
	}
	defer func() { _ = r.Close() }()

	t, err := Decode(r)
	if err != nil {
		var mre *MalformedRowError
		if errors.As(err, &mre) {
			mre.Path = display
			return nil, mre
		}
		return nil, fmt.Errorf("%s: %w", display, err)
	}
	return t, nil
}

func save(ctx context.Context, store blobstore.Store, name, display string, t Table, optFns []Option) (err error) {
	if err := t.Validate(); err != nil {
		return err
	}
	opts := applyOptions(name, optFns)

	w, err := store.Create(ctx, name)
	if err != nil {
		return errs.IO("create", display, err)
	}
	defer func() {
		if err != nil {
			_ = blobstore.Abort(w)
		}
	}()

	var dst io.Writer = w
	if opts.controller != nil {
		dst = resource.NewRateLimitedWriter(ctx, w, opts.controller)
	}

	cw, err := newCompressor(dst, *opts.compression, opts.zstdLevel)
	if err != nil {
		return errs.IO("compress", display, err)
	}
	if err := Encode(cw, t); err != nil {
		_ = cw.Close()
		return errs.IO("write", display, err)
	}
	if err := cw.Close(); err != nil {
		return errs.IO("write", display, err)
	}
	if err := w.Close(); err != nil {
		return errs.IO("close", display, err)
	}
	return nil
}

// LoadXY reads a two-column table stored under name.
func LoadXY(ctx context.Context, store blobstore.Store, name string, optFns ...Option) (x, y []float64, err error) {
	t, err := Load(ctx, store, name, optFns...)
	if err != nil {
		return nil, nil, err
	}
	return splitXY(name, t)
}

// SaveXY writes x and y as a two-column table under name.
func SaveXY(ctx context.Context, store blobstore.Store, name string, x, y []float64, optFns ...Option) error {
	if err := errs.CheckSameLength("xy data", len(x), len(y)); err != nil {
		return err
	}
	return Save(ctx, store, name, Table{x, y}, optFns...)
}
