package dataio

import "github.com/hupe1980/meshkit/resource"

// DefaultZstdLevel is the zstd level used when none is given.
const DefaultZstdLevel = 3

type options struct {
	compression *Compression
	zstdLevel   int
	controller  *resource.Controller
}

// Option configures table I/O.
type Option func(*options)

// WithCompression overrides the compression implied by the file extension.
func WithCompression(c Compression) Option {
	return func(o *options) { o.compression = &c }
}

// WithZstdLevel sets the zstd level (1-22) for writes.
func WithZstdLevel(level int) Option {
	return func(o *options) { o.zstdLevel = level }
}

// WithController throttles the raw byte stream through rc's IO budget.
func WithController(rc *resource.Controller) Option {
	return func(o *options) { o.controller = rc }
}

func applyOptions(name string, optFns []Option) options {
	opts := options{zstdLevel: DefaultZstdLevel}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.compression == nil {
		c := CompressionFor(name)
		opts.compression = &c
	}
	return opts
}
