// SPDX-License-Identifier: MIT
package shortest

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvsearch/matrix"
)

// Options configures result storage and diagnostics of a solve.
type Options struct {
	Storage matrix.Storage // result matrix storage
	Order   matrix.Order   // element layout when Storage is dense
	Logger  *zap.Logger    // never nil after NewOptions
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns dense row-major storage and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Storage: matrix.DenseStorage,
		Order:   matrix.DefaultOrder,
		Logger:  zap.NewNop(),
	}
}

// NewOptions applies opts over DefaultOptions.
func NewOptions(opts ...Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithStorage selects dense or sparse result storage.
// It panics on an unknown storage kind.
func WithStorage(s matrix.Storage) Option {
	if s != matrix.DenseStorage && s != matrix.SparseStorage {
		panic(fmt.Errorf("WithStorage(%v): %w", s, matrix.ErrUnknownStorage))
	}

	return func(o *Options) { o.Storage = s }
}

// WithOrder selects the dense element layout. It has no effect on sparse storage.
// It panics on an unknown order.
func WithOrder(ord matrix.Order) Option {
	if ord != matrix.RowMajor && ord != matrix.ColMajor {
		panic(fmt.Errorf("WithOrder(%v): %w", ord, matrix.ErrUnknownOrder))
	}

	return func(o *Options) { o.Order = ord }
}

// WithLogger routes solver diagnostics to l. It panics if l is nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(ErrNilLogger)
	}

	return func(o *Options) { o.Logger = l }
}
