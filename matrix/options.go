// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for containers and kernels.
//   - WithBasis / WithLayout pick the concrete tags of a new container.
//   - WithAllocator picks the heap allocator of Dynamic matrices.
//   - WithPivotHook observes every pivot chosen by Gauss–Jordan inversion.
//
// WithX constructors panic on nonsensical values (programmer error).

package matrix

import (
	"github.com/katalvlaran/lvlmath/scalar"
	"github.com/katalvlaran/lvlmath/storage"
	"github.com/katalvlaran/lvlmath/tags"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultBasis is the basis of containers built without WithBasis.
	DefaultBasis = tags.ColBasis

	// DefaultLayout is the layout of containers built without WithLayout.
	DefaultLayout = tags.RowMajor
)

// PivotHook is called once per Gauss–Jordan elimination step with the
// zero-based step and the (row, col) of the chosen pivot.
type PivotHook func(step, row, col int)

// Option configures containers and kernels.
type Option func(*options)

type options struct {
	basis  tags.Basis
	layout tags.Layout
	alloc  storage.Named
	hook   PivotHook
}

// WithBasis selects the basis tag. EitherBasis is rejected: containers
// carry concrete tags only.
func WithBasis(b tags.Basis) Option {
	if b != tags.ColBasis && b != tags.RowBasis {
		panic("matrix: WithBasis requires ColBasis or RowBasis")
	}

	return func(o *options) { o.basis = b }
}

// WithLayout selects the layout tag.
func WithLayout(l tags.Layout) Option {
	if l != tags.RowMajor && l != tags.ColMajor {
		panic("matrix: WithLayout requires RowMajor or ColMajor")
	}

	return func(o *options) { o.layout = l }
}

// WithAllocator selects the allocator Dynamic storage is drawn from. Its
// element type must match the matrix (ErrAllocatorType otherwise).
func WithAllocator(a storage.Named) Option {
	if a == nil {
		panic("matrix: WithAllocator(nil)")
	}

	return func(o *options) { o.alloc = a }
}

// WithPivotHook installs h for Inverse. It only fires on the Gauss–Jordan
// path (matrices larger than 4×4).
func WithPivotHook(h PivotHook) Option {
	if h == nil {
		panic("matrix: WithPivotHook(nil)")
	}

	return func(o *options) { o.hook = h }
}

func gatherOptions(opts []Option) options {
	o := options{basis: DefaultBasis, layout: DefaultLayout}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// allocatorOf resolves the configured allocator for element type E.
func allocatorOf[E scalar.Float](o options) (storage.Allocator[E], error) {
	if o.alloc == nil {
		return storage.DefaultAllocator[E]{}, nil
	}
	a, ok := o.alloc.(storage.Allocator[E])
	if !ok {
		return nil, ErrAllocatorType
	}

	return a, nil
}
