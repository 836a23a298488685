// SPDX-License-Identifier: MIT

// Package tags declares the capability classifiers attached to every
// expression in lvlmath and the promotion rules that combine them.
//
// Purpose:
//   - Size tags say whether an element count is Fixed (known when the program
//     is compiled), Dynamic (known at run time) or Either (not pinned down yet).
//   - Basis tags say whether a matrix is read as row vectors or column vectors.
//   - Layout tags say whether storage is row-major or column-major.
//   - Quaternion tags say where the real part lives and which cross product
//     convention a Hamilton product uses.
//
// Tags are plain comparable values; they carry no data and never allocate.
// The type-level half of the classification (compile-time extents) lives in
// dim.go as the Dim marker types.
package tags

// Size classifies how the element count of an expression is determined.
type Size uint8

const (
	// Fixed marks an extent fixed by a type parameter.
	Fixed Size = iota
	// Dynamic marks an extent only known at run time.
	Dynamic
	// Either is the wildcard used by nodes whose shape is not pinned down yet.
	Either
)

// String implements fmt.Stringer.
func (s Size) String() string {
	switch s {
	case Fixed:
		return "fixed"
	case Dynamic:
		return "dynamic"
	case Either:
		return "either"
	default:
		return "size(?)"
	}
}

// Basis classifies how a matrix is decomposed into basis vectors.
// The zero value is ColBasis, the library default.
type Basis uint8

const (
	// ColBasis reads basis vectors from columns.
	ColBasis Basis = iota
	// RowBasis reads basis vectors from rows.
	RowBasis
	// EitherBasis is the basis wildcard.
	EitherBasis
)

// String implements fmt.Stringer.
func (b Basis) String() string {
	switch b {
	case ColBasis:
		return "col_basis"
	case RowBasis:
		return "row_basis"
	case EitherBasis:
		return "any_basis"
	default:
		return "basis(?)"
	}
}

// Layout classifies physical element ordering of a matrix.
// The zero value is RowMajor, the library default.
type Layout uint8

const (
	// RowMajor stores element (i,j) at offset i*cols + j.
	RowMajor Layout = iota
	// ColMajor stores element (i,j) at offset j*rows + i.
	ColMajor
	// EitherLayout is the layout wildcard.
	EitherLayout
)

// String implements fmt.Stringer.
func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "row_major"
	case ColMajor:
		return "col_major"
	case EitherLayout:
		return "any_major"
	default:
		return "layout(?)"
	}
}

// Offset returns the flat storage offset of (i, j) in a rows×cols block.
// EitherLayout has no storage, it falls back to row-major.
func (l Layout) Offset(i, j, rows, cols int) int {
	if l == ColMajor {
		return j*rows + i
	}

	return i*cols + j
}
