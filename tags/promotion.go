// SPDX-License-Identifier: MIT

package tags

import "fmt"

// promoteErrorf wraps ErrTagConflict with the two offending tags.
func promoteErrorf(axis string, a, b fmt.Stringer) error {
	return fmt.Errorf("%s(%s, %s): %w", axis, a, b, ErrTagConflict)
}

// PromoteSize returns the size tag describing an expression built from
// operands tagged a and b.
//
// Rules:
//   - Either absorbs: Either with anything yields Either.
//   - Fixed with Fixed yields Fixed.
//   - Anything else (at least one Dynamic) yields Dynamic.
//
// Complexity: O(1).
func PromoteSize(a, b Size) Size {
	switch {
	case a == Either || b == Either:
		return Either
	case a == Fixed && b == Fixed:
		return Fixed
	default:
		return Dynamic
	}
}

// PromoteBasis returns the basis tag of a combined expression.
// EitherBasis absorbs, equal tags are kept, and two different concrete
// bases yield ErrTagConflict instead of being resolved to a default.
func PromoteBasis(a, b Basis) (Basis, error) {
	switch {
	case a == EitherBasis || b == EitherBasis:
		return EitherBasis, nil
	case a == b:
		return a, nil
	default:
		return EitherBasis, promoteErrorf("PromoteBasis", a, b)
	}
}

// PromoteLayout returns the layout tag of a combined expression, with the
// same rule shape as PromoteBasis.
func PromoteLayout(a, b Layout) (Layout, error) {
	switch {
	case a == EitherLayout || b == EitherLayout:
		return EitherLayout, nil
	case a == b:
		return a, nil
	default:
		return EitherLayout, promoteErrorf("PromoteLayout", a, b)
	}
}

// MustPromoteBasis is PromoteBasis for callers that already proved both
// tags compatible. It panics on conflict.
func MustPromoteBasis(a, b Basis) Basis {
	t, err := PromoteBasis(a, b)
	if err != nil {
		panic(err)
	}

	return t
}

// MustPromoteLayout is PromoteLayout for callers that already proved both
// tags compatible. It panics on conflict.
func MustPromoteLayout(a, b Layout) Layout {
	t, err := PromoteLayout(a, b)
	if err != nil {
		panic(err)
	}

	return t
}
