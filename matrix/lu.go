// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvlmath/scalar"
	"github.com/katalvlaran/lvlmath/sizecheck"
	"github.com/katalvlaran/lvlmath/vector"
)

// LU returns the Doolittle decomposition of a square m without pivoting,
// packed in one matrix: the strict lower triangle holds L (unit diagonal
// implied) and the upper triangle holds U.
//
// Implementation:
//   - Stage 1: validate (non-nil, square).
//   - Stage 2: materialize a copy and eliminate column by column.
//
// A zero pivot divides by zero; use LUPivot for general input.
//
// Complexity: O(n³).
func LU[E scalar.Float](m Expr[E]) (Writable[E], error) {
	// Stage 1: validate
	if m == nil {
		return nil, matrixErrorf(opLU, ErrNilExpr)
	}
	if err := requireSquare(opLU, m); err != nil {
		return nil, err
	}

	// Stage 2: eliminate in place
	lu := Eval(m)
	n := lu.Rows()
	for k := 0; k < n; k++ {
		eliminate(lu, k)
	}

	return lu, nil
}

// eliminate performs Doolittle step k on a.
func eliminate[E scalar.Float](a Writable[E], k int) {
	n := a.Rows()
	pivot := a.Get(k, k)
	for i := k + 1; i < n; i++ {
		l := a.Get(i, k) / pivot
		a.Set(i, k, l)
		for j := k + 1; j < n; j++ {
			a.Set(i, j, a.Get(i, j)-l*a.Get(k, j))
		}
	}
}

// PivotedLU is a partially pivoted LU decomposition: row i of LU is row
// Order[i] of the input. Sign is the permutation parity (+1 or -1), or 0
// when a zero column was met (the input is singular).
type PivotedLU[E scalar.Float] struct {
	LU    Writable[E]
	Order []int
	Sign  int
}

// LUPivot returns the LU decomposition of a square m with partial (row)
// pivoting. Each step swaps in the row holding the largest magnitude of the
// pivot column; earlier rows win ties.
//
// Implementation:
//   - Stage 1: reject nil and non-square input.
//   - Stage 2: materialize m and reduce the copy column by column, swapping
//     rows and recording the permutation and its parity.
//
// Inputs:
//   - m: a square matrix expression (non-nil). m itself is not modified.
//
// Returns:
//   - *PivotedLU[E]: packed L (unit diagonal, below) and U (on and above),
//     the row order and Sign (the permutation parity, or 0 for singular
//     input).
//   - error: non-nil only on invalid input, wrapped with "LUPivot".
//
// Errors:
//   - ErrNilExpr (m is nil).
//   - sizecheck.ErrNonSquare (m is not square; checked in every build).
//
// Notes:
//   - A zero pivot column is skipped and Sign set to 0; no error is
//     returned. U then has a zero on its diagonal.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the packed factors.
func LUPivot[E scalar.Float](m Expr[E]) (*PivotedLU[E], error) {
	if m == nil {
		return nil, matrixErrorf(opLUPivot, ErrNilExpr)
	}
	if err := requireSquare(opLUPivot, m); err != nil {
		return nil, err
	}

	lu := Eval(m)
	n := lu.Rows()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sign := 1
	for k := 0; k < n; k++ {
		p, big := k, scalar.Abs(lu.Get(k, k))
		for i := k + 1; i < n; i++ {
			if v := scalar.Abs(lu.Get(i, k)); v > big {
				p, big = i, v
			}
		}
		if big == 0 {
			sign = 0

			continue
		}
		if p != k {
			for j := 0; j < n; j++ {
				a, b := lu.Get(k, j), lu.Get(p, j)
				lu.Set(k, j, b)
				lu.Set(p, j, a)
			}
			order[k], order[p] = order[p], order[k]
			sign = -sign
		}
		eliminate(lu, k)
	}

	return &PivotedLU[E]{LU: lu, Order: order, Sign: sign}, nil
}

// Determinant returns Sign times the product of the U diagonal.
func (p *PivotedLU[E]) Determinant() E {
	d := E(p.Sign)
	for k := 0; k < p.LU.Rows(); k++ {
		d *= p.LU.Get(k, k)
	}

	return d
}

// Solve is LUPivotSolve(p, b).
func (p *PivotedLU[E]) Solve(b vector.Expr[E]) (vector.Writable[E], error) {
	return LUPivotSolve(p, b)
}

// LUSolve solves A·x = b given the packed decomposition lu = LU(A).
func LUSolve[E scalar.Float](lu Expr[E], b vector.Expr[E]) (vector.Writable[E], error) {
	if lu == nil || b == nil {
		return nil, matrixErrorf(opLUSolve, ErrNilExpr)
	}
	if err := requireSquare(opLUSolve, lu); err != nil {
		return nil, err
	}
	if err := sizecheck.CheckInnerSizeMatVec(lu, b); err != nil {
		return nil, matrixErrorf(opLUSolve, err)
	}
	x := vector.Eval(b)
	substitute(lu, x)

	return x, nil
}

// LUPivotSolve solves A·x = b given p = LUPivot(A).
func LUPivotSolve[E scalar.Float](p *PivotedLU[E], b vector.Expr[E]) (vector.Writable[E], error) {
	if p == nil || b == nil {
		return nil, matrixErrorf(opLUSolve, ErrNilExpr)
	}
	if err := sizecheck.CheckInnerSizeMatVec(p.LU, b); err != nil {
		return nil, matrixErrorf(opLUSolve, err)
	}
	x := vector.Eval(b)
	for i, src := range p.Order {
		x.Set(i, b.Get(src))
	}
	substitute(p.LU, x)

	return x, nil
}

// substitute overwrites x (holding the right-hand side) with the solution
// of L·U·x = y: forward substitution with unit L, then back substitution
// with U.
func substitute[E scalar.Float](lu Expr[E], x vector.Writable[E]) {
	n := lu.Rows()
	for i := 1; i < n; i++ {
		s := x.Get(i)
		for k := 0; k < i; k++ {
			s -= lu.Get(i, k) * x.Get(k)
		}
		x.Set(i, s)
	}
	for i := n - 1; i >= 0; i-- {
		s := x.Get(i)
		for k := i + 1; k < n; k++ {
			s -= lu.Get(i, k) * x.Get(k)
		}
		x.Set(i, s/lu.Get(i, i))
	}
}
