// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvlmath/scalar"
	"github.com/katalvlaran/lvlmath/tags"
)

// Inverse returns the inverse of m in a new container.
//
// Implementation:
//   - Stage 1: reject non-square input (sizecheck.ErrNonSquare).
//   - Stage 2: materialize m (Eval) and invert the copy in place.
//
// Behavior highlights:
//   - 1×1 to 4×4 use closed-form cofactor formulas; larger matrices use
//     full-pivot Gauss–Jordan elimination. Dynamic matrices follow the same
//     dispatch, decided by their run-time size.
//   - No singularity guard: singular input yields non-finite elements.
//   - m is never written; the result has the storage selected for m.
//
// Inputs:
//   - m: a square matrix expression (non-nil).
//   - opts: WithPivotHook observes each Gauss–Jordan pivot; it is not
//     called on the closed-form path.
//
// Returns:
//   - Writable[E]: a new container holding m⁻¹.
//   - error: non-nil only on invalid input, wrapped with "Inverse".
//
// Errors:
//   - ErrNilExpr (m is nil).
//   - sizecheck.ErrNonSquare (m is not square; checked in every build).
//
// Complexity:
//   - Time O(n³). Space O(n²) for the result, plus an O(n²) work buffer
//     beyond 8×8.
func Inverse[E scalar.Float](m Expr[E], opts ...Option) (Writable[E], error) {
	// Stage 1: validate
	if m == nil {
		return nil, matrixErrorf(opInverse, ErrNilExpr)
	}
	if err := requireSquare(opInverse, m); err != nil {
		return nil, err
	}

	// Stage 2: invert a private copy
	out := Eval(m)
	if err := invertInPlace(opInverse, out, gatherOptions(opts)); err != nil {
		return nil, err
	}

	return out, nil
}

// InverseFixed returns the inverse of a square fixed matrix; squareness is
// guaranteed by the type, so it cannot fail.
func InverseFixed[E scalar.Float, N tags.Dim](m *Fixed[E, N, N], opts ...Option) *Fixed[E, N, N] {
	out := m.Clone()
	_ = invertInPlace[E](opInverse, out, gatherOptions(opts))

	return out
}

// invertInPlace overwrites m with its inverse.
//
// Implementation:
//   - Stage 1: square check before any write.
//   - Stage 2: gather m into a row-major work buffer (stack-backed up to
//     tags.MaxFixedElems elements).
//   - Stage 3: dispatch on n and scatter the result back.
func invertInPlace[E scalar.Float](tag string, m Writable[E], o options) error {
	// Stage 1: validate
	if err := requireSquare[E](tag, m); err != nil {
		return err
	}

	// Stage 2: gather
	n := m.Rows()
	var stack [tags.MaxFixedElems]E
	var a []E
	if n*n <= len(stack) {
		a = stack[:n*n]
	} else {
		a = make([]E, n*n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a[i*n+j] = m.Get(i, j)
		}
	}

	// Stage 3: invert and scatter
	invertRowMajor(a, n, o.hook)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, a[i*n+j])
		}
	}

	return nil
}

// invertRowMajor inverts the n×n row-major matrix a in place.
func invertRowMajor[E scalar.Float](a []E, n int, hook PivotHook) {
	switch n {
	case 0:
	case 1:
		a[0] = 1 / a[0]
	case 2:
		inverse2(a)
	case 3:
		inverse3(a)
	case 4:
		inverse4(a)
	default:
		gaussJordan(a, n, hook)
	}
}

func inverse2[E scalar.Float](a []E) {
	m00, m01, m10, m11 := a[0], a[1], a[2], a[3]
	d := 1 / (m00*m11 - m01*m10)
	a[0], a[1] = m11*d, -m01*d
	a[2], a[3] = -m10*d, m00*d
}

func inverse3[E scalar.Float](a []E) {
	m00, m01, m02 := a[0], a[1], a[2]
	m10, m11, m12 := a[3], a[4], a[5]
	m20, m21, m22 := a[6], a[7], a[8]

	// cofactors of the first row
	c00 := m11*m22 - m12*m21
	c01 := m12*m20 - m10*m22
	c02 := m10*m21 - m11*m20
	d := 1 / (m00*c00 + m01*c01 + m02*c02)

	a[0] = c00 * d
	a[1] = (m02*m21 - m01*m22) * d
	a[2] = (m01*m12 - m02*m11) * d
	a[3] = c01 * d
	a[4] = (m00*m22 - m02*m20) * d
	a[5] = (m02*m10 - m00*m12) * d
	a[6] = c02 * d
	a[7] = (m01*m20 - m00*m21) * d
	a[8] = (m00*m11 - m01*m10) * d
}

// inverse4 expands along 2×2 minors of the upper (s*) and lower (c*) row
// pairs.
func inverse4[E scalar.Float](a []E) {
	m00, m01, m02, m03 := a[0], a[1], a[2], a[3]
	m10, m11, m12, m13 := a[4], a[5], a[6], a[7]
	m20, m21, m22, m23 := a[8], a[9], a[10], a[11]
	m30, m31, m32, m33 := a[12], a[13], a[14], a[15]

	s0 := m00*m11 - m10*m01
	s1 := m00*m12 - m10*m02
	s2 := m00*m13 - m10*m03
	s3 := m01*m12 - m11*m02
	s4 := m01*m13 - m11*m03
	s5 := m02*m13 - m12*m03

	c5 := m22*m33 - m32*m23
	c4 := m21*m33 - m31*m23
	c3 := m21*m32 - m31*m22
	c2 := m20*m33 - m30*m23
	c1 := m20*m32 - m30*m22
	c0 := m20*m31 - m30*m21

	d := 1 / (s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0)

	a[0] = (m11*c5 - m12*c4 + m13*c3) * d
	a[1] = (-m01*c5 + m02*c4 - m03*c3) * d
	a[2] = (m31*s5 - m32*s4 + m33*s3) * d
	a[3] = (-m21*s5 + m22*s4 - m23*s3) * d

	a[4] = (-m10*c5 + m12*c2 - m13*c1) * d
	a[5] = (m00*c5 - m02*c2 + m03*c1) * d
	a[6] = (-m30*s5 + m32*s2 - m33*s1) * d
	a[7] = (m20*s5 - m22*s2 + m23*s1) * d

	a[8] = (m10*c4 - m11*c2 + m13*c0) * d
	a[9] = (-m00*c4 + m01*c2 - m03*c0) * d
	a[10] = (m30*s4 - m31*s2 + m33*s0) * d
	a[11] = (-m20*s4 + m21*s2 - m23*s0) * d

	a[12] = (-m10*c3 + m11*c1 - m12*c0) * d
	a[13] = (m00*c3 - m01*c1 + m02*c0) * d
	a[14] = (-m30*s3 + m31*s1 - m32*s0) * d
	a[15] = (m20*s3 - m21*s1 + m22*s0) * d
}

// gaussJordan inverts the n×n row-major matrix a in place by full-pivot
// Gauss–Jordan elimination.
//
// Implementation:
//   - Stage 1: carve the pivot bookkeeping (pivoted flags, pivot row and
//     pivot column per step) from a stack arena, or the heap beyond
//     tags.MaxFixedDim.
//   - Stage 2: for each step pick the largest |a(r,c)| over unpivoted rows
//     and columns; the first candidate found wins ties (strict >).
//   - Stage 3: move the pivot onto the diagonal by a row swap, normalize
//     its row, eliminate its column from every other row.
//   - Stage 4: undo the column permutation in reverse discovery order.
//
// Notes:
//   - The pivot magnitude is not compared against an epsilon: a singular
//     matrix divides by zero and yields non-finite elements.
func gaussJordan[E scalar.Float](a []E, n int, hook PivotHook) {
	// Stage 1: index arena
	var arena [3 * tags.MaxFixedDim]int
	var idx []int
	if 3*n <= len(arena) {
		idx = arena[:3*n]
	} else {
		idx = make([]int, 3*n)
	}
	pivoted, pivotRow, pivotCol := idx[:n], idx[n:2*n], idx[2*n:]

	for step := 0; step < n; step++ {
		// Stage 2: full pivot search
		prow, pcol := -1, -1
		var big E
		for r := 0; r < n; r++ {
			if pivoted[r] != 0 {
				continue
			}
			for c := 0; c < n; c++ {
				if pivoted[c] != 0 {
					continue
				}
				if v := scalar.Abs(a[r*n+c]); prow < 0 || v > big {
					big, prow, pcol = v, r, c
				}
			}
		}
		pivoted[pcol] = 1
		pivotRow[step], pivotCol[step] = prow, pcol
		if hook != nil {
			hook(step, prow, pcol)
		}

		// Stage 3: swap, normalize, eliminate
		if prow != pcol {
			for c := 0; c < n; c++ {
				a[prow*n+c], a[pcol*n+c] = a[pcol*n+c], a[prow*n+c]
			}
		}
		p := a[pcol*n : pcol*n+n]
		inv := 1 / p[pcol]
		p[pcol] = 1
		for c := range p {
			p[c] *= inv
		}
		for r := 0; r < n; r++ {
			if r == pcol {
				continue
			}
			row := a[r*n : r*n+n]
			f := row[pcol]
			row[pcol] = 0
			for c := range row {
				row[c] -= p[c] * f
			}
		}
	}

	// Stage 4: column un-swap, last step first
	for step := n - 1; step >= 0; step-- {
		r, c := pivotRow[step], pivotCol[step]
		if r == c {
			continue
		}
		for k := 0; k < n; k++ {
			a[k*n+r], a[k*n+c] = a[k*n+c], a[k*n+r]
		}
	}
}
