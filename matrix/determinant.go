// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvlmath/scalar"
	"github.com/katalvlaran/lvlmath/tags"
)

// Determinant returns det(m). Sizes up to 4×4 use cofactor expansion;
// larger matrices use LUPivot (sign times the product of the U diagonal).
// A 0×0 matrix has determinant 1.
func Determinant[E scalar.Float](m Expr[E]) (E, error) {
	if m == nil {
		return 0, matrixErrorf(opDeterminant, ErrNilExpr)
	}
	if err := requireSquare(opDeterminant, m); err != nil {
		return 0, err
	}

	switch m.Rows() {
	case 0:
		return 1, nil
	case 1:
		return m.Get(0, 0), nil
	case 2:
		return det2(m), nil
	case 3:
		return det3(m), nil
	case 4:
		return det4(m), nil
	}

	p, err := LUPivot(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return p.Determinant(), nil
}

func det2[E scalar.Float](m Expr[E]) E {
	return m.Get(0, 0)*m.Get(1, 1) - m.Get(0, 1)*m.Get(1, 0)
}

func det3[E scalar.Float](m Expr[E]) E {
	return m.Get(0, 0)*(m.Get(1, 1)*m.Get(2, 2)-m.Get(1, 2)*m.Get(2, 1)) +
		m.Get(0, 1)*(m.Get(1, 2)*m.Get(2, 0)-m.Get(1, 0)*m.Get(2, 2)) +
		m.Get(0, 2)*(m.Get(1, 0)*m.Get(2, 1)-m.Get(1, 1)*m.Get(2, 0))
}

func det4[E scalar.Float](m Expr[E]) E {
	s0 := m.Get(0, 0)*m.Get(1, 1) - m.Get(1, 0)*m.Get(0, 1)
	s1 := m.Get(0, 0)*m.Get(1, 2) - m.Get(1, 0)*m.Get(0, 2)
	s2 := m.Get(0, 0)*m.Get(1, 3) - m.Get(1, 0)*m.Get(0, 3)
	s3 := m.Get(0, 1)*m.Get(1, 2) - m.Get(1, 1)*m.Get(0, 2)
	s4 := m.Get(0, 1)*m.Get(1, 3) - m.Get(1, 1)*m.Get(0, 3)
	s5 := m.Get(0, 2)*m.Get(1, 3) - m.Get(1, 2)*m.Get(0, 3)

	c5 := m.Get(2, 2)*m.Get(3, 3) - m.Get(3, 2)*m.Get(2, 3)
	c4 := m.Get(2, 1)*m.Get(3, 3) - m.Get(3, 1)*m.Get(2, 3)
	c3 := m.Get(2, 1)*m.Get(3, 2) - m.Get(3, 1)*m.Get(2, 2)
	c2 := m.Get(2, 0)*m.Get(3, 3) - m.Get(3, 0)*m.Get(2, 3)
	c1 := m.Get(2, 0)*m.Get(3, 2) - m.Get(3, 0)*m.Get(2, 2)
	c0 := m.Get(2, 0)*m.Get(3, 1) - m.Get(3, 0)*m.Get(2, 1)

	return s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
}

// Trace returns the sum of the main diagonal of a square m.
func Trace[E scalar.Float](m Expr[E]) (E, error) {
	if m == nil {
		return 0, matrixErrorf(opTrace, ErrNilExpr)
	}
	if err := requireSquare(opTrace, m); err != nil {
		return 0, err
	}
	var sum E
	for k := 0; k < m.Rows(); k++ {
		sum += m.Get(k, k)
	}

	return sum, nil
}

// TransposeFixed returns the transpose of a fixed matrix as a new fixed
// matrix of the swapped type.
func TransposeFixed[E scalar.Float, R, C tags.Dim](m *Fixed[E, R, C]) *Fixed[E, C, R] {
	out := &Fixed[E, C, R]{basis: m.basis, layout: m.layout}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			out.Set(j, i, m.Get(i, j))
		}
	}

	return out
}
