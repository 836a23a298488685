// SPDX-License-Identifier: MIT

package quaternion

import (
	"github.com/katalvlaran/lvlmath/scalar"
	"github.com/katalvlaran/lvlmath/tags"
	"github.com/katalvlaran/lvlmath/vector"
)

// Eval materializes q into a new Quaternion with q's order and cross tags.
func Eval[E scalar.Float](q Expr[E]) *Quaternion[E] {
	out := &Quaternion[E]{order: q.Order(), cross: q.Cross()}
	for i := 0; i < Size; i++ {
		out.data[i] = q.Get(i)
	}

	return out
}

// Mul returns the Hamilton product a*b:
//
//	w = w1*w2 - v1·v2
//	v = w1*v2 + w2*v1 + v1×v2   (PositiveCross)
//	v = w1*v2 + w2*v1 + v2×v1   (NegativeCross)
//
// Operands must agree on Order and Cross (tags.ErrTagConflict).
func Mul[E scalar.Float](a, b Expr[E]) (*Quaternion[E], error) {
	if a == nil || b == nil {
		return nil, quaternionErrorf(opMul, ErrNilExpr)
	}
	order, err := tags.PromoteOrder(a.Order(), b.Order())
	if err != nil {
		return nil, quaternionErrorf(opMul, err)
	}
	cross, err := tags.PromoteCross(a.Cross(), b.Cross())
	if err != nil {
		return nil, quaternionErrorf(opMul, err)
	}

	w1, x1, y1, z1 := parts(a)
	w2, x2, y2, z2 := parts(b)
	cx, cy, cz := y1*z2-z1*y2, z1*x2-x1*z2, x1*y2-y1*x2
	if cross == tags.NegativeCross {
		cx, cy, cz = -cx, -cy, -cz
	}

	out := &Quaternion[E]{order: order, cross: cross}
	setParts[E](out,
		w1*w2-(x1*x2+y1*y2+z1*z2),
		w1*x2+w2*x1+cx,
		w1*y2+w2*y1+cy,
		w1*z2+w2*z1+cz,
	)

	return out, nil
}

// Dot returns the four-dimensional dot product, matched by role.
func Dot[E scalar.Float](a, b Expr[E]) E {
	w1, x1, y1, z1 := parts(a)
	w2, x2, y2, z2 := parts(b)

	return w1*w2 + x1*x2 + y1*y2 + z1*z2
}

// Norm returns the squared length |q|².
func Norm[E scalar.Float](q Expr[E]) E { return Dot(q, q) }

// Length returns |q|.
func Length[E scalar.Float](q Expr[E]) E { return scalar.Sqrt(Norm(q)) }

// Real returns the real part of q.
func Real[E scalar.Float](q Expr[E]) E { return component(q, 0) }

// Imaginary returns (x, y, z) of q.
func Imaginary[E scalar.Float](q Expr[E]) *vector.Fixed[E, tags.D3] {
	_, x, y, z := parts(q)

	return vector.New3(x, y, z)
}

// Normalize returns q / |q|.
func Normalize[E scalar.Float](q Expr[E]) *Quaternion[E] {
	out := Eval(q)
	out.Normalize()

	return out
}

// Inverse returns conj(q) / |q|². The zero quaternion yields non-finite
// elements.
func Inverse[E scalar.Float](q Expr[E]) *Quaternion[E] {
	out := Eval(q)
	out.Inverse()

	return out
}

// Log returns the natural logarithm
//
//	log q = (ln|q|, v/|v| * acos(w/|q|))
//
// When |v| is below the epsilon of E the imaginary part is zero.
func Log[E scalar.Float](q Expr[E]) *Quaternion[E] {
	w, x, y, z := parts(q)
	n := Length(q)
	vl := scalar.Sqrt(x*x + y*y + z*z)

	out := &Quaternion[E]{order: q.Order(), cross: q.Cross()}
	if vl < scalar.Epsilon[E]() {
		setParts[E](out, scalar.Log(n), 0, 0, 0)

		return out
	}
	s := scalar.Acos(w/n) / vl
	setParts[E](out, scalar.Log(n), x*s, y*s, z*s)

	return out
}

// Exp returns the exponential
//
//	exp q = e^w * (cos|v|, v/|v| * sin|v|)
func Exp[E scalar.Float](q Expr[E]) *Quaternion[E] {
	w, x, y, z := parts(q)
	ew := scalar.Exp(w)
	vl := scalar.Sqrt(x*x + y*y + z*z)

	out := &Quaternion[E]{order: q.Order(), cross: q.Cross()}
	if vl < scalar.Epsilon[E]() {
		setParts[E](out, ew, 0, 0, 0)

		return out
	}
	s := ew * scalar.Sin(vl) / vl
	setParts[E](out, ew*scalar.Cos(vl), x*s, y*s, z*s)

	return out
}

// Equal reports whether a and b agree within tol, matched by role.
func Equal[E scalar.Float](a, b Expr[E], tol E) bool {
	w1, x1, y1, z1 := parts(a)
	w2, x2, y2, z2 := parts(b)

	return scalar.Abs(w1-w2) <= tol && scalar.Abs(x1-x2) <= tol &&
		scalar.Abs(y1-y2) <= tol && scalar.Abs(z1-z2) <= tol
}
