// SPDX-License-Identifier: MIT

// Package scalar is the thin element-type layer used by the vector, matrix
// and quaternion containers.
//
// Purpose:
//   - Declare the Float constraint every container is parameterized on.
//   - Provide sqrt/sin/acos/... for any Float by round-tripping through float64.
//   - Expose the machine epsilon of the instantiated element type.
//
// Complexity:
//   - Every helper is O(1).
package scalar

import (
	"math"
	"math/rand"
)

// Float is the element constraint of every container in lvlmath.
type Float interface {
	~float32 | ~float64
}

// Machine epsilons for the two supported widths.
const (
	epsilon32 = 1.1920928955078125e-07
	epsilon64 = 2.220446049250313e-16
)

// Abs returns |v|.
func Abs[E Float](v E) E {
	if v < 0 {
		return -v
	}

	return v
}

// Sqrt returns the square root of v.
func Sqrt[E Float](v E) E { return E(math.Sqrt(float64(v))) }

// Sin returns the sine of v (radians).
func Sin[E Float](v E) E { return E(math.Sin(float64(v))) }

// Cos returns the cosine of v (radians).
func Cos[E Float](v E) E { return E(math.Cos(float64(v))) }

// Acos returns the arc cosine of v, clamping v into [-1, 1] first so that
// rounding noise on unit quaternions does not produce NaN.
func Acos[E Float](v E) E {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}

	return E(math.Acos(float64(v)))
}

// Exp returns e**v.
func Exp[E Float](v E) E { return E(math.Exp(float64(v))) }

// Log returns the natural logarithm of v.
func Log[E Float](v E) E { return E(math.Log(float64(v))) }

// IsSingle reports whether E is a 32-bit float type.
func IsSingle[E Float]() bool {
	var one E = 1
	tiny := E(1e-10) // vanishes against 1 only in single precision

	return one+tiny == one
}

// Epsilon returns the machine epsilon of E.
func Epsilon[E Float]() E {
	if IsSingle[E]() {
		return E(epsilon32)
	}

	return E(epsilon64)
}

// Random returns a uniformly distributed value in [lo, hi) drawn from r.
// A nil r uses the package-level math/rand source.
func Random[E Float](r *rand.Rand, lo, hi E) E {
	var u float64
	if r == nil {
		u = rand.Float64()
	} else {
		u = r.Float64()
	}

	return lo + E(u)*(hi-lo)
}
