// SPDX-License-Identifier: MIT

package tags

// MaxFixedDim is the largest extent expressible as a Dim marker. Fixed
// containers reserve an inline buffer sized for it.
const MaxFixedDim = 8

// MaxFixedElems is the inline capacity of a fixed matrix.
const MaxFixedElems = MaxFixedDim * MaxFixedDim

// Dim is a type-level extent. Containers parameterized on Dim types get their
// sizes checked by the compiler: a Fixed[E, D3] cannot be passed where a
// Fixed[E, D4] is expected.
type Dim interface {
	Len() int
}

// Dimension markers.
type (
	D1 struct{}
	D2 struct{}
	D3 struct{}
	D4 struct{}
	D5 struct{}
	D6 struct{}
	D7 struct{}
	D8 struct{}
)

// Len implements Dim.
func (D1) Len() int { return 1 }
func (D2) Len() int { return 2 }
func (D3) Len() int { return 3 }
func (D4) Len() int { return 4 }
func (D5) Len() int { return 5 }
func (D6) Len() int { return 6 }
func (D7) Len() int { return 7 }
func (D8) Len() int { return 8 }

// DimOf returns the extent carried by N.
func DimOf[N Dim]() int {
	var n N

	return n.Len()
}
