// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvlmath/scalar"
	"github.com/katalvlaran/lvlmath/storage"
	"github.com/katalvlaran/lvlmath/tags"
)

// inline is the materialization target of expressions with an inline
// proxy: a fixed matrix whose extents are only known at run time.
type inline[E scalar.Float] struct {
	rows, cols int
	data       [tags.MaxFixedElems]E
	basis      tags.Basis
	layout     tags.Layout
}

func (m *inline[E]) Rows() int { return m.rows }
func (m *inline[E]) Cols() int { return m.cols }

func (m *inline[E]) Get(i, j int) E {
	return m.data[:m.rows*m.cols][m.layout.Offset(i, j, m.rows, m.cols)]
}

func (m *inline[E]) Set(i, j int, v E) {
	m.data[:m.rows*m.cols][m.layout.Offset(i, j, m.rows, m.cols)] = v
}

func (m *inline[E]) SizeTag() tags.Size        { return tags.Fixed }
func (m *inline[E]) Basis() tags.Basis         { return m.basis }
func (m *inline[E]) Layout() tags.Layout       { return m.layout }
func (m *inline[E]) Storage() storage.Selector { return storage.InlineMatrix(m.rows, m.cols) }
