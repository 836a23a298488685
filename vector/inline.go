// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/katalvlaran/lvlmath/scalar"
	"github.com/katalvlaran/lvlmath/storage"
	"github.com/katalvlaran/lvlmath/tags"
)

// inline is the materialization target of expressions whose proxy is
// inline: a fixed vector whose extent is only known at run time.
type inline[E scalar.Float] struct {
	n    int
	data [tags.MaxFixedDim]E
}

func (v *inline[E]) Size() int                 { return v.n }
func (v *inline[E]) Get(i int) E               { return v.data[:v.n][i] }
func (v *inline[E]) Set(i int, x E)            { v.data[:v.n][i] = x }
func (v *inline[E]) SizeTag() tags.Size        { return tags.Fixed }
func (v *inline[E]) Storage() storage.Selector { return storage.InlineVector(v.n) }
