// SPDX-License-Identifier: MIT

package quaternion

import (
	"fmt"

	"github.com/katalvlaran/lvlmath/tags"
)

// Defaults applied when no option overrides them.
const (
	DefaultOrder = tags.VectorFirst
	DefaultCross = tags.PositiveCross
)

// Option configures a quaternion container.
type Option func(*options)

type options struct {
	order tags.Order
	cross tags.Cross
}

// WithOrder selects the storage order. Panics on an undefined tag value.
func WithOrder(o tags.Order) Option {
	if o != tags.VectorFirst && o != tags.ScalarFirst {
		panic(fmt.Sprintf("quaternion: WithOrder(%d)", o))
	}

	return func(opt *options) { opt.order = o }
}

// WithCross selects the product convention. Panics on an undefined tag value.
func WithCross(c tags.Cross) Option {
	if c != tags.PositiveCross && c != tags.NegativeCross {
		panic(fmt.Sprintf("quaternion: WithCross(%d)", c))
	}

	return func(opt *options) { opt.cross = c }
}

func gatherOptions(opts []Option) options {
	o := options{order: DefaultOrder, cross: DefaultCross}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
