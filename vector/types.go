// SPDX-License-Identifier: MIT

// Package vector provides fixed, dynamic and external vectors together with
// lazily evaluated vector expressions.
//
// Purpose:
//   - Fixed[E, N]: inline storage whose extent N is a type, so that mixing a
//     3-vector with a 4-vector in AddFixed fails to compile.
//   - Dynamic[E]: heap storage sized at run time, resizable.
//   - External[E]: a view over caller-owned memory; never allocates.
//   - Expression nodes (BinaryNode, ScalarNode, UnaryNode) that compute their
//     size tag and storage selector once, at construction, and evaluate
//     elements only when read.
//
// Ownership:
//   - Containers passed to a node by pointer are BORROWED: the node sees
//     later writes and must not outlive the container.
//   - Nodes passed to a node, and values wrapped with Own, are OWNED.
//   - Ownership() reports which of the two applies to each operand.
//
// Errors:
//   - Size mismatches involving a dynamic operand are reported with the
//     sizecheck sentinels at node construction or at assignment, before any
//     element is computed or any destination is written.
//   - Element indices outside [0, Size()) are programmer errors and panic
//     like slice indexing does.
package vector

import (
	"github.com/katalvlaran/lvlmath/scalar"
	"github.com/katalvlaran/lvlmath/storage"
	"github.com/katalvlaran/lvlmath/tags"
)

// Expr is a read-only vector expression: a container or an expression node.
type Expr[E scalar.Float] interface {
	// Size returns the element count.
	Size() int
	// Get returns element i.
	Get(i int) E
	// SizeTag classifies the element count (Fixed, Dynamic or Either).
	SizeTag() tags.Size
	// Storage returns the selector backing the expression.
	Storage() storage.Selector
}

// Writable is a vector whose elements can be set.
type Writable[E scalar.Float] interface {
	Expr[E]
	Set(i int, v E)
}

// Ownership reports how a node holds one of its operands.
type Ownership uint8

const (
	// Borrowed operands are referenced; the node observes later writes.
	Borrowed Ownership = iota
	// Owned operands are held by value and private to the node.
	Owned
)

// String implements fmt.Stringer.
func (o Ownership) String() string {
	if o == Owned {
		return "owned"
	}

	return "borrowed"
}

// temporary is implemented by values a node takes ownership of: nodes
// themselves and copies made by Own.
type temporary interface {
	temporary()
}

// ownershipOf classifies an operand.
func ownershipOf[E scalar.Float](x Expr[E]) Ownership {
	if _, ok := x.(temporary); ok {
		return Owned
	}

	return Borrowed
}
