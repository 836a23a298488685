// SPDX-License-Identifier: MIT

package quaternion

import (
	"errors"
	"fmt"
)

// ErrNilExpr is returned when a nil expression is passed where an operand is
// required.
var ErrNilExpr = errors.New("quaternion: nil expression")

const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opFromParts  = "FromParts"
	opExternal   = "NewExternal"
	opAssign     = "Assign"
	opAssignElts = "AssignElements"
)

// quaternionErrorf tags err with the failing operation.
func quaternionErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
