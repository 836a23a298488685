// SPDX-License-Identifier: MIT

package tags

import "errors"

// ErrTagConflict is returned when two concrete, different tags on the same
// axis are combined (e.g. RowBasis with ColBasis). It is never resolved to a
// default.
var ErrTagConflict = errors.New("tags: conflicting concrete tags")
