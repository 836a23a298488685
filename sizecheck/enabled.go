// SPDX-License-Identifier: MIT

//go:build !lvlmath_nosizecheck

package sizecheck

// Enabled reports whether runtime size checks run. Build with
// -tags lvlmath_nosizecheck to compile them out.
const Enabled = true
