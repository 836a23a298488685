// Package lvlmath is a lazily evaluated vector, matrix and quaternion
// engine for fixed and run-time sized operands.
//
// What is inside?
//
//	• tags/       – size, basis, layout, order and cross tags + promotion rules
//	• storage/    – inline, heap and external selectors, allocators, heap buffers
//	• sizecheck/  – run-time dimension checks (compiled out by lvlmath_nosizecheck)
//	• vector/     – Fixed, Dynamic, External vectors and lazy vector nodes
//	• matrix/     – matrices, lazy nodes, products, Inverse, Determinant, LU
//	• quaternion/ – quaternions with order/cross tags, Hamilton product, Log, Exp
//	• cmd/lvlmath – YAML-in, YAML-out command line front end
//
// Expression model:
//
//	sum, err := vector.Add[float64](a, b) // nothing is computed yet
//	c := vector.Eval[float64](sum)        // one pass, container picked by selector
//
// Every node computes its size tag, storage selector and (for matrices)
// basis and layout once, when it is built. Size mismatches between dynamic
// operands are reported there, before any element is read. Fixed operands
// carry their extents as types (tags.D1 … tags.D8), so AddFixed on
// mismatched fixed vectors does not compile.
//
// Quick ASCII example of a full-pivot Gauss–Jordan step on a 3×3:
//
//	[ 1  2  3 ]      largest |a_ij| = 9 at (2,2)
//	[ 4  5  6 ]  →   swap rows 0↔2, remember column 0↔2,
//	[ 7  8 *9 ]      normalize, eliminate, un-swap columns at the end
//
//	go get github.com/katalvlaran/lvlmath
package lvlmath
