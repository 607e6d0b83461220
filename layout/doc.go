// Package layout implements the strided index-map: the pure computation
// translating an N-dimensional index tuple into a flat memory offset, given
// per-dimension lengths, strides, and a stride-order permutation.
//
// # Stride Order
//
// The stride order decouples the logical shape a caller addresses from the
// physical traversal order in memory. It is a permutation of the dimension
// indices listed from slowest-varying to fastest-varying:
//
//	C (row-major)    order = [0, 1, ..., N-1]  last index fastest
//	Fortran          order = [N-1, ..., 1, 0]  first index fastest
//	anything else    any permutation
//
// A layout is contiguous when the strides, walked in stride order from
// fastest to slowest, form a running product starting at 1: the element
// set exactly fills Size() consecutive slots with no gaps.
//
// # Bounds
//
// Offset performs no bounds checking; that is a caller (or debug-build)
// responsibility, keeping the hot path branch-free in release builds.
//
// A Layout is an immutable value: freely copyable, no ownership. Containers
// recompute one via WithLengths whenever their shape changes.
package layout
