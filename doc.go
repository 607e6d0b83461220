// Package ndarray provides the storage and addressing substrate for
// multi-dimensional arrays: value-type storage handles over strided memory
// with heap, stack, small-buffer, shared and borrowed backing strategies
// unified behind one element-access contract.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	ndarray/         Root package with the Storage contract and Desc descriptor
//	├── mem/         Raw block allocation and the leak-checking wrapper
//	├── rtable/      Process-wide reference-count table for shared storage
//	├── handle/      The five storage handle variants (heap/stack/sso/shared/borrowed)
//	├── layout/      Strided index-map: lengths, strides, stride order
//	├── traverse/    Ordered multi-dimensional index iteration
//	├── array/       Thin array/view container composing handle + layout
//	└── interop/     Foreign-memory adoption, including WASM linear memory
//
// # Quick Start
//
// Create an array, address it, share its storage:
//
//	a := array.New[float64]([]int{2, 3})
//	a.Set(1.5, 1, 2)
//	fmt.Println(a.At(1, 2)) // 1.5
//
//	s := a.Share() // refcounted view of the same storage
//	defer s.Release()
//
// # Ownership Model
//
// Every handle variant answers the same queries: address of element 0,
// element count, and nullness. They differ only in lifetime discipline:
//
//   - Heap owns a single allocation, cloned deeply, moved by pointer theft.
//   - Stack owns a fixed inline buffer; a move degrades to a copy because
//     the buffer cannot be relocated.
//   - SSO stores small counts inline and spills to the heap above a
//     threshold; whether it is on the heap follows from the size alone.
//   - Shared participates in the process-wide refcount table and may adopt
//     memory owned by a foreign runtime, releasing it through a callback.
//   - Borrowed references another handle's memory and never manages lifetime.
//
// All element access routes through a Layout, which maps an N-dimensional
// index tuple to a flat offset under an arbitrary stride-order permutation
// (C, Fortran, or anything in between). Handles never bounds-check; the
// Layout held by the caller is the only bounds authority.
//
// # Thread Safety
//
// Handles are not safe for concurrent mutation. The single cross-thread
// concern is Shared handles being cloned and released from multiple
// goroutines, which the refcount table serializes internally.
//
// # Diagnostics
//
// Build with the "ndarraydebug" tag to enable invariant assertions, and
// wrap an allocator in mem.NewLeakCheck to verify that every block is
// released exactly once.
package ndarray
