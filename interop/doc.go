// Package interop adopts memory owned by a foreign runtime into shared
// storage handles without copying.
//
// The contract is narrow: the foreign side supplies a byte region and a
// release callback; the core wraps the region in a Shared handle and
// invokes the callback exactly once, when the last reference drops. The
// block is never handed to a local allocator.
//
// The wazero adapter applies this to WebAssembly guests: a region of a
// module's linear memory becomes array storage, and the release callback
// calls back into the guest's own deallocation export.
//
//	buf, _ := mod.ExportedMemory("memory").Read(ptr, count*8)
//	s, err := interop.AdoptBytes[float64](buf, count, interop.GuestFree(ctx, free, ptr, size, 8))
//
// The guest memory must stay valid while references exist; growing WASM
// linear memory can move it, so callers must not grow the memory while a
// handle is live.
package interop
