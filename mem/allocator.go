package mem

import "unsafe"

// Block is an opaque run of raw memory produced by an Allocator.
// The zero Block is the null block.
type Block struct {
	Ptr  unsafe.Pointer
	Size uintptr // bytes
}

// IsNull reports whether the block holds no memory.
func (b Block) IsNull() bool { return b.Ptr == nil }

// Allocator provides raw memory blocks for handle storage.
//
// Allocation failure is unrecoverable: implementations panic rather than
// return an error, and callers treat the panic as fatal for the current
// operation. Deallocate must be called exactly once per block, on the same
// allocator that produced it.
type Allocator interface {
	// Allocate returns a block of at least n bytes. n == 0 yields the
	// null block without touching the allocator.
	Allocate(n uintptr) Block

	// AllocateZero is Allocate with zero-initialized contents.
	AllocateZero(n uintptr) Block

	// Deallocate releases a block. The null block is ignored.
	Deallocate(b Block)
}

// System is the default allocator, drawing blocks from the Go heap.
// Blocks stay live for as long as something references them; Deallocate
// only severs the allocator's claim and lets the runtime reclaim the
// memory once the last reference is gone.
type System struct{}

// Allocate returns a block of n bytes.
func (System) Allocate(n uintptr) Block {
	if n == 0 {
		return Block{}
	}
	buf := make([]byte, n)
	return Block{Ptr: unsafe.Pointer(&buf[0]), Size: n}
}

// AllocateZero returns a zero-initialized block of n bytes. The Go runtime
// zeroes fresh memory, so this is the same path as Allocate; the method
// exists so callers can state intent and other allocators can differ.
func (s System) AllocateZero(n uintptr) Block {
	return s.Allocate(n)
}

// Deallocate releases b. For the system allocator this is a bookkeeping
// no-op; reclamation happens when the block becomes unreachable.
func (System) Deallocate(b Block) {}

// Default is the allocator used when none is supplied.
var Default Allocator = System{}
