package handle

import (
	"sync"
	"unsafe"

	"github.com/wippyai/ndarray/internal/debug"
	"github.com/wippyai/ndarray/mem"
	"github.com/wippyai/ndarray/rtable"
)

// Heap owns a single heap-allocated block of elements.
//
// A Heap handle is the sole owner of its memory until it is promoted into
// shared ownership via Share, which lazily acquires a refcount id. Cloning
// always produces a new allocation; a Heap handle never aliases another
// handle's memory.
type Heap[T Elem] struct {
	data  []T
	blk   mem.Block
	alloc mem.Allocator

	// Sharing state. id 0 means the block has never been shared; once an
	// id exists the block's lifetime is governed by the refcount table and
	// this handle holds one count. Serialized so that concurrent first-time
	// promotion acquires exactly one id.
	idMu sync.Mutex
	id   int64
}

// NewHeap allocates a zero-initialized handle of size elements from the
// default allocator. Size 0 yields the canonical null handle.
func NewHeap[T Elem](size int) *Heap[T] {
	return NewHeapIn[T](mem.Default, size)
}

// NewHeapIn allocates from a specific allocator.
func NewHeapIn[T Elem](a mem.Allocator, size int) *Heap[T] {
	h := &Heap[T]{alloc: a}
	if size == 0 {
		return h
	}
	var zero T
	h.blk = a.AllocateZero(uintptr(size) * unsafe.Sizeof(zero))
	h.data = unsafe.Slice((*T)(h.blk.Ptr), size)
	return h
}

// Data returns the address of element 0, or nil for a null handle.
func (h *Heap[T]) Data() *T {
	if len(h.data) == 0 {
		return nil
	}
	return &h.data[0]
}

// Size returns the element count.
func (h *Heap[T]) Size() int { return len(h.data) }

// IsNull reports whether the handle holds no storage.
func (h *Heap[T]) IsNull() bool {
	if debug.Enabled {
		h.idMu.Lock()
		debug.Assert(h.data != nil || h.id == 0, "heap: null handle with live share id")
		h.idMu.Unlock()
	}
	return h.data == nil
}

// At returns the address of the element at flat offset i.
func (h *Heap[T]) At(i int) *T { return &h.data[i] }

// Raw exposes the elements as a slice. The handle retains ownership.
func (h *Heap[T]) Raw() []T { return h.data }

// Owns reports that heap storage is owned.
func (h *Heap[T]) Owns() bool { return true }

// Shared reports whether the block has been promoted into the refcount table.
func (h *Heap[T]) Shared() bool {
	h.idMu.Lock()
	defer h.idMu.Unlock()
	return h.id != 0
}

// Clone returns a deep copy backed by a fresh allocation from the same
// allocator. The clone starts out unshared regardless of h's state.
func (h *Heap[T]) Clone() *Heap[T] {
	c := NewHeapIn[T](h.alloc, len(h.data))
	copy(c.data, h.data)
	return c
}

// Move transfers ownership into a new handle and resets h to the canonical
// null state. The share id, if any, moves with the block.
func (h *Heap[T]) Move() *Heap[T] {
	h.idMu.Lock()
	m := &Heap[T]{data: h.data, blk: h.blk, alloc: h.alloc, id: h.id}
	h.data = nil
	h.blk = mem.Block{}
	h.id = 0
	h.idMu.Unlock()
	return m
}

// Release drops this handle's claim on the block. For an unshared handle
// the block is deallocated immediately; for a promoted one the block
// survives until the last shared reference is gone. Release of a null
// handle is a no-op. Call exactly once.
func (h *Heap[T]) Release() {
	if h.IsNull() {
		return
	}

	h.idMu.Lock()
	id := h.id
	h.idMu.Unlock()

	if id != 0 && !rtable.Decref(id) {
		// Still pointed to by shared handles; they deallocate later.
		h.clear()
		return
	}

	h.alloc.Deallocate(h.blk)
	h.clear()
}

func (h *Heap[T]) clear() {
	h.idMu.Lock()
	h.data = nil
	h.blk = mem.Block{}
	h.id = 0
	h.idMu.Unlock()
}

// shareID returns the handle's refcount id, acquiring one on first use.
// Only one goroutine fetches the id; late arrivals observe it.
func (h *Heap[T]) shareID() int64 {
	h.idMu.Lock()
	defer h.idMu.Unlock()
	if h.id == 0 {
		h.id = rtable.Get()
	}
	return h.id
}

// Borrow returns a non-owning reference starting at offset, remembering h
// as parent so the borrow can later be promoted to shared ownership.
func (h *Heap[T]) Borrow(offset int) Borrowed[T] {
	if h.IsNull() {
		return Borrowed[T]{}
	}
	return Borrowed[T]{parent: h, data: h.data[offset:]}
}
