package handle

import (
	"unsafe"

	"github.com/wippyai/ndarray/internal/debug"
	"github.com/wippyai/ndarray/mem"
	"github.com/wippyai/ndarray/rtable"
)

// ownership tags how a Shared handle's block is released once the last
// reference drops. The two strategies are exhaustive: a block is either
// returned to the allocator that produced it or handed back to the foreign
// runtime that lent it.
type ownership uint8

const (
	ownedByAllocator ownership = iota
	ownedByForeign
)

// Shared is a refcount-governed handle. Copies share the block and bump the
// count in the refcount table; the block is released exactly once, when the
// last referencing handle is gone.
type Shared[T Elem] struct {
	data  []T
	blk   mem.Block
	alloc mem.Allocator

	id    int64 // refcount table id; 0 iff the handle is null
	owner ownership

	// release hands the block back to its foreign owner. Set only for
	// ownedByForeign, invoked only when the count reaches zero.
	release func()
}

// Share promotes a Heap handle into shared ownership. The heap handle keeps
// its own claim (one count) and stays usable; the returned handle holds a
// second count on the same block. Concurrent first-time promotion of the
// same heap handle is race-free.
func Share[T Elem](h *Heap[T]) *Shared[T] {
	if h.IsNull() {
		return &Shared[T]{}
	}
	id := h.shareID()
	rtable.Incref(id)
	return &Shared[T]{
		data:  h.data,
		blk:   h.blk,
		alloc: h.alloc,
		id:    id,
	}
}

// AdoptForeign wraps memory owned by a foreign runtime in a shared handle.
// release is invoked exactly once, when the last reference drops; the block
// is never returned to a local allocator. A nil pointer or zero size yields
// the canonical null handle and release is never called.
func AdoptForeign[T Elem](ptr unsafe.Pointer, size int, release func()) *Shared[T] {
	if ptr == nil || size == 0 {
		return &Shared[T]{}
	}
	return &Shared[T]{
		data:    unsafe.Slice((*T)(ptr), size),
		id:      rtable.Get(),
		owner:   ownedByForeign,
		release: release,
	}
}

// Data returns the address of element 0, or nil for a null handle.
func (s *Shared[T]) Data() *T {
	if len(s.data) == 0 {
		return nil
	}
	return &s.data[0]
}

// Size returns the element count.
func (s *Shared[T]) Size() int { return len(s.data) }

// IsNull reports whether the handle holds no storage.
func (s *Shared[T]) IsNull() bool {
	debug.Assert((s.data == nil) == (len(s.data) == 0), "shared: data/size mismatch")
	debug.Assert((s.data == nil) == (s.id == 0), "shared: data/id mismatch")
	return s.data == nil
}

// At returns the address of the element at flat offset i.
func (s *Shared[T]) At(i int) *T { return &s.data[i] }

// Raw exposes the elements as a slice. The handle retains ownership.
func (s *Shared[T]) Raw() []T { return s.data }

// Owns reports that shared storage is owned (collectively).
func (s *Shared[T]) Owns() bool { return true }

// Shared reports that the handle's lifetime is refcount-governed.
func (s *Shared[T]) Shared() bool { return !s.IsNull() }

// Refcount returns the current count for the handle's id. Diagnostic use.
func (s *Shared[T]) Refcount() int64 {
	if s.IsNull() {
		return 0
	}
	return rtable.Refcount(s.id)
}

// Clone returns a new handle sharing the same block, incrementing the count.
func (s *Shared[T]) Clone() *Shared[T] {
	if s.IsNull() {
		return &Shared[T]{}
	}
	rtable.Incref(s.id)
	c := *s
	return &c
}

// Move transfers the reference into a new handle without touching the
// count, resetting s to the canonical null state.
func (s *Shared[T]) Move() *Shared[T] {
	m := *s
	*s = Shared[T]{}
	return &m
}

// Detach returns an independent Heap copy of the elements. The copy is
// always deep, regardless of the current refcount: a heap handle is never
// allowed to alias another handle's memory.
func (s *Shared[T]) Detach() *Heap[T] {
	a := s.alloc
	if a == nil {
		a = mem.Default
	}
	h := NewHeapIn[T](a, len(s.data))
	copy(h.data, s.data)
	return h
}

// Release drops this reference. When the count reaches zero the block is
// handed back to its owner: the allocator for locally-allocated blocks, the
// foreign release callback for adopted ones. Call exactly once per handle.
func (s *Shared[T]) Release() {
	if s.IsNull() {
		return
	}

	if !rtable.Decref(s.id) {
		*s = Shared[T]{}
		return
	}

	switch s.owner {
	case ownedByForeign:
		if s.release != nil {
			s.release()
		}
	default:
		s.alloc.Deallocate(s.blk)
	}
	*s = Shared[T]{}
}

// Borrow returns a non-owning reference starting at offset. The borrow
// contributes nothing to the refcount.
func (s *Shared[T]) Borrow(offset int) Borrowed[T] {
	if s.IsNull() {
		return Borrowed[T]{}
	}
	return Borrowed[T]{data: s.data[offset:]}
}
