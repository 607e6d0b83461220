package handle

import (
	"unsafe"

	"github.com/wippyai/ndarray/internal/debug"
	"github.com/wippyai/ndarray/mem"
)

// SSOCap is the largest element count an SSO handle stores inline.
const SSOCap = 8

// SSO stores up to SSOCap elements inline within the handle and spills to a
// heap allocation above that threshold. Whether the handle is on the heap
// is always re-derived from the size alone, so the inline/heap split stays
// exact at the boundary.
//
// Always address an SSO handle through a pointer: a plain struct copy of an
// inline handle would alias nothing (the buffer is copied too) but a plain
// copy of a heap one would double-own the block. Clone and Move are the
// only sanctioned copies.
type SSO[T Elem] struct {
	inline [SSOCap]T
	heap   []T
	blk    mem.Block
	alloc  mem.Allocator
	size   int
}

// NewSSO returns a zero-initialized handle of size elements from the
// default allocator. Size 0 yields the canonical null handle.
func NewSSO[T Elem](size int) *SSO[T] {
	return NewSSOIn[T](mem.Default, size)
}

// NewSSOIn allocates the spill path from a specific allocator.
func NewSSOIn[T Elem](a mem.Allocator, size int) *SSO[T] {
	s := &SSO[T]{alloc: a, size: size}
	if s.OnHeap() {
		var zero T
		s.blk = a.AllocateZero(uintptr(size) * unsafe.Sizeof(zero))
		s.heap = unsafe.Slice((*T)(s.blk.Ptr), size)
	}
	return s
}

// OnHeap reports whether the elements live in a heap allocation rather
// than the inline buffer.
func (s *SSO[T]) OnHeap() bool { return s.size > SSOCap }

// Data returns the address of element 0, or nil for a null handle.
func (s *SSO[T]) Data() *T {
	if s.size == 0 {
		return nil
	}
	if s.OnHeap() {
		return &s.heap[0]
	}
	return &s.inline[0]
}

// Size returns the element count.
func (s *SSO[T]) Size() int { return s.size }

// IsNull reports whether the handle holds no storage.
func (s *SSO[T]) IsNull() bool {
	debug.Assert(s.OnHeap() == (s.heap != nil), "sso: heap/size mismatch")
	return s.size == 0
}

// At returns the address of the element at flat offset i.
func (s *SSO[T]) At(i int) *T {
	if s.OnHeap() {
		return &s.heap[i]
	}
	return &s.inline[i]
}

// Raw exposes the elements as a slice. The handle retains ownership.
func (s *SSO[T]) Raw() []T {
	switch {
	case s.size == 0:
		return nil
	case s.OnHeap():
		return s.heap
	default:
		return s.inline[:s.size]
	}
}

// Owns reports that SSO storage is owned.
func (s *SSO[T]) Owns() bool { return true }

// Clone returns a deep copy: into the clone's own inline buffer when still
// under the threshold, into a fresh allocation otherwise.
func (s *SSO[T]) Clone() *SSO[T] {
	c := NewSSOIn[T](s.allocator(), s.size)
	copy(c.Raw(), s.Raw())
	return c
}

// Move transfers ownership when the elements are on the heap, resetting s
// to the canonical null state. Below the threshold the buffer cannot leave
// the handle, so Move copies instead and leaves s unchanged.
func (s *SSO[T]) Move() *SSO[T] {
	if !s.OnHeap() {
		return s.Clone()
	}
	m := &SSO[T]{heap: s.heap, blk: s.blk, alloc: s.alloc, size: s.size}
	s.heap = nil
	s.blk = mem.Block{}
	s.size = 0
	return m
}

// Release returns the spill allocation, if any, and resets the handle to
// the null state. Call exactly once; releasing a null handle is a no-op.
func (s *SSO[T]) Release() {
	if s.size == 0 {
		return
	}
	if s.OnHeap() {
		s.allocator().Deallocate(s.blk)
	}
	s.heap = nil
	s.blk = mem.Block{}
	s.size = 0
}

// Borrow returns a non-owning reference starting at offset. The borrow is
// valid only while s itself is.
func (s *SSO[T]) Borrow(offset int) Borrowed[T] {
	if s.size == 0 {
		return Borrowed[T]{}
	}
	return Borrowed[T]{data: s.Raw()[offset:]}
}

func (s *SSO[T]) allocator() mem.Allocator {
	if s.alloc == nil {
		return mem.Default
	}
	return s.alloc
}
