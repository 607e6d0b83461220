package handle

import "fmt"

// StackCap is the fixed inline capacity of a Stack handle, in elements.
const StackCap = 16

// Stack owns a fixed inline buffer. The buffer lives inside the handle
// value itself, so it can never be relocated: a move degrades to a copy and
// leaves the source unchanged. Capacity is a constant; a Stack handle
// cannot resize.
//
// Stack is a value type. Pass it by pointer; copy it only through Clone,
// which copies the elements into the destination's own buffer.
type Stack[T Elem] struct {
	buf  [StackCap]T
	size int
}

// NewStack returns a handle of size elements, all zero. Size 0 yields the
// canonical null handle. Sizes above StackCap are a programming error.
func NewStack[T Elem](size int) Stack[T] {
	if size > StackCap {
		panic(fmt.Sprintf("handle: stack size %d exceeds capacity %d", size, StackCap))
	}
	return Stack[T]{size: size}
}

// Data returns the address of element 0, or nil for a null handle.
func (s *Stack[T]) Data() *T {
	if s.size == 0 {
		return nil
	}
	return &s.buf[0]
}

// Size returns the element count.
func (s *Stack[T]) Size() int { return s.size }

// IsNull reports whether the handle holds no storage.
func (s *Stack[T]) IsNull() bool { return s.size == 0 }

// At returns the address of the element at flat offset i.
func (s *Stack[T]) At(i int) *T { return &s.buf[i] }

// Raw exposes the elements as a slice. The handle retains ownership.
func (s *Stack[T]) Raw() []T {
	if s.size == 0 {
		return nil
	}
	return s.buf[:s.size]
}

// Owns reports that stack storage is owned.
func (s *Stack[T]) Owns() bool { return true }

// Clone returns a deep copy with its own inline buffer.
func (s *Stack[T]) Clone() Stack[T] { return *s }

// Move returns a copy and leaves the source unchanged. Inline storage
// cannot transfer ownership; this asymmetry with the heap variants is
// deliberate and load-bearing.
func (s *Stack[T]) Move() Stack[T] { return *s }

// Release resets the handle to the null state. There is no allocation to
// return, so this is bookkeeping only.
func (s *Stack[T]) Release() { *s = Stack[T]{} }

// Borrow returns a non-owning reference starting at offset. The borrow is
// valid only while s itself is.
func (s *Stack[T]) Borrow(offset int) Borrowed[T] {
	if s.size == 0 {
		return Borrowed[T]{}
	}
	return Borrowed[T]{data: s.buf[offset:s.size]}
}
