package handle

// Borrowed is a non-owning reference into another handle's storage. It
// carries no lifetime responsibility: copying a Borrowed copies the
// reference and touches no refcount, and releasing the originating handle
// while borrows are outstanding is the caller's bug to avoid.
//
// A borrow taken from a Heap handle remembers its parent, which is used
// only to allow later promotion to shared ownership, never to manage
// lifetime directly.
//
// Borrowed is a plain value; assignment is the trivial copy.
type Borrowed[T Elem] struct {
	parent *Heap[T]
	data   []T
}

// Data returns the address of element 0, or nil for a null borrow.
func (b Borrowed[T]) Data() *T {
	if len(b.data) == 0 {
		return nil
	}
	return &b.data[0]
}

// Size returns the number of elements visible through the borrow.
func (b Borrowed[T]) Size() int { return len(b.data) }

// IsNull reports whether the borrow references no storage.
func (b Borrowed[T]) IsNull() bool { return len(b.data) == 0 }

// At returns the address of the element at flat offset i.
func (b Borrowed[T]) At(i int) *T { return &b.data[i] }

// Raw exposes the borrowed elements as a slice.
func (b Borrowed[T]) Raw() []T { return b.data }

// Owns reports that borrowed storage is never owned.
func (b Borrowed[T]) Owns() bool { return false }

// Parent returns the originating Heap handle, or nil when the borrow was
// not taken from one.
func (b Borrowed[T]) Parent() *Heap[T] { return b.parent }

// Shift returns a borrow advanced by offset elements within the same
// storage, preserving the parent back-reference.
func (b Borrowed[T]) Shift(offset int) Borrowed[T] {
	if b.IsNull() {
		return Borrowed[T]{}
	}
	return Borrowed[T]{parent: b.parent, data: b.data[offset:]}
}

// Promote turns the borrow into a shared handle over the parent's whole
// block. It reports false when the borrow has no parent to promote through.
// The parent must still be live.
func (b Borrowed[T]) Promote() (*Shared[T], bool) {
	if b.parent == nil {
		return nil, false
	}
	return Share(b.parent), true
}
