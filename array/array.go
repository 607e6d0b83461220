package array

import (
	"github.com/wippyai/ndarray"
	"github.com/wippyai/ndarray/handle"
	"github.com/wippyai/ndarray/layout"
	"github.com/wippyai/ndarray/mem"
	"github.com/wippyai/ndarray/traverse"
)

type config struct {
	alloc   mem.Allocator
	order   []int
	fortran bool
}

// Option configures array construction.
type Option func(*config)

// WithAllocator makes the array draw storage from a.
func WithAllocator(a mem.Allocator) Option {
	return func(c *config) { c.alloc = a }
}

// WithOrder sets an explicit stride-order permutation.
func WithOrder(order []int) Option {
	return func(c *config) { c.order = order }
}

// Fortran selects column-major stride order.
func Fortran() Option {
	return func(c *config) { c.fortran = true }
}

// Array is a value-type multi-dimensional array over heap storage.
// It owns its handle; call Release exactly once when done.
type Array[T handle.Elem] struct {
	h     *handle.Heap[T]
	lay   layout.Layout
	alloc mem.Allocator
}

// New builds a zero-filled array of the given lengths, row-major by
// default. An invalid stride order is a programming error and panics.
func New[T handle.Elem](lens []int, opts ...Option) *Array[T] {
	c := config{alloc: mem.Default}
	for _, opt := range opts {
		opt(&c)
	}

	var lay layout.Layout
	switch {
	case c.order != nil:
		var err error
		lay, err = layout.NewOrdered(c.order, lens...)
		if err != nil {
			panic(err)
		}
	case c.fortran:
		lay = layout.NewF(lens...)
	default:
		lay = layout.NewC(lens...)
	}

	return &Array[T]{
		h:     handle.NewHeapIn[T](c.alloc, lay.Size()),
		lay:   lay,
		alloc: c.alloc,
	}
}

// At returns the element at the given index tuple.
func (a *Array[T]) At(idx ...int) T {
	return *a.h.At(a.lay.Offset(idx...))
}

// Set stores v at the given index tuple.
func (a *Array[T]) Set(v T, idx ...int) {
	*a.h.At(a.lay.Offset(idx...)) = v
}

// Ptr returns the address of the element at the given index tuple.
func (a *Array[T]) Ptr(idx ...int) *T {
	return a.h.At(a.lay.Offset(idx...))
}

// Layout returns the array's layout value.
func (a *Array[T]) Layout() layout.Layout { return a.lay }

// Rank returns the number of dimensions.
func (a *Array[T]) Rank() int { return a.lay.Rank() }

// Size returns the total element count.
func (a *Array[T]) Size() int { return a.lay.Size() }

// Lengths returns a copy of the per-dimension lengths.
func (a *Array[T]) Lengths() []int { return a.lay.Lengths() }

// Strides returns a copy of the per-dimension strides.
func (a *Array[T]) Strides() []int { return a.lay.Strides() }

// Data exposes the flat element storage in memory order.
func (a *Array[T]) Data() []T { return a.h.Raw() }

// Handle returns the underlying heap handle. The array retains ownership.
func (a *Array[T]) Handle() *handle.Heap[T] { return a.h }

// Desc returns the flat descriptor collaborators consume.
func (a *Array[T]) Desc() ndarray.Desc {
	return ndarray.Describe[T](a.h, a.lay)
}

// Fill stores v in every element.
func (a *Array[T]) Fill(v T) {
	raw := a.h.Raw()
	for i := range raw {
		raw[i] = v
	}
}

// ForEach visits every element in stride order. The index tuple is reused
// between calls.
func (a *Array[T]) ForEach(fn func(idx []int, v T)) {
	it := traverse.New(a.lay)
	for idx, ok := it.Next(); ok; idx, ok = it.Next() {
		fn(idx, *a.h.At(it.Offset()))
	}
}

// Clone returns a deep copy: fresh storage, identical layout and contents.
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{h: a.h.Clone(), lay: a.lay, alloc: a.alloc}
}

// Resize reshapes the array to new lengths, deriving a fresh contiguous
// layout; old strides are never preserved. Storage is reused when the total
// element count is unchanged, otherwise reallocated (contents zeroed).
func (a *Array[T]) Resize(lens ...int) {
	nl := a.lay.WithLengths(lens...)
	if nl.Size() != a.lay.Size() {
		old := a.h
		a.h = handle.NewHeapIn[T](a.alloc, nl.Size())
		old.Release()
	}
	a.lay = nl
}

// Share promotes the array's storage into shared ownership. The array
// stays usable and keeps its own claim; the returned handle must be
// released independently.
func (a *Array[T]) Share() *handle.Shared[T] {
	return handle.Share(a.h)
}

// View returns a non-owning window over the whole array.
func (a *Array[T]) View() View[T] {
	return View[T]{b: a.h.Borrow(0), lay: a.lay}
}

// Transpose returns a view addressing the same storage with the dimension
// order reversed. No elements move.
func (a *Array[T]) Transpose() View[T] {
	return View[T]{b: a.h.Borrow(0), lay: a.lay.Transposed()}
}

// Release frees the array's storage claim. Call exactly once.
func (a *Array[T]) Release() {
	a.h.Release()
}
