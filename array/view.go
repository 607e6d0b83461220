package array

import (
	"github.com/wippyai/ndarray"
	"github.com/wippyai/ndarray/handle"
	"github.com/wippyai/ndarray/layout"
	"github.com/wippyai/ndarray/traverse"
)

// View is a non-owning window over another array's storage. Copying a View
// copies the reference; the view carries no lifetime responsibility and
// must not outlive the array it was taken from.
type View[T handle.Elem] struct {
	b   handle.Borrowed[T]
	lay layout.Layout
}

// At returns the element at the given index tuple.
func (v View[T]) At(idx ...int) T {
	return *v.b.At(v.lay.Offset(idx...))
}

// Set stores x at the given index tuple. Writes are visible through the
// originating array: a view aliases, never copies.
func (v View[T]) Set(x T, idx ...int) {
	*v.b.At(v.lay.Offset(idx...)) = x
}

// Layout returns the view's layout value.
func (v View[T]) Layout() layout.Layout { return v.lay }

// Size returns the total element count addressed by the view.
func (v View[T]) Size() int { return v.lay.Size() }

// IsContiguous reports whether the view addresses one gapless run.
func (v View[T]) IsContiguous() bool { return v.lay.IsContiguous() }

// Transpose returns the view with the dimension order reversed.
func (v View[T]) Transpose() View[T] {
	return View[T]{b: v.b, lay: v.lay.Transposed()}
}

// ForEach visits every element in the view's stride order. The index tuple
// is reused between calls.
func (v View[T]) ForEach(fn func(idx []int, x T)) {
	it := traverse.New(v.lay)
	for idx, ok := it.Next(); ok; idx, ok = it.Next() {
		fn(idx, *v.b.At(it.Offset()))
	}
}

// Share promotes the view's backing storage into shared ownership. This is
// only possible for views borrowed from a heap-backed array; ok is false
// otherwise.
func (v View[T]) Share() (*handle.Shared[T], bool) {
	return v.b.Promote()
}

// Desc returns the flat descriptor collaborators consume.
func (v View[T]) Desc() ndarray.Desc {
	return ndarray.Describe[T](v.b, v.lay)
}
