package traverse

import "github.com/wippyai/ndarray/layout"

// Iterator walks every index tuple of a layout exactly once, in stride
// order. The zero value is not usable; call New.
type Iterator struct {
	lay   layout.Layout
	order []int
	idx   []int
	fresh bool
	done  bool
}

// New returns an iterator positioned before the first index of lay.
func New(lay layout.Layout) *Iterator {
	it := &Iterator{
		lay:   lay,
		order: lay.StrideOrder(),
		idx:   make([]int, lay.Rank()),
	}
	it.Reset()
	return it
}

// Reset repositions the iterator before the first index. The sequence after
// a Reset is identical to the one after New.
func (it *Iterator) Reset() {
	for i := range it.idx {
		it.idx[i] = 0
	}
	it.fresh = true
	it.done = it.lay.Size() == 0
}

// Next advances to the next index tuple. The returned slice is reused
// between calls; copy it to retain. A rank-0 layout yields a single empty
// tuple.
func (it *Iterator) Next() ([]int, bool) {
	if it.done {
		return nil, false
	}
	if it.fresh {
		it.fresh = false
		return it.idx, true
	}

	// Odometer increment, fastest-varying dimension first.
	for k := len(it.order) - 1; k >= 0; k-- {
		d := it.order[k]
		it.idx[d]++
		if it.idx[d] < it.lay.Len(d) {
			return it.idx, true
		}
		it.idx[d] = 0
	}
	it.done = true
	return nil, false
}

// Offset returns the flat offset of the current index tuple. Valid only
// after a successful Next.
func (it *Iterator) Offset() int {
	return it.lay.Offset(it.idx...)
}

// ForEach visits every index tuple of lay in stride order. The tuple passed
// to fn is reused between calls.
func ForEach(lay layout.Layout, fn func(idx []int)) {
	it := New(lay)
	for idx, ok := it.Next(); ok; idx, ok = it.Next() {
		fn(idx)
	}
}

// ForEachOffset visits the flat offset of every element in stride order.
// Contiguous layouts take a linear fast path.
func ForEachOffset(lay layout.Layout, fn func(off int)) {
	if lay.IsContiguous() {
		n := lay.Size()
		for off := 0; off < n; off++ {
			fn(off)
		}
		return
	}
	it := New(lay)
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		fn(it.Offset())
	}
}
