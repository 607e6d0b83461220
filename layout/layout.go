package layout

import (
	"errors"
	"fmt"
	"sort"

	"github.com/wippyai/ndarray/internal/debug"
)

var (
	ErrRankMismatch   = errors.New("layout: order and lengths rank mismatch")
	ErrBadPermutation = errors.New("layout: stride order is not a permutation")
	ErrNegativeLength = errors.New("layout: negative dimension length")
)

// Layout maps an N-dimensional index tuple to a flat offset. The zero value
// is the rank-0 layout addressing a single element.
type Layout struct {
	lens    []int
	strides []int
	order   []int // dimensions slowest-varying to fastest-varying
}

// COrder returns the canonical row-major stride order for rank dims:
// the last logical index varies fastest in memory.
func COrder(rank int) []int {
	o := make([]int, rank)
	for i := range o {
		o[i] = i
	}
	return o
}

// FOrder returns the canonical column-major stride order for rank dims:
// the first logical index varies fastest in memory.
func FOrder(rank int) []int {
	o := make([]int, rank)
	for i := range o {
		o[i] = rank - 1 - i
	}
	return o
}

// NewC builds a contiguous row-major layout.
func NewC(lens ...int) Layout {
	l, err := NewOrdered(COrder(len(lens)), lens...)
	if err != nil {
		panic(err) // canonical order cannot fail permutation checks
	}
	return l
}

// NewF builds a contiguous column-major layout.
func NewF(lens ...int) Layout {
	l, err := NewOrdered(FOrder(len(lens)), lens...)
	if err != nil {
		panic(err)
	}
	return l
}

// NewOrdered builds a contiguous layout whose memory traversal follows the
// given stride-order permutation.
func NewOrdered(order []int, lens ...int) (Layout, error) {
	if len(order) != len(lens) {
		return Layout{}, ErrRankMismatch
	}
	if !isPermutation(order) {
		return Layout{}, fmt.Errorf("%w: %v", ErrBadPermutation, order)
	}
	for _, n := range lens {
		if n < 0 {
			return Layout{}, fmt.Errorf("%w: %v", ErrNegativeLength, lens)
		}
	}

	rank := len(lens)
	l := Layout{
		lens:    append([]int(nil), lens...),
		strides: make([]int, rank),
		order:   append([]int(nil), order...),
	}

	// Running product from the fastest dimension outward.
	stride := 1
	for k := rank - 1; k >= 0; k-- {
		d := order[k]
		l.strides[d] = stride
		stride *= lens[d]
	}
	return l, nil
}

// FromStrides builds a layout over externally-imposed strides, deriving the
// stride order by ranking dimensions from largest to smallest stride. Ties
// keep logical order.
func FromStrides(lens, strides []int) (Layout, error) {
	if len(lens) != len(strides) {
		return Layout{}, ErrRankMismatch
	}
	for _, n := range lens {
		if n < 0 {
			return Layout{}, fmt.Errorf("%w: %v", ErrNegativeLength, lens)
		}
	}

	order := COrder(len(lens))
	sort.SliceStable(order, func(a, b int) bool {
		sa, sb := abs(strides[order[a]]), abs(strides[order[b]])
		return sa > sb
	})
	return Layout{
		lens:    append([]int(nil), lens...),
		strides: append([]int(nil), strides...),
		order:   order,
	}, nil
}

// Rank returns the number of dimensions.
func (l Layout) Rank() int { return len(l.lens) }

// Size returns the total element count: the product of the lengths. Any
// zero-length dimension makes the whole layout describe zero elements.
func (l Layout) Size() int {
	n := 1
	for _, d := range l.lens {
		n *= d
	}
	return n
}

// Len returns the length of dimension d.
func (l Layout) Len(d int) int { return l.lens[d] }

// Stride returns the stride of dimension d.
func (l Layout) Stride(d int) int { return l.strides[d] }

// Lengths returns a copy of the per-dimension lengths.
func (l Layout) Lengths() []int { return append([]int(nil), l.lens...) }

// Strides returns a copy of the per-dimension strides.
func (l Layout) Strides() []int { return append([]int(nil), l.strides...) }

// StrideOrder returns a copy of the stride-order permutation, dimensions
// listed slowest-varying first.
func (l Layout) StrideOrder() []int { return append([]int(nil), l.order...) }

// Offset maps an index tuple to a flat offset: the dot product of index and
// strides. No bounds checking.
func (l Layout) Offset(idx ...int) int {
	debug.Assert(len(idx) == len(l.lens), "layout: index rank mismatch")
	off := 0
	for k, i := range idx {
		off += i * l.strides[k]
	}
	return off
}

// IsContiguous reports whether the strides, permuted into stride order,
// form a running product starting at 1 with no gaps. An empty layout is
// contiguous.
func (l Layout) IsContiguous() bool {
	if l.Size() == 0 {
		return true
	}
	expected := 1
	for k := len(l.order) - 1; k >= 0; k-- {
		d := l.order[k]
		if l.strides[d] != expected {
			return false
		}
		expected *= l.lens[d]
	}
	return true
}

// IsCOrder reports whether the stride order is the canonical row-major
// permutation.
func (l Layout) IsCOrder() bool {
	for i, d := range l.order {
		if d != i {
			return false
		}
	}
	return true
}

// IsFOrder reports whether the stride order is the canonical column-major
// permutation.
func (l Layout) IsFOrder() bool {
	rank := len(l.order)
	for i, d := range l.order {
		if d != rank-1-i {
			return false
		}
	}
	return true
}

// WithLengths derives a fresh contiguous layout from new lengths only,
// never preserving the old strides. The stride-order permutation carries
// over when the rank is unchanged and falls back to row-major otherwise.
func (l Layout) WithLengths(lens ...int) Layout {
	order := l.order
	if len(lens) != len(l.lens) {
		order = COrder(len(lens))
	}
	nl, err := NewOrdered(order, lens...)
	if err != nil {
		panic(err) // order was valid for this rank already
	}
	return nl
}

// Transposed returns the layout with the dimension labels reversed: the
// same physical memory addressed with logical indices in opposite order.
// Transposing a contiguous row-major layout yields a contiguous
// column-major one.
func (l Layout) Transposed() Layout {
	rank := len(l.lens)
	t := Layout{
		lens:    make([]int, rank),
		strides: make([]int, rank),
		order:   make([]int, rank),
	}
	for i := 0; i < rank; i++ {
		t.lens[i] = l.lens[rank-1-i]
		t.strides[i] = l.strides[rank-1-i]
		t.order[i] = rank - 1 - l.order[i]
	}
	return t
}

// String renders the layout for diagnostics.
func (l Layout) String() string {
	return fmt.Sprintf("layout(lens=%v strides=%v order=%v)", l.lens, l.strides, l.order)
}

func isPermutation(order []int) bool {
	seen := make([]bool, len(order))
	for _, d := range order {
		if d < 0 || d >= len(order) || seen[d] {
			return false
		}
		seen[d] = true
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
