package layout_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wippyai/ndarray/layout"
)

func TestRowMajorStrides(t *testing.T) {
	l := layout.NewC(2, 3)

	require.Equal(t, 2, l.Rank())
	require.Equal(t, 6, l.Size())
	require.Equal(t, []int{3, 1}, l.Strides())
	require.Equal(t, 5, l.Offset(1, 2))
	require.True(t, l.IsContiguous())
	require.True(t, l.IsCOrder())
	require.False(t, l.IsFOrder())
}

func TestColumnMajorStrides(t *testing.T) {
	l := layout.NewF(2, 3)

	require.Equal(t, []int{1, 2}, l.Strides())
	// Same logical index as the row-major case, different physical route,
	// same flat offset by coincidence of this shape.
	require.Equal(t, 5, l.Offset(1, 2))
	require.True(t, l.IsContiguous())
	require.True(t, l.IsFOrder())
	require.False(t, l.IsCOrder())
}

func TestOffsetIsDotProduct(t *testing.T) {
	l := layout.NewC(4, 5, 6)
	require.Equal(t, []int{30, 6, 1}, l.Strides())
	require.Equal(t, 2*30+3*6+4, l.Offset(2, 3, 4))
	require.Equal(t, 0, l.Offset(0, 0, 0))
}

func TestInjectedStridesNotContiguous(t *testing.T) {
	l, err := layout.FromStrides([]int{2, 3}, []int{1, 10})
	require.NoError(t, err)
	require.False(t, l.IsContiguous())
	require.Equal(t, 1*1+2*10, l.Offset(1, 2))
}

func TestFromStridesDerivesOrder(t *testing.T) {
	// Strides descending along dim 1 then dim 0: Fortran-like order.
	l, err := layout.FromStrides([]int{2, 3}, []int{1, 2})
	require.NoError(t, err)
	require.Equal(t, []int{1, 0}, l.StrideOrder())
	require.True(t, l.IsContiguous())
}

func TestNewOrderedValidation(t *testing.T) {
	_, err := layout.NewOrdered([]int{0}, 2, 3)
	require.ErrorIs(t, err, layout.ErrRankMismatch)

	_, err = layout.NewOrdered([]int{0, 0}, 2, 3)
	require.ErrorIs(t, err, layout.ErrBadPermutation)

	_, err = layout.NewOrdered([]int{0, 2}, 2, 3)
	require.ErrorIs(t, err, layout.ErrBadPermutation)

	_, err = layout.NewOrdered([]int{0, 1}, 2, -1)
	require.ErrorIs(t, err, layout.ErrNegativeLength)
}

func TestArbitraryPermutation(t *testing.T) {
	// Middle dimension slowest, first fastest.
	l, err := layout.NewOrdered([]int{1, 2, 0}, 2, 3, 4)
	require.NoError(t, err)

	// order (1,2,0): dim 0 fastest (stride 1), dim 2 next (stride 2),
	// dim 1 slowest (stride 8).
	require.Equal(t, []int{1, 8, 2}, l.Strides())
	require.True(t, l.IsContiguous())
	require.False(t, l.IsCOrder())
	require.False(t, l.IsFOrder())
}

func TestZeroLengthDimension(t *testing.T) {
	l := layout.NewC(2, 0, 3)
	require.Equal(t, 0, l.Size())
	require.True(t, l.IsContiguous(), "empty layout is contiguous by convention")
}

func TestRankZero(t *testing.T) {
	l := layout.NewC()
	require.Equal(t, 0, l.Rank())
	require.Equal(t, 1, l.Size())
	require.Equal(t, 0, l.Offset())
	require.True(t, l.IsContiguous())
}

func TestWithLengthsDerivesFreshStrides(t *testing.T) {
	l, err := layout.FromStrides([]int{2, 3}, []int{100, 7})
	require.NoError(t, err)
	require.False(t, l.IsContiguous())

	// Old strides are never preserved.
	nl := l.WithLengths(4, 5)
	require.Equal(t, []int{5, 1}, nl.Strides())
	require.True(t, nl.IsContiguous())
}

func TestWithLengthsKeepsOrderAtSameRank(t *testing.T) {
	l := layout.NewF(2, 3)
	nl := l.WithLengths(4, 5)
	require.True(t, nl.IsFOrder(), "order carries over when rank is unchanged")
	require.Equal(t, []int{1, 4}, nl.Strides())

	// Rank change falls back to row-major.
	nl = l.WithLengths(2, 3, 4)
	require.True(t, nl.IsCOrder())
}

func TestTransposed(t *testing.T) {
	l := layout.NewC(2, 3)
	tr := l.Transposed()

	require.Equal(t, []int{3, 2}, tr.Lengths())
	require.Equal(t, []int{1, 3}, tr.Strides())
	require.True(t, tr.IsFOrder())
	require.True(t, tr.IsContiguous())

	// Same element, transposed addressing.
	require.Equal(t, l.Offset(1, 2), tr.Offset(2, 1))
}

func TestLayoutIsValueType(t *testing.T) {
	l := layout.NewC(2, 3)
	cp := l

	// Mutating a copy's accessor results must not leak back.
	lens := cp.Lengths()
	lens[0] = 999
	require.Equal(t, []int{2, 3}, l.Lengths())
	require.Equal(t, []int{2, 3}, cp.Lengths())
}
