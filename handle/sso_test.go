package handle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wippyai/ndarray/handle"
	"github.com/wippyai/ndarray/mem"
)

func TestSSOZeroSizeIsNull(t *testing.T) {
	s := handle.NewSSO[float64](0)
	require.True(t, s.IsNull())
	require.Nil(t, s.Data())
	require.False(t, s.OnHeap())
	s.Release()
}

// The inline/heap transition must be exact at the boundary.
func TestSSOThresholdBoundary(t *testing.T) {
	cases := []struct {
		size   int
		onHeap bool
	}{
		{handle.SSOCap - 1, false},
		{handle.SSOCap, false},
		{handle.SSOCap + 1, true},
		{handle.SSOCap + 2, true},
	}
	for _, tc := range cases {
		s := handle.NewSSO[float64](tc.size)
		require.Equalf(t, tc.onHeap, s.OnHeap(), "size %d", tc.size)
		require.Equal(t, tc.size, s.Size())
		require.False(t, s.IsNull())
		s.Release()
	}
}

func TestSSOInlineSkipsAllocator(t *testing.T) {
	lc := mem.NewLeakCheck(mem.System{})

	s := handle.NewSSOIn[int64](lc, handle.SSOCap)
	require.Equal(t, 0, lc.Outstanding(), "inline storage must not allocate")
	s.Release()

	h := handle.NewSSOIn[int64](lc, handle.SSOCap+1)
	require.Equal(t, 1, lc.Outstanding())
	h.Release()
	require.NoError(t, lc.Check())
}

func TestSSOCloneIsDeep(t *testing.T) {
	for _, size := range []int{3, handle.SSOCap + 3} {
		s := handle.NewSSO[float64](size)
		*s.At(1) = 5.5

		c := s.Clone()
		require.Equal(t, s.Size(), c.Size())
		require.Equal(t, s.OnHeap(), c.OnHeap())
		require.NotSame(t, s.Data(), c.Data())
		require.Equal(t, 5.5, *c.At(1))

		*c.At(1) = -1
		require.Equal(t, 5.5, *s.At(1))

		c.Release()
		s.Release()
	}
}

func TestSSOMoveOnHeapTransfers(t *testing.T) {
	s := handle.NewSSO[int32](handle.SSOCap + 4)
	*s.At(0) = 9
	ptr := s.Data()

	m := s.Move()
	require.True(t, s.IsNull(), "heap-resident source is nulled by a move")
	require.Same(t, ptr, m.Data(), "heap path transfers the pointer")
	require.Equal(t, int32(9), *m.At(0))

	s.Release()
	m.Release()
}

func TestSSOMoveInlineCopies(t *testing.T) {
	s := handle.NewSSO[int32](3)
	*s.At(2) = 7

	m := s.Move()
	require.False(t, s.IsNull(), "inline source survives a move unchanged")
	require.Equal(t, 3, s.Size())
	require.Equal(t, int32(7), *s.At(2))

	require.Equal(t, int32(7), *m.At(2))
	require.NotSame(t, s.Data(), m.Data())

	s.Release()
	m.Release()
}

func TestSSOReleaseReturnsSpill(t *testing.T) {
	lc := mem.NewLeakCheck(mem.System{})

	s := handle.NewSSOIn[float64](lc, handle.SSOCap*2)
	require.True(t, s.OnHeap())
	s.Release()
	require.True(t, s.IsNull())
	require.NoError(t, lc.Check())
}
