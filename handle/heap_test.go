package handle_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wippyai/ndarray/handle"
	"github.com/wippyai/ndarray/mem"
)

func TestHeapZeroSizeIsNull(t *testing.T) {
	h := handle.NewHeap[float64](0)
	require.True(t, h.IsNull())
	require.Nil(t, h.Data())
	require.Equal(t, 0, h.Size())

	// Releasing a null handle is a no-op.
	h.Release()
}

func TestHeapZeroSizeSkipsAllocator(t *testing.T) {
	lc := mem.NewLeakCheck(mem.System{})

	h := handle.NewHeapIn[int32](lc, 0)
	require.True(t, h.IsNull())
	require.Equal(t, 0, lc.Outstanding(), "null handle must not allocate")
	h.Release()
	require.NoError(t, lc.Check())
}

func TestHeapAllocatesZeroed(t *testing.T) {
	h := handle.NewHeap[int64](5)
	defer h.Release()

	require.False(t, h.IsNull())
	require.Equal(t, 5, h.Size())
	require.NotNil(t, h.Data())
	for i := 0; i < 5; i++ {
		require.Zero(t, *h.At(i))
	}
}

func TestHeapCloneIsDeep(t *testing.T) {
	h := handle.NewHeap[float64](4)
	defer h.Release()
	for i := 0; i < 4; i++ {
		*h.At(i) = float64(i)
	}

	c := h.Clone()
	defer c.Release()

	require.Equal(t, h.Size(), c.Size())
	require.NotSame(t, h.Data(), c.Data(), "clone must not alias")
	for i := 0; i < 4; i++ {
		require.Equal(t, *h.At(i), *c.At(i))
	}

	// Mutating the clone never affects the source.
	*c.At(2) = 99
	require.Equal(t, float64(2), *h.At(2))
}

func TestHeapCloneNull(t *testing.T) {
	h := handle.NewHeap[uint8](0)
	c := h.Clone()
	require.True(t, c.IsNull())
	c.Release()
	h.Release()
}

func TestHeapMoveInvalidatesSource(t *testing.T) {
	h := handle.NewHeap[int32](3)
	*h.At(0) = 7
	ptr := h.Data()

	m := h.Move()
	defer m.Release()

	require.True(t, h.IsNull(), "moved-from handle is the canonical null handle")
	require.Nil(t, h.Data())
	require.Equal(t, 0, h.Size())

	require.Same(t, ptr, m.Data(), "move transfers, never copies")
	require.Equal(t, int32(7), *m.At(0))

	h.Release() // releasing the husk is a no-op
}

func TestHeapReleaseReturnsBlock(t *testing.T) {
	lc := mem.NewLeakCheck(mem.System{})

	h := handle.NewHeapIn[float64](lc, 100)
	require.Equal(t, 1, lc.Outstanding())
	h.Release()
	require.Equal(t, 0, lc.Outstanding())
	require.NoError(t, lc.Check())
}

func TestHeapConcurrentFirstPromotion(t *testing.T) {
	h := handle.NewHeap[float64](10)

	const goroutines = 16
	shares := make([]*handle.Shared[float64], goroutines)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(i int) {
			defer wg.Done()
			shares[i] = handle.Share(h)
		}(g)
	}
	wg.Wait()

	// All promotions must have agreed on a single id.
	require.Equal(t, int64(goroutines+1), shares[0].Refcount(),
		"heap holds one count, each share one more")
	for _, s := range shares {
		require.Same(t, h.Data(), s.Data())
		s.Release()
	}
	h.Release()
}
