package mem

import (
	"fmt"
	"sync"
	"unsafe"

	"go.uber.org/zap"
)

// Stats summarizes the traffic seen by a LeakCheck allocator.
type Stats struct {
	TotalAllocations  uint64
	TotalBytes        uint64
	LargestAllocation uintptr
	Outstanding       int
	OutstandingBytes  uintptr
}

// LeakCheck wraps an Allocator and records every outstanding block.
// It is safe for concurrent use. Allocation semantics are unchanged;
// the wrapper only observes.
type LeakCheck struct {
	inner Allocator

	mu      sync.Mutex
	live    map[unsafe.Pointer]uintptr
	allocs  uint64
	bytes   uint64
	largest uintptr
}

// NewLeakCheck wraps inner with outstanding-block tracking.
func NewLeakCheck(inner Allocator) *LeakCheck {
	return &LeakCheck{
		inner: inner,
		live:  make(map[unsafe.Pointer]uintptr),
	}
}

// Allocate returns a tracked block of n bytes.
func (l *LeakCheck) Allocate(n uintptr) Block {
	return l.track(l.inner.Allocate(n))
}

// AllocateZero returns a tracked zero-initialized block of n bytes.
func (l *LeakCheck) AllocateZero(n uintptr) Block {
	return l.track(l.inner.AllocateZero(n))
}

// Deallocate releases a tracked block. Releasing a block the wrapper never
// produced, or releasing the same block twice, panics: both are ownership
// bugs this wrapper exists to surface.
func (l *LeakCheck) Deallocate(b Block) {
	if b.IsNull() {
		l.inner.Deallocate(b)
		return
	}

	l.mu.Lock()
	if _, ok := l.live[b.Ptr]; !ok {
		l.mu.Unlock()
		panic(fmt.Sprintf("mem: deallocate of unknown or already-freed block %p (%d bytes)", b.Ptr, b.Size))
	}
	delete(l.live, b.Ptr)
	l.mu.Unlock()

	l.inner.Deallocate(b)
}

func (l *LeakCheck) track(b Block) Block {
	if b.IsNull() {
		return b
	}
	l.mu.Lock()
	l.live[b.Ptr] = b.Size
	l.allocs++
	l.bytes += uint64(b.Size)
	if b.Size > l.largest {
		l.largest = b.Size
	}
	l.mu.Unlock()
	return b
}

// Outstanding returns the number of blocks not yet deallocated.
func (l *LeakCheck) Outstanding() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.live)
}

// Stats returns a snapshot of allocation statistics.
func (l *LeakCheck) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := Stats{
		TotalAllocations:  l.allocs,
		TotalBytes:        l.bytes,
		LargestAllocation: l.largest,
		Outstanding:       len(l.live),
	}
	for _, size := range l.live {
		s.OutstandingBytes += size
	}
	return s
}

// Check returns an error when any block remains outstanding, logging each
// leaked block. A nil result means every allocation was released.
func (l *LeakCheck) Check() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.live) == 0 {
		return nil
	}

	var leaked uintptr
	for ptr, size := range l.live {
		leaked += size
		Logger().Warn("leaked block",
			zap.String("ptr", fmt.Sprintf("%p", ptr)),
			zap.Uint64("bytes", uint64(size)),
		)
	}
	return fmt.Errorf("mem: %d block(s) outstanding, %d bytes leaked", len(l.live), leaked)
}
