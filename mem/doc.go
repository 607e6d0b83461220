// Package mem provides the raw memory layer underneath storage handles.
//
// An Allocator hands out opaque Blocks (pointer + byte size). The System
// allocator draws from the Go heap; allocation failure is fatal and is not
// recovered at this layer. Every Block must be returned exactly once to the
// allocator that produced it.
//
// # Leak Detection
//
// NewLeakCheck wraps any Allocator and records every outstanding block so
// a test can assert that nothing remains live at the end of a run:
//
//	lc := mem.NewLeakCheck(mem.System{})
//	h := handle.NewHeapIn[float64](lc, 100)
//	h.Release()
//	if err := lc.Check(); err != nil {
//	    t.Fatal(err) // some block was never deallocated
//	}
//
// The wrapper changes nothing about allocation semantics; it only observes.
package mem
