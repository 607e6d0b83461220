package interop

import (
	"context"
	"fmt"
	"unsafe"

	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/ndarray/handle"
)

// AdoptGuestMemory wraps a region of a WASM module's linear memory as
// shared storage of count elements, starting at byte offset off. The
// region is a live view into guest memory; writes through the handle are
// visible to the guest. release is invoked when the last reference drops.
// A region outside the memory's bounds is an error.
func AdoptGuestMemory[T handle.Elem](mem api.Memory, off, count uint32, release func()) (*handle.Shared[T], error) {
	var zero T
	byteCount := count * uint32(unsafe.Sizeof(zero))

	buf, ok := mem.Read(off, byteCount)
	if !ok {
		return nil, fmt.Errorf("interop: guest memory region [%d, %d+%d) out of bounds (size %d)",
			off, off, byteCount, mem.Size())
	}
	return AdoptBytes[T](buf, int(count), release)
}

// GuestFree returns a release callback invoking a guest deallocation
// export, canonical-ABI style: free(ptr, size, align). Failures are logged,
// not propagated: release runs on the last handle drop, where no caller
// can observe an error.
func GuestFree(ctx context.Context, free api.Function, ptr, size, align uint32) func() {
	return func() {
		if _, err := free.Call(ctx, uint64(ptr), uint64(size), uint64(align)); err != nil {
			Logger().Warn("guest free failed",
				zap.Uint32("ptr", ptr),
				zap.Uint32("size", size),
				zap.Error(err),
			)
		}
	}
}
