package interop

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/wippyai/ndarray/handle"
)

var (
	ErrShortBuffer = errors.New("interop: buffer too small for element count")
	ErrMisaligned  = errors.New("interop: buffer not aligned for element type")
)

// AdoptBytes wraps a foreign byte region as shared storage of count
// elements. The region is reinterpreted in place, not copied, so it must
// remain valid until the returned handle's last reference is released, at
// which point release (if non-nil) is invoked exactly once.
//
// A zero count yields the canonical null handle and release is never
// called.
func AdoptBytes[T handle.Elem](buf []byte, count int, release func()) (*handle.Shared[T], error) {
	if count == 0 {
		return handle.AdoptForeign[T](nil, 0, nil), nil
	}

	var zero T
	size, align := unsafe.Sizeof(zero), unsafe.Alignof(zero)

	need := uintptr(count) * size
	if uintptr(len(buf)) < need {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrShortBuffer, len(buf), need)
	}

	ptr := unsafe.Pointer(unsafe.SliceData(buf))
	if uintptr(ptr)%align != 0 {
		return nil, fmt.Errorf("%w: %p not %d-byte aligned", ErrMisaligned, ptr, align)
	}

	return handle.AdoptForeign[T](ptr, count, release), nil
}
