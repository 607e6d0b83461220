package ndarray

import (
	"unsafe"

	"github.com/wippyai/ndarray/layout"
)

// Storage is the element-access contract every handle variant implements.
// Access by flat index is not bounds-checked at this layer; the Layout held
// by the caller is the only bounds authority.
type Storage[T any] interface {
	// Data returns the address of element 0, or nil for a null handle.
	Data() *T

	// Size returns the element count. Size is 0 exactly when Data is nil.
	Size() int

	// IsNull reports whether the handle holds no storage.
	IsNull() bool

	// At returns the address of the element at flat offset i.
	At(i int) *T
}

// Desc is the flat descriptor handed to collaborators built on top of the
// core: element address, counts, strides, stride order, and the ownership
// flags they need to decide whether copying is required.
type Desc struct {
	Ptr        unsafe.Pointer
	Size       int
	Lengths    []int
	Strides    []int
	Order      []int
	Contiguous bool
	Owned      bool
	Shared     bool
}

// Describe builds a Desc from a handle and the layout addressing it.
// Ownership flags are derived from the handle when it exposes them.
func Describe[T any](s Storage[T], lay layout.Layout) Desc {
	d := Desc{
		Ptr:        unsafe.Pointer(s.Data()),
		Size:       s.Size(),
		Lengths:    lay.Lengths(),
		Strides:    lay.Strides(),
		Order:      lay.StrideOrder(),
		Contiguous: lay.IsContiguous(),
	}
	if o, ok := s.(interface{ Owns() bool }); ok {
		d.Owned = o.Owns()
	}
	if sh, ok := s.(interface{ Shared() bool }); ok {
		d.Shared = sh.Shared()
	}
	return d
}
