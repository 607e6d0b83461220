// Package array provides a thin container layer composing a storage handle
// with a layout. It is the first-party consumer of the core contract: all
// element access goes index tuple → layout → flat offset → handle.
//
// Array owns heap storage and supports deep cloning, resizing (which always
// derives a fresh layout from the new lengths), and promotion of its
// storage into shared ownership. View is a non-owning window over an
// Array's storage, possibly under a different layout (e.g. a transpose);
// it borrows, never manages lifetime, and stays valid only while the
// originating array is live.
//
// Numerical kernels, expression templates, and serialization deliberately
// live elsewhere; this package only demonstrates and exercises the
// storage/addressing substrate.
package array
