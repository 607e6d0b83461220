// Package handle implements the five storage strategies behind arrays and
// views. Every variant answers the same queries (Data, Size, IsNull, At)
// and differs only in lifetime discipline:
//
//	Heap      sole owner of one allocation; deep clone, move by pointer theft
//	Stack     fixed inline capacity; a move is a copy, the source survives
//	SSO       inline below a size threshold, heap above it
//	Shared    refcount-governed; can adopt foreign memory with a release callback
//	Borrowed  no ownership; optionally remembers its parent Heap for promotion
//
// Constructing any owning variant with size 0 yields the canonical null
// handle without touching the allocator. This is a normalizing rule, not an
// optimization: the rest of the library treats IsNull and size-zero as
// interchangeable, so a handle is always either fully valid or fully empty.
//
// Element access is by flat index with no bounds validation beyond what the
// Go runtime imposes; the caller's layout is the bounds authority.
//
// Owning handles must be released explicitly via Release, exactly once.
// Releasing a null handle is a no-op. A Shared handle's release decrements
// the refcount and frees the block only when the count reaches zero.
package handle
