// Package rtable implements the process-wide reference-count table backing
// shared storage handles.
//
// Counts live in one central table keyed by small integer ids rather than
// in a counter embedded next to each block. The indirection lets a plain
// heap handle be promoted to shared ownership after the fact: the handle
// acquires an id lazily, the first time sharing is requested, so the common
// unshared case pays no refcount overhead at all.
//
// ID 0 is reserved and means "not shared". Ids whose count has dropped to
// zero are recycled through a free list; a recycled id can never alias a
// live one because recycling only happens after the final decref.
//
// All operations are safe under concurrent invocation. The critical section
// is a mutex around a small integer mutation and is short by construction.
package rtable
