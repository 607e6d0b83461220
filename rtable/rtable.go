package rtable

import (
	"sync"

	"github.com/wippyai/ndarray/internal/debug"
)

// Table maps small integer ids to live-reference counts.
// The zero value is not usable; call New.
type Table struct {
	mu     sync.Mutex
	counts []int64 // counts[0] is unused, id 0 is reserved
	free   []int64
}

// New creates an empty reference-count table.
func New() *Table {
	return &Table{
		counts: make([]int64, 1, 64),
	}
}

// Get allocates a fresh id with count 1.
func (t *Table) Get() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	if n := len(t.free); n > 0 {
		id := t.free[n-1]
		t.free = t.free[:n-1]
		t.counts[id] = 1
		return id
	}

	t.counts = append(t.counts, 1)
	return int64(len(t.counts) - 1)
}

// Incref increments the count for id. The id must have been obtained from
// Get and still be live; the calling handle guarantees this through its own
// invariants.
func (t *Table) Incref(id int64) {
	t.mu.Lock()
	debug.Assert(id > 0 && id < int64(len(t.counts)), "incref of unknown id")
	debug.Assert(t.counts[id] > 0, "incref of dead id")
	t.counts[id]++
	t.mu.Unlock()
}

// Decref decrements the count for id and returns true exactly when the
// count reaches zero. On a true return the caller owns the underlying
// memory's release, and the id is recycled.
func (t *Table) Decref(id int64) bool {
	t.mu.Lock()
	debug.Assert(id > 0 && id < int64(len(t.counts)), "decref of unknown id")
	debug.Assert(t.counts[id] > 0, "decref of dead id")
	t.counts[id]--
	last := t.counts[id] == 0
	if last {
		t.free = append(t.free, id)
	}
	t.mu.Unlock()
	return last
}

// Refcount returns the current count for id. Diagnostic use.
func (t *Table) Refcount(id int64) int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if id <= 0 || id >= int64(len(t.counts)) {
		return 0
	}
	return t.counts[id]
}

// Live returns the number of ids with a nonzero count. Diagnostic use.
func (t *Table) Live() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := 0
	for _, c := range t.counts[1:] {
		if c > 0 {
			n++
		}
	}
	return n
}

// Default is the process-wide table used by storage handles.
var Default = New()

// Get allocates a fresh id with count 1 in the default table.
func Get() int64 { return Default.Get() }

// Incref increments the count for id in the default table.
func Incref(id int64) { Default.Incref(id) }

// Decref decrements the count for id in the default table, returning true
// when the count reaches zero.
func Decref(id int64) bool { return Default.Decref(id) }

// Refcount returns the current count for id in the default table.
func Refcount(id int64) int64 { return Default.Refcount(id) }
