// Package debug gates invariant assertions behind the "ndarraydebug" build
// tag. Release builds compile the checks out entirely; diagnostic builds
// panic on the first violated invariant, which is always a programming
// error rather than a runtime condition.
package debug

// Assert panics with msg when cond is false and assertions are enabled.
func Assert(cond bool, msg string) {
	if Enabled && !cond {
		panic("ndarray: invariant violated: " + msg)
	}
}
