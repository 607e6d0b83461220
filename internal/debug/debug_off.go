//go:build !ndarraydebug

package debug

// Enabled reports whether invariant assertions are compiled in.
const Enabled = false
