//go:build anagram_debug

package solver

import "fmt"

// InternalInvariantViolation marks a failure of an invariant the
// solver itself is supposed to maintain (§3.2/§4.3 of the design),
// as opposed to bad caller input. It is only ever raised in builds
// tagged anagram_debug; release builds pay nothing for these checks.
type InternalInvariantViolation struct {
	Detail string
}

func (e InternalInvariantViolation) Error() string {
	return fmt.Sprintf("anagramtree: internal invariant violated: %s", e.Detail)
}

// assertf panics with an InternalInvariantViolation when cond is
// false. It exists only in anagram_debug builds.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(InternalInvariantViolation{Detail: fmt.Sprintf(format, args...)})
	}
}
