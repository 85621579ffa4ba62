// Package budget implements the optional recursion-depth fault: a small
// counter threaded through evaluation, checking, and derivation so
// that a pathological (non-terminating, or merely very deep) term can be
// made to fail fast with a DepthExceeded diagnostic instead of exhausting
// the host stack. Unset, the budget is unlimited and costs one increment
// per structural descent.
package budget

import "github.com/cwbudde/idtlc/internal/diag"

// Budget tracks recursion depth against an optional ceiling. The zero value
// is unlimited: every call site may pass a Budget by value since Enter
// returns a new Budget rather than mutating in place, matching the
// immutable-term discipline used everywhere else in the kernel.
type Budget struct {
	max   int
	depth int
}

// New returns a Budget that faults once depth exceeds max. max <= 0 means
// unlimited.
func New(max int) Budget {
	return Budget{max: max}
}

// Enter returns a Budget one level deeper, or an error if that exceeds the
// configured ceiling.
func (b Budget) Enter() (Budget, error) {
	next := Budget{max: b.max, depth: b.depth + 1}
	if b.max > 0 && next.depth > b.max {
		return next, &diag.KernelError{Kind: diag.DepthExceeded, Message: "recursion depth exceeded"}
	}
	return next, nil
}
