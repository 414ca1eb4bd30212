// Package vote implements the Boyer-Moore majority vote, the single-candidate
// special case of the Misra-Gries frequent-elements summary.
//
// The vote only produces an unverified candidate: if some element appears in
// the input strictly more than half the time, the candidate is that element,
// but when no majority exists the candidate is arbitrary. Callers must
// recount the candidate against the original input before trusting it (see
// frequent.MajorityElement).
package vote

import "github.com/goose-lang/std"

// Counter is the streaming form of the vote. The zero value is ready to use.
type Counter[T comparable] struct {
	candidate T
	count     uint64
}

// Observe feeds one element, in input order, into the vote.
//
// A matching element reinforces the current candidate; a non-matching element
// cancels one unit of its support. When support is exhausted the incoming
// element becomes the new candidate.
func (c *Counter[T]) Observe(x T) {
	if c.count == 0 {
		c.candidate = x
		c.count = 1
		return
	}
	if x == c.candidate {
		c.count = std.SumAssumeNoOverflow(c.count, 1)
	} else {
		c.count--
	}
}

// Candidate returns the surviving candidate. ok is false when the vote ended
// with no support for any candidate, in which case no majority element exists.
func (c *Counter[T]) Candidate() (T, bool) {
	return c.candidate, c.count > 0
}

// Candidate runs the vote over a whole slice.
func Candidate[T comparable](seq []T) (T, bool) {
	var c Counter[T]
	for _, x := range seq {
		c.Observe(x)
	}
	return c.Candidate()
}
