// Package frequent finds all elements of a finite sequence whose frequency
// exceeds a threshold, using the Misra-Gries summary: a single streaming pass
// over the input with O(k) auxiliary space, followed by an exact verification
// pass over the same input.
//
// The summary guarantees no false negatives under the default GroupDecrement
// policy: every element occurring strictly more than ⌊n/k⌋ times is present
// among the candidates after the stream. It may retain infrequent elements,
// which is why the verification pass (Verify) is mandatory before reporting
// results.
package frequent

import (
	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"
)

// Policy selects how a full summary resolves a fight: the step taken when a
// new, untracked element arrives and all k-1 slots are occupied. In both
// policies the incoming element is discarded; the policies differ in which
// tracked entries are evicted, which changes the spurious candidates that
// survive. For k == 2 there is only one slot and the policies coincide (this
// is plain Boyer-Moore majority vote).
type Policy int

const (
	// GroupDecrement decrements every tracked entry by one and evicts all
	// entries whose count reaches zero. This is the textbook Misra-Gries
	// step and the policy under which the ⌊n/k⌋ capture guarantee holds.
	GroupDecrement Policy = iota
	// SingleEvict decrements every tracked entry by one but evicts at most
	// one entry per fight, the first seen at zero. Other zero-count entries
	// stay tracked, floored at zero, until a later fight evicts them; they
	// remain candidates and are cleaned up by verification.
	SingleEvict
)

// Summary is a bounded approximate frequency sketch over elements of type T.
// It tracks at most k-1 candidates at any point during the stream.
//
// A Summary is privately owned by its constructing caller; it is not safe for
// concurrent use.
type Summary[T comparable] struct {
	k      uint64
	policy Policy
	counts map[T]uint64
}

// NewSummary creates an empty summary with capacity parameter k, using the
// GroupDecrement policy. Fails with ErrInvalidCapacity if k < 1.
//
// k == 1 is valid but degenerate: capacity is k-1 == 0, so nothing is ever
// tracked and Candidates is always empty.
func NewSummary[T comparable](k uint64) (*Summary[T], error) {
	return NewSummaryWithPolicy[T](k, GroupDecrement)
}

// NewSummaryWithPolicy is NewSummary with an explicit fight policy.
func NewSummaryWithPolicy[T comparable](k uint64, policy Policy) (*Summary[T], error) {
	if k < 1 {
		return nil, ErrInvalidCapacity
	}
	return newSummary[T](k, policy), nil
}

// newSummary assumes k has already been validated.
func newSummary[T comparable](k uint64, policy Policy) *Summary[T] {
	return &Summary[T]{
		k:      k,
		policy: policy,
		counts: make(map[T]uint64, k-1),
	}
}

// Observe feeds one element, in input order, into the summary.
func (s *Summary[T]) Observe(x T) {
	if c, ok := s.counts[x]; ok {
		s.counts[x] = std.SumAssumeNoOverflow(c, 1)
		return
	}
	if uint64(len(s.counts)) < s.k-1 {
		s.counts[x] = 1
		return
	}
	// Full and x is untracked: x is collectively defeated by the tracked
	// entries and never inserted this round. If x is truly frequent it
	// reappears and is captured in a later round.
	s.fight()
	primitive.Assert(uint64(len(s.counts)) <= s.k-1)
}

func (s *Summary[T]) fight() {
	if s.policy == GroupDecrement {
		for y, c := range s.counts {
			if c <= 1 {
				delete(s.counts, y)
			} else {
				s.counts[y] = c - 1
			}
		}
		return
	}
	evicted := false
	for y, c := range s.counts {
		if c <= 1 && !evicted {
			delete(s.counts, y)
			evicted = true
		} else if c >= 1 {
			s.counts[y] = c - 1
		}
	}
}

// Candidates returns the tracked elements, at most k-1 of them, in no
// particular order. Under GroupDecrement every element of the input with
// true frequency above ⌊n/k⌋ is included; elements below that may be too.
// Meaningful only once the full stream has been observed.
func (s *Summary[T]) Candidates() []T {
	xs := make([]T, 0, len(s.counts))
	for x := range s.counts {
		xs = append(xs, x)
	}
	return xs
}

// Count returns the summary's approximate count for x and whether x is
// currently tracked. The approximate count never exceeds the true count, and
// under GroupDecrement undercounts it by at most ⌊n/k⌋.
func (s *Summary[T]) Count(x T) (uint64, bool) {
	c, ok := s.counts[x]
	return c, ok
}

// Size returns the number of tracked candidates, always at most k-1.
func (s *Summary[T]) Size() uint64 {
	return uint64(len(s.counts))
}

// K returns the capacity parameter the summary was constructed with.
func (s *Summary[T]) K() uint64 {
	return s.k
}
