package frequent

import (
	"errors"

	"frequent_elements/vote"
)

var (
	// ErrInvalidCapacity is returned when the capacity parameter k is below 1.
	ErrInvalidCapacity = errors.New("frequent: capacity k must be at least 1")
	// ErrEmptyInput is returned for a zero-length sequence, over which no
	// majority or frequent element can exist.
	ErrEmptyInput = errors.New("frequent: empty input sequence")
	// ErrNoMajority is returned by MajorityElement when no element occurs
	// more than ⌊n/2⌋ times. This is an expected outcome, not corruption.
	ErrNoMajority = errors.New("frequent: no majority element")
)

// FromSequence builds a summary with capacity k and observes every element of
// seq in order. Equivalent to constructing with NewSummary and calling
// Observe in a loop.
func FromSequence[T comparable](seq []T, k uint64) (*Summary[T], error) {
	return FromSequenceWithPolicy(seq, k, GroupDecrement)
}

// FromSequenceWithPolicy is FromSequence with an explicit fight policy.
func FromSequenceWithPolicy[T comparable](seq []T, k uint64, policy Policy) (*Summary[T], error) {
	s, err := NewSummaryWithPolicy[T](k, policy)
	if err != nil {
		return nil, err
	}
	for _, x := range seq {
		s.Observe(x)
	}
	return s, nil
}

// MostFrequent returns every element of seq whose exact count strictly
// exceeds ⌊n/(k+1)⌋, mapped to that count, by composing the summary pass with
// the verification pass. An empty result map is a valid outcome: not every
// sequence has frequent elements.
//
// Fails with ErrInvalidCapacity if k < 1 and ErrEmptyInput on an empty
// sequence.
func MostFrequent[T comparable](seq []T, k uint64) (map[T]uint64, error) {
	return MostFrequentWithPolicy(seq, k, GroupDecrement)
}

// MostFrequentWithPolicy is MostFrequent with an explicit fight policy. The
// policy changes which spurious candidates reach verification, never the
// verified result.
func MostFrequentWithPolicy[T comparable](seq []T, k uint64, policy Policy) (map[T]uint64, error) {
	if k < 1 {
		return nil, ErrInvalidCapacity
	}
	if len(seq) == 0 {
		return nil, ErrEmptyInput
	}
	if k >= uint64(len(seq)) {
		// Every distinct element fits within k-1 slots without a single
		// fight, so the summary pass cannot evict anything; send the whole
		// distinct set straight to verification.
		return Verify(seq, distinct(seq), k)
	}
	s := newSummary[T](k, policy)
	for _, x := range seq {
		s.Observe(x)
	}
	return Verify(seq, s.Candidates(), k)
}

// MajorityElement returns the element occurring strictly more than ⌊n/2⌋
// times in seq, the k=2 case of the frequent-elements problem. The scan phase
// is the Boyer-Moore vote; the surviving candidate is then recounted exactly,
// since the vote alone can report a spurious candidate when no majority
// exists.
//
// Fails with ErrEmptyInput on an empty sequence and ErrNoMajority when no
// element passes the exact ⌊n/2⌋ check.
func MajorityElement[T comparable](seq []T) (T, error) {
	var zero T
	if len(seq) == 0 {
		return zero, ErrEmptyInput
	}
	cand, ok := vote.Candidate(seq)
	if !ok {
		return zero, ErrNoMajority
	}
	var count uint64
	for _, x := range seq {
		if x == cand {
			count++
		}
	}
	if count <= uint64(len(seq))/2 {
		return zero, ErrNoMajority
	}
	return cand, nil
}

// distinct returns the distinct elements of seq in first-appearance order.
func distinct[T comparable](seq []T) []T {
	seen := make(map[T]bool, len(seq))
	xs := make([]T, 0, len(seq))
	for _, x := range seq {
		if !seen[x] {
			seen[x] = true
			xs = append(xs, x)
		}
	}
	return xs
}
