package frequent

import "github.com/goose-lang/std"

// Verify recounts each candidate exactly in a single pass over the original
// sequence and returns the candidates whose exact count strictly exceeds
// ⌊n/(k+1)⌋, mapped to that exact count. Elements outside the candidate set
// are ignored during the pass, which keeps it O(n) instead of O(n·k).
//
// The divisor is k+1, not k: ⌊n/(k+1)⌋ is the worst-case threshold for which
// the group-eviction scheme is correct, and dividing by k instead would admit
// wrong results on some inputs.
//
// Verify is a pure function of its inputs: it does not modify seq or
// candidates, and repeated calls return equal results. Fails with
// ErrInvalidCapacity if k < 1 and ErrEmptyInput on an empty sequence.
func Verify[T comparable](seq []T, candidates []T, k uint64) (map[T]uint64, error) {
	if k < 1 {
		return nil, ErrInvalidCapacity
	}
	if len(seq) == 0 {
		return nil, ErrEmptyInput
	}
	exact := make(map[T]uint64, len(candidates))
	for _, x := range candidates {
		exact[x] = 0
	}
	for _, x := range seq {
		if c, ok := exact[x]; ok {
			exact[x] = std.SumAssumeNoOverflow(c, 1)
		}
	}
	threshold := uint64(len(seq)) / (k + 1)
	for x, c := range exact {
		if c <= threshold {
			delete(exact, x)
		}
	}
	return exact, nil
}
