package frequent

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyFiltersByThreshold(t *testing.T) {
	assert := assert.New(t)

	// n=7, k=3: threshold is 7/4 = 1, so count 3 passes and count 1 does not.
	seq := []int{1, 1, 1, 2, 2, 2, 3}
	got, err := Verify(seq, []int{1, 2, 3}, 3)
	assert.NoError(err)
	assert.Equal(map[int]uint64{1: 3, 2: 3}, got)
}

func TestVerifyThresholdDividesByKPlusOne(t *testing.T) {
	assert := assert.New(t)

	// n=7, k=3: the correct threshold 7/(3+1) = 1 keeps the count-2
	// elements; dividing by k instead would give 2 and wrongly drop all of
	// them.
	seq := []int{1, 1, 2, 2, 3, 3, 4}
	got, err := Verify(seq, []int{1, 2, 3, 4}, 3)
	assert.NoError(err)
	assert.Equal(map[int]uint64{1: 2, 2: 2, 3: 2}, got)
}

func TestVerifyDropsAbsentCandidates(t *testing.T) {
	assert := assert.New(t)

	got, err := Verify([]int{1, 1, 1}, []int{1, 9}, 2)
	assert.NoError(err)
	assert.Equal(map[int]uint64{1: 3}, got)
}

func TestVerifyIgnoresNonCandidates(t *testing.T) {
	assert := assert.New(t)

	// 5 dominates the sequence but is not a candidate, so it is never
	// counted and the lone candidate fails the threshold.
	got, err := Verify([]int{5, 5, 5, 5, 1}, []int{1}, 2)
	assert.NoError(err)
	assert.Empty(got)
}

func TestVerifyEmptySequence(t *testing.T) {
	_, err := Verify([]int{}, []int{1}, 2)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestVerifyRejectsZeroCapacity(t *testing.T) {
	_, err := Verify([]int{1, 2}, []int{1}, 0)
	assert.ErrorIs(t, err, ErrInvalidCapacity)
}

func TestVerifyIsPure(t *testing.T) {
	assert := assert.New(t)

	seq := []int{1, 1, 2, 3, 1}
	candidates := []int{1, 2}
	seqBefore := slices.Clone(seq)
	candidatesBefore := slices.Clone(candidates)

	first, err := Verify(seq, candidates, 2)
	assert.NoError(err)
	second, err := Verify(seq, candidates, 2)
	assert.NoError(err)

	assert.Equal(first, second)
	assert.Equal(seqBefore, seq)
	assert.Equal(candidatesBefore, candidates)
}
