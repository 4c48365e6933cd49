package deck

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialIsAscending(t *testing.T) {
	t.Parallel()

	d := NewSeededShuffler(1).Initial()

	if diff := cmp.Diff([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, d.Values()); diff != "" {
		t.Fatalf("initial deck order mismatch (-want +got):\n%s", diff)
	}
	require.True(t, d.Valid())
}

func TestShuffleAlwaysReturnsPermutation(t *testing.T) {
	t.Parallel()

	s := NewShuffler(nil)
	for i := 0; i < 1000; i++ {
		d := s.Shuffle()
		require.True(t, d.Valid(), "shuffle %d produced an invalid deck: %+v", i, d)

		values := d.Values()
		sort.Ints(values)
		require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, values)
	}
}

func TestShuffleIsDeterministicForSeed(t *testing.T) {
	t.Parallel()

	first := NewSeededShuffler(42)
	second := NewSeededShuffler(42)

	for i := 0; i < 5; i++ {
		if diff := cmp.Diff(first.Shuffle(), second.Shuffle()); diff != "" {
			t.Fatalf("seeded shuffles diverged (-first +second):\n%s", diff)
		}
	}
}

func TestRotationsCoverFullRange(t *testing.T) {
	t.Parallel()

	s := NewSeededShuffler(7)
	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		for _, tile := range s.Shuffle() {
			assert.GreaterOrEqual(t, tile.Rotation, -MaxRotation)
			assert.LessOrEqual(t, tile.Rotation, MaxRotation)
			seen[tile.Rotation] = true
		}
	}

	assert.Len(t, seen, 2*MaxRotation+1, "every rotation in range should eventually be drawn")
}

func TestShuffleVisitsEveryPosition(t *testing.T) {
	t.Parallel()

	s := NewShuffler(rand.NewPCG(3, 5))
	var positions [Size][Size]int
	for i := 0; i < 2000; i++ {
		for pos, tile := range s.Shuffle() {
			positions[tile.Value][pos]++
		}
	}

	for value := range positions {
		for pos, count := range positions[value] {
			assert.Positive(t, count, "digit %d never landed at position %d", value, pos)
		}
	}
}

func TestValidRejectsBrokenDecks(t *testing.T) {
	t.Parallel()

	d := NewSeededShuffler(9).Initial()
	d[3].Value = d[4].Value
	assert.False(t, d.Valid(), "duplicate digit should be rejected")

	d = NewSeededShuffler(9).Initial()
	d[0].Rotation = MaxRotation + 1
	assert.False(t, d.Valid(), "rotation out of range should be rejected")
}
