package session

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/sumcalc/internal/calc"
	"github.com/alexisbeaulieu97/sumcalc/internal/deck"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return New(deck.NewSeededShuffler(11))
}

func TestNewSessionDefaults(t *testing.T) {
	s := newTestSession(t)

	assert.Equal(t, calc.FieldA, s.Focused())
	assert.Equal(t, FieldState{}, s.Field(calc.FieldA))
	assert.Equal(t, FieldState{}, s.Field(calc.FieldB))

	_, ok := s.Result()
	assert.False(t, ok)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, s.Deck().Values())
}

func TestFocusOnlyChangesFocus(t *testing.T) {
	s := newTestSession(t)
	require.True(t, s.Edit(calc.FieldA, "5"))

	s.Focus(calc.FieldB)

	assert.Equal(t, calc.FieldB, s.Focused())
	assert.Equal(t, "5", s.Field(calc.FieldA).Text)
}

func TestAppendDigitTargetsFocusedField(t *testing.T) {
	s := newTestSession(t)

	require.True(t, s.AppendDigit(1))
	require.True(t, s.AppendDigit(0))
	s.Focus(calc.FieldB)
	require.True(t, s.AppendDigit(7))

	assert.Equal(t, "10", s.Field(calc.FieldA).Text)
	assert.Equal(t, "7", s.Field(calc.FieldB).Text)

	assert.False(t, s.AppendDigit(10))
	assert.False(t, s.AppendDigit(-1))
	assert.Equal(t, "7", s.Field(calc.FieldB).Text)
}

func TestAppendDigitReadsBackConcatenation(t *testing.T) {
	s := newTestSession(t)
	require.True(t, s.Edit(calc.FieldA, "-3."))

	for d := 0; d <= 9; d++ {
		before := s.Field(calc.FieldA).Text
		s.AppendDigit(d)
		assert.Equal(t, before+string(rune('0'+d)), s.Field(calc.FieldA).Text)
	}
}

func TestBackspace(t *testing.T) {
	s := newTestSession(t)
	require.True(t, s.Edit(calc.FieldA, "12.5"))

	s.Backspace()
	assert.Equal(t, "12.", s.Field(calc.FieldA).Text)

	s.Focus(calc.FieldB)
	s.Backspace()
	assert.Equal(t, "", s.Field(calc.FieldB).Text, "backspace on empty field stays empty")
	assert.Equal(t, "", s.Field(calc.FieldB).Err)
}

func TestEditAppliesMask(t *testing.T) {
	s := newTestSession(t)
	require.True(t, s.Edit(calc.FieldA, "4"))

	assert.False(t, s.Edit(calc.FieldA, "4a"))
	assert.False(t, s.Edit(calc.FieldA, "--4"))
	assert.False(t, s.Edit(calc.FieldA, "4.2.1"))
	assert.Equal(t, "4", s.Field(calc.FieldA).Text)

	assert.True(t, s.Edit(calc.FieldA, ""))
	assert.Equal(t, "", s.Field(calc.FieldA).Text)
}

func TestEditsClearOnlyTheirOwnError(t *testing.T) {
	s := newTestSession(t)

	_, ok := s.Compute()
	require.False(t, ok)
	require.Equal(t, "Number 1 cannot be empty", s.Field(calc.FieldA).Err)
	require.Equal(t, "Number 2 cannot be empty", s.Field(calc.FieldB).Err)

	assert.False(t, s.Edit(calc.FieldA, "x"), "rejected edit keeps the error")
	assert.Equal(t, "Number 1 cannot be empty", s.Field(calc.FieldA).Err)

	require.True(t, s.Edit(calc.FieldA, "1"))
	assert.Equal(t, "", s.Field(calc.FieldA).Err)
	assert.Equal(t, "Number 2 cannot be empty", s.Field(calc.FieldB).Err)

	s.Focus(calc.FieldB)
	s.Backspace()
	assert.Equal(t, "", s.Field(calc.FieldB).Err)
}

func TestEditingNeverComputes(t *testing.T) {
	s := newTestSession(t)
	s.Edit(calc.FieldA, "1")
	s.Edit(calc.FieldB, "2")
	s.AppendDigit(3)

	_, ok := s.Result()
	assert.False(t, ok)
}

func TestClearResetsEverything(t *testing.T) {
	s := newTestSession(t)
	s.Edit(calc.FieldA, "1")
	s.Edit(calc.FieldB, "2")
	_, ok := s.Compute()
	require.True(t, ok)
	s.Focus(calc.FieldB)
	s.Edit(calc.FieldB, "-")
	s.Compute()

	s.Clear()

	assert.Equal(t, FieldState{}, s.Field(calc.FieldA))
	assert.Equal(t, FieldState{}, s.Field(calc.FieldB))
	assert.Equal(t, calc.FieldA, s.Focused())
	_, ok = s.Result()
	assert.False(t, ok)
}

func TestComputeKeepsFocus(t *testing.T) {
	s := newTestSession(t)
	s.Edit(calc.FieldA, "1")
	s.Edit(calc.FieldB, "1")
	s.Focus(calc.FieldB)

	s.Compute()

	assert.Equal(t, calc.FieldB, s.Focused())
}

func TestCalculateScenario(t *testing.T) {
	s := newTestSession(t)

	require.True(t, s.Edit(calc.FieldA, "10"))
	require.True(t, s.Edit(calc.FieldB, "32"))

	sum, ok := s.Compute()
	require.True(t, ok)
	assert.Equal(t, 42.0, sum)
	text, ok := s.ResultText()
	require.True(t, ok)
	assert.Equal(t, "42", text)

	// "abc" cannot get past the live mask, a lone minus can.
	assert.False(t, s.Edit(calc.FieldA, "abc"))
	require.True(t, s.Edit(calc.FieldA, "-"))

	_, ok = s.Compute()
	require.False(t, ok)
	assert.Equal(t, "Please enter a valid number", s.Field(calc.FieldA).Err)
	assert.Equal(t, "", s.Field(calc.FieldB).Err)

	_, ok = s.Result()
	assert.False(t, ok, "a failed computation must not retain 42")
	_, ok = s.ResultText()
	assert.False(t, ok)
}

func TestTrailingIncompleteInputIsNotANumber(t *testing.T) {
	for _, text := range []string{"-", ".", "-."} {
		s := newTestSession(t)
		require.True(t, s.Edit(calc.FieldA, text))
		require.True(t, s.Edit(calc.FieldB, "1"))

		_, ok := s.Compute()
		assert.False(t, ok, text)
		assert.Equal(t, "Please enter a valid number", s.Field(calc.FieldA).Err, text)
	}
}

func TestShuffleKeepsPermutation(t *testing.T) {
	s := newTestSession(t)

	for i := 0; i < 200; i++ {
		s.Shuffle()
		values := s.Deck().Values()
		sort.Ints(values)
		require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, values)
	}
}

func TestNewWithoutShuffler(t *testing.T) {
	s := New(nil)
	assert.True(t, s.Deck().Valid())
	s.Shuffle()
	assert.True(t, s.Deck().Valid())
}
