// Package session holds the interaction state of one calculator session:
// the two field states, which field has focus, the last result and the deck.
package session

import (
	"errors"
	"strconv"

	"github.com/alexisbeaulieu97/sumcalc/internal/calc"
	"github.com/alexisbeaulieu97/sumcalc/internal/deck"
)

// FieldState is the raw text of a field and its inline error message.
type FieldState struct {
	Text string
	Err  string
}

// Session is the sequential state machine behind the calculator view.
// It is not safe for concurrent use.
type Session struct {
	fields    [2]FieldState
	focus     calc.Field
	result    float64
	hasResult bool
	deck      deck.Deck
	shuffler  *deck.Shuffler
}

// New creates a session with empty fields, focus on field A and an initial
// ascending deck drawn from shuffler.
func New(shuffler *deck.Shuffler) *Session {
	if shuffler == nil {
		shuffler = deck.NewShuffler(nil)
	}
	return &Session{
		focus:    calc.FieldA,
		deck:     shuffler.Initial(),
		shuffler: shuffler,
	}
}

// Focused returns the field receiving pad input.
func (s *Session) Focused() calc.Field {
	return s.focus
}

// Field returns the state of field f.
func (s *Session) Field(f calc.Field) FieldState {
	return s.fields[index(f)]
}

// Result returns the last computed sum, if any.
func (s *Session) Result() (float64, bool) {
	return s.result, s.hasResult
}

// ResultText renders the result for display and copying.
func (s *Session) ResultText() (string, bool) {
	if !s.hasResult {
		return "", false
	}
	return calc.FormatNumber(s.result), true
}

// Deck returns the current tile layout.
func (s *Session) Deck() deck.Deck {
	return s.deck
}

// Focus moves pad input to f.
func (s *Session) Focus(f calc.Field) {
	s.focus = f
}

// Edit replaces the text of f when text passes the input mask and reports
// whether it did. Rejected edits leave the field untouched.
func (s *Session) Edit(f calc.Field, text string) bool {
	if !calc.MaskAccepts(text) {
		return false
	}
	field := &s.fields[index(f)]
	field.Text = text
	field.Err = ""
	return true
}

// AppendDigit appends d to the focused field. Values outside 0..9 are ignored.
func (s *Session) AppendDigit(d int) bool {
	if d < 0 || d > 9 {
		return false
	}
	field := &s.fields[index(s.focus)]
	field.Text += strconv.Itoa(d)
	field.Err = ""
	return true
}

// Backspace drops the last character of the focused field.
func (s *Session) Backspace() {
	field := &s.fields[index(s.focus)]
	if runes := []rune(field.Text); len(runes) > 0 {
		field.Text = string(runes[:len(runes)-1])
	}
	field.Err = ""
}

// Clear empties both fields, drops the result and returns focus to field A.
func (s *Session) Clear() {
	s.fields = [2]FieldState{}
	s.result = 0
	s.hasResult = false
	s.focus = calc.FieldA
}

// Compute validates both fields and stores the sum. On failure every
// offending field gets its message and the previous result is discarded.
func (s *Session) Compute() (float64, bool) {
	sum, err := calc.ComputeSum(s.fields[0].Text, s.fields[1].Text)

	var sumErr *calc.SumError
	if err != nil && errors.As(err, &sumErr) {
		s.fields[0].Err = sumErr.For(calc.FieldA).Message()
		s.fields[1].Err = sumErr.For(calc.FieldB).Message()
		s.result = 0
		s.hasResult = false
		return 0, false
	}

	s.fields[0].Err = ""
	s.fields[1].Err = ""
	s.result = sum
	s.hasResult = true
	return sum, true
}

// Shuffle draws a new tile layout.
func (s *Session) Shuffle() {
	s.deck = s.shuffler.Shuffle()
}

func index(f calc.Field) int {
	if f == calc.FieldB {
		return 1
	}
	return 0
}
