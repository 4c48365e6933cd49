package calc

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Field identifies one of the two addends.
type Field int

const (
	FieldA Field = iota
	FieldB
)

// String returns the user-facing label of the field.
func (f Field) String() string {
	switch f {
	case FieldA:
		return "Number 1"
	case FieldB:
		return "Number 2"
	default:
		return "Number ?"
	}
}

// Other returns the opposite field.
func (f Field) Other() Field {
	if f == FieldA {
		return FieldB
	}
	return FieldA
}

var maskPattern = regexp.MustCompile(`^-?\d*\.?\d*$`)

// MaskAccepts reports whether text is allowed while typing: an optional
// leading minus, digits and at most one decimal point.
func MaskAccepts(text string) bool {
	return text == "" || maskPattern.MatchString(text)
}

// ParseField validates a single field's raw text.
func ParseField(field Field, text string) (float64, *FieldError) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, &FieldError{Field: field, Kind: EmptyField}
	}

	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, &FieldError{Field: field, Kind: NotANumber}
	}

	return value, nil
}

// ComputeSum parses both fields and returns their sum. When either field is
// invalid the returned error is a *SumError describing every failing field.
func ComputeSum(a, b string) (float64, error) {
	left, errA := ParseField(FieldA, a)
	right, errB := ParseField(FieldB, b)

	if errA != nil || errB != nil {
		return 0, &SumError{A: errA, B: errB}
	}

	return left + right, nil
}

// FormatNumber renders a value using the shortest representation that
// round-trips, switching to exponent form for very large or very small
// magnitudes.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		return trimExponent(strconv.FormatFloat(v, 'e', -1, 64))
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

// trimExponent turns "1.5e-07" into "1.5e-7".
func trimExponent(s string) string {
	idx := strings.IndexByte(s, 'e')
	if idx < 0 || idx+2 >= len(s) {
		return s
	}

	mantissa, sign, digits := s[:idx], s[idx+1], strings.TrimLeft(s[idx+2:], "0")
	if digits == "" {
		digits = "0"
	}

	return mantissa + "e" + string(sign) + digits
}
