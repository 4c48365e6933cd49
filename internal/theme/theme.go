// Package theme models the light/dark preference and persists it between
// sessions.
package theme

import (
	"errors"
	"fmt"
	"strings"
)

// Theme is the colour scheme of the interface.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// ErrInvalidTheme is returned when a value is neither "light" nor "dark".
var ErrInvalidTheme = errors.New("invalid theme")

// Parse converts user input into a Theme.
func Parse(value string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(value))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	default:
		return "", fmt.Errorf("%w %q: must be %q or %q", ErrInvalidTheme, value, Light, Dark)
	}
}

// Valid reports whether t is one of the two known themes.
func (t Theme) Valid() bool {
	return t == Light || t == Dark
}

// Toggle returns the opposite theme. Anything that is not Light toggles to
// Light.
func (t Theme) Toggle() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

func (t Theme) String() string {
	return string(t)
}

// Fallback names the source used when no preference has been stored.
type Fallback string

const (
	FallbackSystem Fallback = "system"
	FallbackLight  Fallback = "light"
	FallbackDark   Fallback = "dark"
)

// Resolve picks the startup theme: the stored preference when present,
// otherwise the fallback. For FallbackSystem, systemDark reports whether the
// host prefers a dark scheme.
func Resolve(stored Theme, found bool, fallback Fallback, systemDark func() bool) Theme {
	if found && stored.Valid() {
		return stored
	}

	switch fallback {
	case FallbackLight:
		return Light
	case FallbackDark:
		return Dark
	}

	if systemDark != nil && systemDark() {
		return Dark
	}
	return Light
}
