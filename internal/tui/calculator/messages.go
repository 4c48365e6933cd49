package calculator

import (
	"github.com/alexisbeaulieu97/sumcalc/internal/theme"
)

// ThemeSavedMsg reports the outcome of persisting the theme preference.
type ThemeSavedMsg struct {
	Theme theme.Theme
	Err   error
}
