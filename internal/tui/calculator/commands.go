package calculator

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/sumcalc/internal/theme"
)

// saveThemeCmd writes the preference off the event loop.
func saveThemeCmd(store ThemeSaver, t theme.Theme) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		return ThemeSavedMsg{Theme: t, Err: store.Save(t)}
	}
}
