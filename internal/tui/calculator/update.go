package calculator

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/sumcalc/internal/calc"
	"github.com/alexisbeaulieu97/sumcalc/internal/clipboard"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case clipboard.CopiedMsg:
		if msg.Err != nil {
			m.log.With("result", msg.Text).Warn(msg.Err, "copy to clipboard failed")
			return m, nil
		}
		m.log.With("result", msg.Text).Debug("result copied")
		m.notice = "Copied " + msg.Text
		return m, nil

	case ThemeSavedMsg:
		if msg.Err != nil {
			m.log.With("theme", msg.Theme.String()).Warn(msg.Err, "persist theme preference failed")
		}
		return m, nil
	}

	return m, nil
}

// handleKeyPress routes key presses
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyRunes {
		if m.typeRunes(msg.Runes) {
			m.notice = ""
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.NextField), key.Matches(msg, m.keys.PrevField):
		m.session.Focus(m.session.Focused().Other())

	case key.Matches(msg, m.keys.PadLeft):
		m.movePadCursor(-1)

	case key.Matches(msg, m.keys.PadRight):
		m.movePadCursor(1)

	case key.Matches(msg, m.keys.PadPress):
		tile := m.session.Deck()[m.padCursor]
		m.session.AppendDigit(tile.Value)
		m.notice = ""

	case key.Matches(msg, m.keys.Backspace):
		m.session.Backspace()
		m.notice = ""

	case key.Matches(msg, m.keys.Clear):
		m.session.Clear()
		m.notice = ""
		m.log.Debug("fields cleared")

	case key.Matches(msg, m.keys.Calculate):
		m.notice = ""
		if sum, ok := m.session.Compute(); ok {
			m.log.With("sum", calc.FormatNumber(sum)).Debug("sum computed")
		} else {
			m.log.Debug("sum rejected")
		}

	case key.Matches(msg, m.keys.Shuffle):
		m.session.Shuffle()
		m.log.WithFields(map[string]any{"order": m.session.Deck().Values()}).Debug("pad shuffled")

	case key.Matches(msg, m.keys.Copy):
		text, ok := m.session.ResultText()
		if !ok {
			return m, nil
		}
		return m, clipboard.CopyCmd(m.clipboard, text)

	case key.Matches(msg, m.keys.Theme):
		m.setTheme(m.theme.Toggle())
		m.log.With("theme", m.theme.String()).Info("theme changed")
		return m, saveThemeCmd(m.store, m.theme)
	}

	return m, nil
}

// typeRunes feeds typed characters into the focused field. It reports false
// when msg holds anything other than number characters so the key can be
// matched against the bindings instead.
func (m Model) typeRunes(runes []rune) bool {
	for _, r := range runes {
		if !isNumberRune(r) {
			return false
		}
	}

	focused := m.session.Focused()
	for _, r := range runes {
		text := m.session.Field(focused).Text
		m.session.Edit(focused, text+string(r))
	}
	return true
}

func isNumberRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == '-' || r == '.'
}
