package calculator

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/sumcalc/internal/calc"
	"github.com/alexisbeaulieu97/sumcalc/internal/components"
	"github.com/alexisbeaulieu97/sumcalc/internal/theme"
)

const (
	appTitle        = "Sum Calculator"
	inputHint       = "Enter a number"
	resultEmptyText = "--"
)

// View renders the calculator
func (m Model) View() string {
	sections := []string{
		m.renderHeader(),
		components.InfoAlert("Currently editing: " + m.session.Focused().String()).View(),
		"",
		m.renderEquation(),
		"",
		m.renderPad(),
		m.renderControls(),
	}

	if m.notice != "" {
		sections = append(sections, noticeStyle().Render(m.notice))
	}
	sections = append(sections, "", m.help.View(m.keys))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	surface := components.GetTheme().Palette.Surface
	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Left, lipgloss.Top,
		lipgloss.NewStyle().Padding(1, 2).Render(content),
		lipgloss.WithWhitespaceBackground(surface.Base),
	)
}

func (m Model) renderHeader() string {
	indicator := "☀ light"
	if m.theme == theme.Dark {
		indicator = "☾ dark"
	}
	return titleStyle().Render(appTitle) + "  " + placeholderStyle().Render(indicator)
}

// renderEquation lays out "[Number 1] + [Number 2] = Result: n" with each
// field's error directly under it.
func (m Model) renderEquation() string {
	parts := make([]string, 0, 5)
	for i, field := range []calc.Field{calc.FieldA, calc.FieldB} {
		if i > 0 {
			parts = append(parts, operatorStyle().Render("+"))
		}
		state := m.session.Field(field)
		input := components.Input{
			Label:       field.String(),
			Value:       state.Text,
			Placeholder: inputHint,
			Focused:     m.session.Focused() == field,
			Invalid:     state.Err != "",
			Width:       fieldWidth,
		}
		parts = append(parts, lipgloss.JoinVertical(lipgloss.Left, input.View(), components.ErrorAlert(state.Err).View()))
	}

	parts = append(parts, operatorStyle().Render("="), m.renderResult())
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderResult() string {
	value := placeholderStyle().Render(resultEmptyText)
	if text, ok := m.session.ResultText(); ok {
		value = resultStyle().Render(text)
	}
	card := components.NewCard("", "Result: "+value).WithAccent(components.PalettePrimary).View()
	return lipgloss.NewStyle().MarginTop(1).Render(card)
}

func (m Model) renderPad() string {
	current := m.session.Deck()
	tiles := make([]components.Tile, 0, len(current))
	for i, tile := range current {
		tiles = append(tiles, components.Tile{
			Label:       strconv.Itoa(tile.Value),
			Drop:        tileDrop(tile.Rotation),
			Highlighted: i == m.padCursor,
		})
	}
	return components.TileRow(tiles)
}

func (m Model) renderControls() string {
	_, hasResult := m.session.ResultText()

	edit := components.NewButtonGroup(
		components.NewButton("Calculate", components.ButtonOptions{Hotkey: "enter"}),
		components.NewButton("Backspace", components.ButtonOptions{Variant: components.ButtonVariantSecondary, Hotkey: "⌫"}),
		components.NewButton("Clear All", components.ButtonOptions{Variant: components.ButtonVariantDanger, Hotkey: "esc"}),
	)

	extra := components.NewButtonGroup(
		components.NewButton("Shuffle", components.ButtonOptions{Variant: components.ButtonVariantSecondary, Hotkey: "s"}),
	)
	if hasResult {
		extra.AddButton(components.NewButton("Copy", components.ButtonOptions{Variant: components.ButtonVariantMuted, Hotkey: "c"}))
	}
	extra.AddButton(components.NewButton(themeButtonLabel(m.theme), components.ButtonOptions{Variant: components.ButtonVariantMuted, Hotkey: "t"}))

	return lipgloss.JoinVertical(lipgloss.Left, edit.View(), "", extra.View())
}

func themeButtonLabel(t theme.Theme) string {
	next := t.Toggle().String()
	return strings.ToUpper(next[:1]) + next[1:] + " mode"
}
