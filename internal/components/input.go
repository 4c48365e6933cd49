package components

import (
	"github.com/charmbracelet/lipgloss"
)

const cursorGlyph = "▏"

// Input renders a labelled single-line text box. It is display only; the
// caller owns the value and the editing rules.
type Input struct {
	Label       string
	Value       string
	Placeholder string
	Focused     bool
	Invalid     bool
	Width       int
}

// View renders the label above a bordered box holding the value.
func (i Input) View() string {
	label := Style(lipgloss.NewStyle(), Bold(), Text(PaletteSurface)).Render(i.Label)

	slot := PaletteNeutral
	switch {
	case i.Invalid:
		slot = PaletteDanger
	case i.Focused:
		slot = PalettePrimary
	}

	text := i.Value
	textStyle := Style(lipgloss.NewStyle(), Text(PaletteSurface))
	if text == "" && !i.Focused {
		text = i.Placeholder
		textStyle = Style(lipgloss.NewStyle(), MutedForeground(PaletteSurface))
	}
	rendered := textStyle.Render(text)
	if i.Focused {
		rendered += Style(lipgloss.NewStyle(), Foreground(PalettePrimary)).Render(cursorGlyph)
	}

	box := Style(lipgloss.NewStyle(), Border(BorderVariantRounded, slot), PaddingX(SpacingSizeExtraSmall))
	if i.Width > 0 {
		box = box.Width(i.Width - horizontalBorderWidth(box))
	}

	return lipgloss.JoinVertical(lipgloss.Left, label, box.Render(rendered))
}
