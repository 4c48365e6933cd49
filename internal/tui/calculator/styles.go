package calculator

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/sumcalc/internal/components"
	"github.com/alexisbeaulieu97/sumcalc/internal/deck"
)

// Styles are rebuilt on every render so a theme toggle takes effect
// immediately.

func titleStyle() lipgloss.Style {
	return components.Style(lipgloss.NewStyle(), components.Bold(), components.Foreground(components.PalettePrimary))
}

func resultStyle() lipgloss.Style {
	return components.Style(lipgloss.NewStyle(), components.Bold(), components.Foreground(components.PalettePrimary))
}

func placeholderStyle() lipgloss.Style {
	return components.Style(lipgloss.NewStyle(), components.MutedForeground(components.PaletteSurface))
}

func noticeStyle() lipgloss.Style {
	return components.Style(lipgloss.NewStyle(), components.MutedForeground(components.PalettePrimary))
}

// operatorStyle centres "+" and "=" on the input box text line.
func operatorStyle() lipgloss.Style {
	return components.Style(lipgloss.NewStyle(), components.Bold(), components.Text(components.PaletteSurface)).
		MarginTop(2).
		PaddingLeft(1).
		PaddingRight(1)
}

const fieldWidth = 22

// tileDrop maps a tile rotation onto the vertical offset used to draw it.
func tileDrop(rotation int) int {
	return (rotation + deck.MaxRotation) * components.MaxTileDrop / (2 * deck.MaxRotation)
}
