package components

import (
	"github.com/charmbracelet/lipgloss"
)

// MaxTileDrop is the largest vertical offset a tile can be drawn with.
const MaxTileDrop = 2

// Tile renders one digit of the number pad. Drop shifts the tile down by up
// to MaxTileDrop lines so a row of tiles looks scattered; every tile occupies
// the same height regardless of drop.
type Tile struct {
	Label       string
	Drop        int
	Highlighted bool
}

// View renders the tile.
func (t Tile) View() string {
	drop := t.Drop
	if drop < 0 {
		drop = 0
	}
	if drop > MaxTileDrop {
		drop = MaxTileDrop
	}

	appliers := []StyleApplier{
		Background(PaletteCard),
		Border(BorderVariantRounded, PaletteNeutral),
		PaddingX(SpacingSizeExtraSmall),
		Bold(),
	}
	if t.Highlighted {
		appliers = append(appliers, Border(BorderVariantThick, PalettePrimary), Foreground(PalettePrimary))
	}

	style := Style(lipgloss.NewStyle(), appliers...).
		MarginTop(drop).
		MarginBottom(MaxTileDrop - drop)
	return style.Render(t.Label)
}

// TileRow joins tiles horizontally, top aligned.
func TileRow(tiles []Tile) string {
	rendered := make([]string, 0, len(tiles))
	for _, tile := range tiles {
		rendered = append(rendered, tile.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
