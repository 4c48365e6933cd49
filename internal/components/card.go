package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CardStyle defines the visual appearance of a Card component.
type CardStyle struct {
	BorderStyle  lipgloss.Style
	TitleStyle   lipgloss.Style
	ContentStyle lipgloss.Style
	Width        int
}

// DefaultCardStyle returns a default card style using the current theme.
func DefaultCardStyle() CardStyle {
	return CardStyle{
		BorderStyle: Style(
			lipgloss.NewStyle(),
			Border(BorderVariantRounded, PaletteNeutral),
			PaddingX(SpacingSizeExtraSmall),
		),
		TitleStyle:   Style(lipgloss.NewStyle(), Bold(), Foreground(PalettePrimary)),
		ContentStyle: Style(lipgloss.NewStyle(), Text(PaletteSurface)),
	}
}

// Card is a bordered panel with an optional title and free-form body lines.
type Card struct {
	title string
	body  []string
	style CardStyle
}

// NewCard creates a new card with the given title and body lines.
func NewCard(title string, body ...string) *Card {
	return &Card{
		title: title,
		body:  body,
		style: DefaultCardStyle(),
	}
}

// WithStyle sets a custom style for the card.
func (c *Card) WithStyle(style CardStyle) *Card {
	c.style = style
	return c
}

// WithWidth sets the card width.
func (c *Card) WithWidth(width int) *Card {
	c.style.Width = width
	return c
}

// WithAccent colours the border with the given palette slot.
func (c *Card) WithAccent(slot PaletteSlot) *Card {
	c.style.BorderStyle = c.style.BorderStyle.BorderForeground(slot(GetTheme().Palette).Base)
	return c
}

// View renders the card.
func (c *Card) View() string {
	content := make([]string, 0, len(c.body)+2)
	if c.title != "" {
		content = append(content, c.style.TitleStyle.Render(c.title), "")
	}
	for _, line := range c.body {
		content = append(content, c.style.ContentStyle.Render(line))
	}

	style := c.style.BorderStyle
	if c.style.Width > 0 {
		style = style.Width(c.style.Width - horizontalBorderWidth(style))
	}
	return style.Render(strings.Join(content, "\n"))
}

// horizontalBorderWidth sums left and right border sizes, falling back to zero on error.
func horizontalBorderWidth(style lipgloss.Style) (width int) {
	defer func() {
		if recover() != nil {
			width = 0
		}
	}()

	width = style.GetBorderLeftSize() + style.GetBorderRightSize()
	if width < 0 {
		return 0
	}
	return width
}
