package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ButtonVariant selects the colour treatment of a button.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSecondary
	ButtonVariantDanger
	ButtonVariantMuted
)

// ButtonOptions defines the configuration options for a button
type ButtonOptions struct {
	Variant  ButtonVariant
	Hotkey   string
	Disabled bool
	Focus    bool
}

// Button represents a control button with an optional hotkey hint.
type Button struct {
	label   string
	options ButtonOptions
}

// NewButton creates a new button with the given label and options
func NewButton(label string, opts ButtonOptions) *Button {
	return &Button{
		label:   label,
		options: opts,
	}
}

// WithVariant sets the button variant
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.options.Variant = variant
	return b
}

// WithHotkey sets the key hint rendered after the label.
func (b *Button) WithHotkey(key string) *Button {
	b.options.Hotkey = key
	return b
}

// WithDisabled sets the button disabled state
func (b *Button) WithDisabled(disabled bool) *Button {
	b.options.Disabled = disabled
	return b
}

// WithFocus sets the button focus state
func (b *Button) WithFocus(focus bool) *Button {
	b.options.Focus = focus
	return b
}

// Label returns the text rendered inside the button.
func (b *Button) Label() string {
	if b.options.Hotkey == "" {
		return b.label
	}
	return b.label + " [" + b.options.Hotkey + "]"
}

// View renders the button
func (b *Button) View() string {
	return b.buildStyle().Render(b.Label())
}

func (b *Button) buildStyle() lipgloss.Style {
	style := Style(lipgloss.NewStyle(), buttonVariantAppliers(b.options.Variant)...)

	if b.options.Disabled {
		style = Style(style, Background(PaletteNeutral)).Faint(true)
	} else if b.options.Focus {
		style = style.Underline(true)
	}

	return style
}

func buttonVariantAppliers(variant ButtonVariant) []StyleApplier {
	base := []StyleApplier{PaddingX(SpacingSizeExtraSmall), Bold()}
	switch variant {
	case ButtonVariantSecondary:
		return append(base, Background(PaletteCard), Foreground(PalettePrimary))
	case ButtonVariantDanger:
		return append(base, Background(PaletteDanger))
	case ButtonVariantMuted:
		return append(base, Background(PaletteNeutral))
	default:
		return append(base, Background(PalettePrimary))
	}
}

// ButtonGroup represents a horizontal group of buttons
type ButtonGroup struct {
	buttons []*Button
	spacing int
}

// NewButtonGroup creates a new button group
func NewButtonGroup(buttons ...*Button) *ButtonGroup {
	return &ButtonGroup{
		buttons: buttons,
		spacing: MarginValue(SpacingSizeExtraSmall),
	}
}

// WithSpacing sets the spacing between buttons
func (bg *ButtonGroup) WithSpacing(spacing int) *ButtonGroup {
	bg.spacing = spacing
	return bg
}

// AddButton adds a button to the group
func (bg *ButtonGroup) AddButton(button *Button) *ButtonGroup {
	bg.buttons = append(bg.buttons, button)
	return bg
}

// View renders the button group
func (bg *ButtonGroup) View() string {
	if len(bg.buttons) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(bg.buttons))
	for _, button := range bg.buttons {
		rendered = append(rendered, button.View())
	}

	return strings.Join(rendered, strings.Repeat(" ", bg.spacing))
}
