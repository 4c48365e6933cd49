package components

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// SpacingSize enumerates supported spacing size tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
)

const spacingSizeCount = int(SpacingSizeLarge) + 1

type spacingTable [spacingSizeCount]int

// SpacingConfig stores distinct spacing scales for padding and margin.
type SpacingConfig struct {
	Margin  spacingTable
	Padding spacingTable
}

type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
	BorderVariantDouble
)

// ColourSet represents a semantic color set with base, on-base, muted, and contrast colors.
type ColourSet struct {
	Base     lipgloss.Color
	OnBase   lipgloss.Color
	Muted    lipgloss.Color
	Contrast lipgloss.Color
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary ColourSet
	Surface ColourSet
	Card    ColourSet
	Danger  ColourSet
	Neutral ColourSet
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// Theme represents the global styling theme for components
type Theme struct {
	Name    string
	Palette Palette
	Borders BorderSet
	Spacing SpacingConfig
}

// ThemeManager coordinates access to a Theme instance.
type ThemeManager struct {
	mu    sync.RWMutex
	theme Theme
}

// NewThemeManager allocates a ThemeManager with the provided theme.
func NewThemeManager(theme Theme) *ThemeManager {
	return &ThemeManager{theme: normalizeTheme(theme)}
}

// SetTheme replaces the managed theme.
func (m *ThemeManager) SetTheme(theme Theme) {
	m.mu.Lock()
	m.theme = normalizeTheme(theme)
	m.mu.Unlock()
}

// Theme returns a copy of the managed theme.
func (m *ThemeManager) Theme() Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.theme
}

func normalizeTheme(theme Theme) Theme {
	if spacingTableIsZero(theme.Spacing.Padding) {
		theme.Spacing.Padding = defaultSpacingTable()
	}
	if spacingTableIsZero(theme.Spacing.Margin) {
		theme.Spacing.Margin = defaultSpacingTable()
	}
	return theme
}

func spacingTableIsZero(table spacingTable) bool {
	for _, value := range table {
		if value != 0 {
			return false
		}
	}
	return true
}

func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingSizeNone:       0,
		SpacingSizeExtraSmall: 1,
		SpacingSizeSmall:      2,
		SpacingSizeMedium:     3,
		SpacingSizeLarge:      4,
	}
}

func defaultBorders() BorderSet {
	return BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Double:  lipgloss.DoubleBorder(),
	}
}

// LightTheme returns the light colour scheme.
func LightTheme() Theme {
	return normalizeTheme(Theme{
		Name: "light",
		Palette: Palette{
			Primary: ColourSet{
				Base:     lipgloss.Color("#646cff"),
				OnBase:   lipgloss.Color("#ffffff"),
				Muted:    lipgloss.Color("#535bf2"),
				Contrast: lipgloss.Color("#e0e2ff"),
			},
			Surface: ColourSet{
				Base:     lipgloss.Color("#f8fafc"),
				OnBase:   lipgloss.Color("#1e293b"),
				Muted:    lipgloss.Color("#64748b"),
				Contrast: lipgloss.Color("#cbd5e1"),
			},
			Card: ColourSet{
				Base:     lipgloss.Color("#ffffff"),
				OnBase:   lipgloss.Color("#0f172a"),
				Muted:    lipgloss.Color("#e2e8f0"),
				Contrast: lipgloss.Color("#646cff"),
			},
			Danger: ColourSet{
				Base:     lipgloss.Color("#dc2626"),
				OnBase:   lipgloss.Color("#ffffff"),
				Muted:    lipgloss.Color("#fee2e2"),
				Contrast: lipgloss.Color("#7f1d1d"),
			},
			Neutral: ColourSet{
				Base:     lipgloss.Color("#94a3b8"),
				OnBase:   lipgloss.Color("#0f172a"),
				Muted:    lipgloss.Color("#cbd5e1"),
				Contrast: lipgloss.Color("#475569"),
			},
		},
		Borders: defaultBorders(),
	})
}

// DarkTheme returns the dark colour scheme.
func DarkTheme() Theme {
	return normalizeTheme(Theme{
		Name: "dark",
		Palette: Palette{
			Primary: ColourSet{
				Base:     lipgloss.Color("#818cf8"),
				OnBase:   lipgloss.Color("#0b1120"),
				Muted:    lipgloss.Color("#6366f1"),
				Contrast: lipgloss.Color("#312e81"),
			},
			Surface: ColourSet{
				Base:     lipgloss.Color("#0f172a"),
				OnBase:   lipgloss.Color("#e2e8f0"),
				Muted:    lipgloss.Color("#94a3b8"),
				Contrast: lipgloss.Color("#334155"),
			},
			Card: ColourSet{
				Base:     lipgloss.Color("#1e293b"),
				OnBase:   lipgloss.Color("#f1f5f9"),
				Muted:    lipgloss.Color("#334155"),
				Contrast: lipgloss.Color("#818cf8"),
			},
			Danger: ColourSet{
				Base:     lipgloss.Color("#f87171"),
				OnBase:   lipgloss.Color("#0b1120"),
				Muted:    lipgloss.Color("#450a0a"),
				Contrast: lipgloss.Color("#fecaca"),
			},
			Neutral: ColourSet{
				Base:     lipgloss.Color("#64748b"),
				OnBase:   lipgloss.Color("#f8fafc"),
				Muted:    lipgloss.Color("#334155"),
				Contrast: lipgloss.Color("#cbd5e1"),
			},
		},
		Borders: defaultBorders(),
	})
}

// ThemeFor returns the palette for a scheme name, defaulting to light.
func ThemeFor(name string) Theme {
	if name == "dark" {
		return DarkTheme()
	}
	return LightTheme()
}

var defaultThemeManager = NewThemeManager(LightTheme())

// SetTheme sets the global theme
func SetTheme(theme Theme) {
	defaultThemeManager.SetTheme(theme)
}

// GetTheme returns the current global theme
func GetTheme() Theme {
	return defaultThemeManager.Theme()
}

func PaddingValue(size SpacingSize) int {
	return spacingLookup(GetTheme().Spacing.Padding, size)
}

func MarginValue(size SpacingSize) int {
	return spacingLookup(GetTheme().Spacing.Margin, size)
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingSizeSmall)
	}
	return table[index]
}

// StyleApplier represents a function that can apply styling to a lipgloss.Style
type StyleApplier interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc implements StyleApplier for a function type
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

func (fn StyleFunc) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	return fn(base, theme)
}

// Style applies a series of modifiers to create a final style
func Style(base lipgloss.Style, appliers ...StyleApplier) lipgloss.Style {
	theme := GetTheme()
	for _, applier := range appliers {
		base = applier.Apply(base, theme)
	}
	return base
}

// PaletteSlot provides access to a semantic colour slot.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteCard    PaletteSlot = func(p Palette) ColourSet { return p.Card }
	PaletteDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// Background applies a semantic background colour and matching foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// Text applies the on-base tone of a slot as foreground, for body text drawn
// over that slot's background.
func Text(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).OnBase)
	}
}

// MutedForeground applies the muted tone of a slot as foreground.
func MutedForeground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Muted)
	}
}

func Border(variant BorderVariant, slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(borderForVariant(theme, variant)).BorderForeground(slot(theme.Palette).Base)
	}
}

func borderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	default:
		return theme.Borders.None
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingTop(value).PaddingBottom(value)
	}
}

func MarginX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Margin, size)
		return base.MarginLeft(value).MarginRight(value)
	}
}

// Bold makes the text bold.
func Bold() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Bold(true)
	}
}
