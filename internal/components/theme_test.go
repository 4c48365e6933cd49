package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeForSelectsScheme(t *testing.T) {
	assert.Equal(t, "dark", ThemeFor("dark").Name)
	assert.Equal(t, "light", ThemeFor("light").Name)
	assert.Equal(t, "light", ThemeFor("bogus").Name)
}

func TestLightAndDarkPalettesDiffer(t *testing.T) {
	light := LightTheme()
	dark := DarkTheme()

	assert.Equal(t, lipgloss.Color("#646cff"), light.Palette.Primary.Base)
	assert.NotEqual(t, light.Palette.Surface.Base, dark.Palette.Surface.Base)
	assert.NotEqual(t, light.Palette.Card.OnBase, dark.Palette.Card.OnBase)
}

func TestThemeManagerNormalizesSpacing(t *testing.T) {
	manager := NewThemeManager(Theme{Name: "bare"})

	theme := manager.Theme()
	assert.Equal(t, 1, theme.Spacing.Padding[SpacingSizeExtraSmall])
	assert.Equal(t, 4, theme.Spacing.Margin[SpacingSizeLarge])

	manager.SetTheme(DarkTheme())
	assert.Equal(t, "dark", manager.Theme().Name)
}

func TestGlobalThemeSwitch(t *testing.T) {
	original := GetTheme()
	t.Cleanup(func() { SetTheme(original) })

	SetTheme(DarkTheme())
	require.Equal(t, "dark", GetTheme().Name)

	SetTheme(LightTheme())
	require.Equal(t, "light", GetTheme().Name)
}

func TestSpacingLookupFallsBackOnUnknownSize(t *testing.T) {
	assert.Equal(t, 2, PaddingValue(SpacingSize(42)))
	assert.Equal(t, 0, MarginValue(SpacingSizeNone))
}

func TestStyleAppliesInOrder(t *testing.T) {
	theme := DarkTheme()
	style := Style(lipgloss.NewStyle(), Background(PalettePrimary), Text(PaletteSurface))

	// The global theme drives Style; check against whichever one is active.
	active := GetTheme()
	assert.Equal(t, lipgloss.TerminalColor(active.Palette.Primary.Base), style.GetBackground())
	assert.Equal(t, lipgloss.TerminalColor(active.Palette.Surface.OnBase), style.GetForeground())

	applied := Border(BorderVariantRounded, PaletteDanger).Apply(lipgloss.NewStyle(), theme)
	assert.Equal(t, lipgloss.TerminalColor(theme.Palette.Danger.Base), applied.GetBorderTopForeground())
}
