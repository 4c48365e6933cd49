package calculator

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap lists every binding the calculator reacts to. Typed digits, the
// minus sign and the decimal point go straight to the focused field and are
// not listed here.
type KeyMap struct {
	NextField key.Binding
	PrevField key.Binding
	PadLeft   key.Binding
	PadRight  key.Binding
	PadPress  key.Binding
	Backspace key.Binding
	Clear     key.Binding
	Calculate key.Binding
	Shuffle   key.Binding
	Copy      key.Binding
	Theme     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextField: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field")),
		PadLeft:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "pad left")),
		PadRight:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "pad right")),
		PadPress:  key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "press tile")),
		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "delete")),
		Clear:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear all")),
		Calculate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "calculate")),
		Shuffle:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "shuffle")),
		Copy:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy result")),
		Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle theme")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Calculate, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField, k.Calculate, k.Backspace, k.Clear},
		{k.PadLeft, k.PadRight, k.PadPress, k.Shuffle},
		{k.Copy, k.Theme, k.Help, k.Quit},
	}
}
