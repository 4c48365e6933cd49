package clipboard

import (
	tea "github.com/charmbracelet/bubbletea"
)

// CopiedMsg reports the outcome of CopyCmd.
type CopiedMsg struct {
	Text string
	Err  error
}

// CopyCmd writes text from a Bubble Tea command so the event loop never
// blocks on the host clipboard.
func CopyCmd(w Writer, text string) tea.Cmd {
	return func() tea.Msg {
		if w == nil {
			return CopiedMsg{Text: text, Err: ErrUnavailable}
		}
		return CopiedMsg{Text: text, Err: w.WriteText(text)}
	}
}
