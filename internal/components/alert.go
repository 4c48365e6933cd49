package components

import (
	"github.com/charmbracelet/lipgloss"
)

// AlertVariant selects how an inline message is coloured.
type AlertVariant int

const (
	AlertVariantInfo AlertVariant = iota
	AlertVariantError
)

// Alert renders a single-line message below a control, such as a field
// validation error or the editing indicator.
type Alert struct {
	message string
	variant AlertVariant
}

// NewAlert creates a new alert with the given message and variant.
func NewAlert(message string, variant AlertVariant) *Alert {
	return &Alert{message: message, variant: variant}
}

// View renders the alert. An empty message renders an empty line so layouts
// keep their height when the message disappears.
func (a *Alert) View() string {
	if a.message == "" {
		return ""
	}

	var appliers []StyleApplier
	switch a.variant {
	case AlertVariantError:
		appliers = []StyleApplier{Foreground(PaletteDanger)}
	default:
		appliers = []StyleApplier{MutedForeground(PaletteSurface)}
	}

	return Style(lipgloss.NewStyle(), appliers...).Render(a.message)
}

// ErrorAlert creates an error alert
func ErrorAlert(message string) *Alert {
	return NewAlert(message, AlertVariantError)
}

// InfoAlert creates an info alert
func InfoAlert(message string) *Alert {
	return NewAlert(message, AlertVariantInfo)
}
