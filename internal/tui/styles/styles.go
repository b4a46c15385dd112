package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// MutedText is for hints and unset values.
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)

	// AccentText is for highlighted elements.
	AccentText = lipgloss.NewStyle().
			Foreground(Blue)

	SuccessText = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)
)

// StatusStyle returns the style for a domain status or an operation step.
func StatusStyle(status string) lipgloss.Style {
	switch strings.ToLower(status) {
	case "ok", "active", "done", "available":
		return lipgloss.NewStyle().Foreground(Green).Bold(true)
	case "bill", "wait", "run", "pending", "pendingcreate", "pendingrenew":
		return lipgloss.NewStyle().Foreground(Yellow).Bold(true)
	case "error", "cancel", "unavailable", "expired", "locked":
		return lipgloss.NewStyle().Foreground(Red)
	default:
		return lipgloss.NewStyle().Foreground(Gray)
	}
}
