// Package styles provides the color palette and style definitions shared by
// the gandi terminal output. Visual constants live here so commands and
// progress views reference a single source of truth.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Core text
	Gray  = lipgloss.Color("#888888")
	Muted = lipgloss.Color("#555555")

	// Accent
	Blue    = lipgloss.Color("#5FAFFF")
	DimBlue = lipgloss.Color("#3A6FA0")

	// Status
	Green  = lipgloss.Color("#5FD787")
	Yellow = lipgloss.Color("#FFD787")
	Red    = lipgloss.Color("#FF8787")
)
