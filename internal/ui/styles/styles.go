// Package styles holds the shared color palette and base styles for the UI.
// Components and views derive their own styles from these instead of
// repeating hex values.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	Primary    = lipgloss.Color("#7C3AED")
	Secondary  = lipgloss.Color("#10B981")
	Error      = lipgloss.Color("#EF4444")
	ErrorBg    = lipgloss.Color("#991B1B")
	Warning    = lipgloss.Color("#F59E0B")
	Info       = lipgloss.Color("#3B82F6")
	Foreground = lipgloss.Color("#F9FAFB")
	Light      = lipgloss.Color("#E5E7EB")
	Subtle     = lipgloss.Color("#9CA3AF")
	Muted      = lipgloss.Color("#6B7280")
	Gutter     = lipgloss.Color("#4B5563")
	SurfaceDim = lipgloss.Color("#374151")
	Surface    = lipgloss.Color("#1F2937")
)

var (
	Title = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Help  = lipgloss.NewStyle().Foreground(Muted).Italic(true)
	Box   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Primary)
)
