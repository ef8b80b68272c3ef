package markdown

import (
	"github.com/charmbracelet/lipgloss"

	uistyles "github.com/revie-dev/revie/internal/ui/styles"
)

type Styles struct {
	Header     lipgloss.Style
	Subheader  lipgloss.Style
	Text       lipgloss.Style
	Bold       lipgloss.Style
	Italic     lipgloss.Style
	Code       lipgloss.Style
	CodeBlock  lipgloss.Style
	ListBullet lipgloss.Style
	ListItem   lipgloss.Style
}

func DefaultStyles() Styles {
	purple := uistyles.Primary
	lightGray := uistyles.Foreground
	orange := uistyles.Warning
	green := uistyles.Secondary

	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(purple).
			Bold(true).
			MarginTop(1),

		Subheader: lipgloss.NewStyle().
			Foreground(purple).
			Bold(true),

		Text: lipgloss.NewStyle().
			Foreground(lightGray),

		Bold: lipgloss.NewStyle().
			Foreground(lightGray).
			Bold(true),

		Italic: lipgloss.NewStyle().
			Foreground(lightGray).
			Italic(true),

		Code: lipgloss.NewStyle().
			Foreground(orange).
			Background(uistyles.Surface),

		CodeBlock: lipgloss.NewStyle().
			Foreground(orange).
			Background(uistyles.Surface).
			Padding(0, 1),

		ListBullet: lipgloss.NewStyle().
			Foreground(green),

		ListItem: lipgloss.NewStyle().
			Foreground(lightGray),
	}
}
