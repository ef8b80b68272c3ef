package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/revie-dev/revie/internal/ui/styles"
)

type StatusBarModel struct {
	width   int
	message string
	isError bool
}

func NewStatusBar() *StatusBarModel {
	return &StatusBarModel{}
}

func (m *StatusBarModel) SetWidth(width int) {
	m.width = width
}

func (m *StatusBarModel) SetMessage(message string, isError bool) {
	m.message = message
	m.isError = isError
}

// Dismiss clears an error banner. Informational messages are left alone so a
// stray keypress does not eat them.
func (m *StatusBarModel) Dismiss() {
	if m.isError {
		m.message = ""
		m.isError = false
	}
}

func (m *StatusBarModel) ClearMessage() {
	m.message = ""
	m.isError = false
}

func (m *StatusBarModel) HasError() bool {
	return m.isError
}

func (m *StatusBarModel) Message() string {
	return m.message
}

func (m *StatusBarModel) View() string {
	if m.width <= 0 {
		return ""
	}

	content := " " + m.message
	if m.isError {
		content += "  (x to dismiss)"
	}

	content = truncateCells(content, m.width)
	if pad := m.width - lipgloss.Width(content); pad > 0 {
		content += strings.Repeat(" ", pad)
	}

	bgColor := styles.SurfaceDim
	if m.isError {
		bgColor = styles.ErrorBg
	}

	style := lipgloss.NewStyle().
		Foreground(styles.Foreground).
		Background(bgColor).
		Width(m.width)

	return style.Render(content)
}

// truncateCells cuts text to at most width display cells, rune by rune, so
// multibyte messages are never split mid-character and tiny widths stay in
// bounds. Anything dropped is marked with an ellipsis when it fits.
func truncateCells(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}

	ellipsis := "..."
	if width <= len(ellipsis) {
		ellipsis = ""
	}
	target := width - lipgloss.Width(ellipsis)

	var b strings.Builder
	used := 0
	for _, r := range s {
		w := lipgloss.Width(string(r))
		if used+w > target {
			break
		}
		b.WriteRune(r)
		used += w
	}
	return b.String() + ellipsis
}
