package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/revie-dev/revie/internal/ui/styles"
)

// URLBarModel is the PR-URL prompt shown before a session exists.
type URLBarModel struct {
	textInput textinput.Model
	width     int
	height    int
}

func NewURLBar() *URLBarModel {
	ti := textinput.New()
	ti.Placeholder = "https://github.com/owner/repo/pull/123"
	ti.CharLimit = 512
	ti.Width = 60
	ti.Focus()

	return &URLBarModel{textInput: ti}
}

func (m *URLBarModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	if width > 20 {
		m.textInput.Width = width - 20
	}
}

func (m *URLBarModel) Value() string {
	return strings.TrimSpace(m.textInput.Value())
}

func (m *URLBarModel) Reset() {
	m.textInput.SetValue("")
	m.textInput.Focus()
}

func (m *URLBarModel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return cmd
}

func (m *URLBarModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Padding(1, 0).Render("Analyze a pull request"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	b.WriteString(styles.Help.Render("Enter: Analyze | :open to resume a review | :h for help"))

	boxStyle := styles.Box.
		Padding(1, 2).
		Width(m.width - 4)

	return boxStyle.Render(b.String())
}
