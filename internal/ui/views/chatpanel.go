package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/revie-dev/revie/internal/domain"
	"github.com/revie-dev/revie/internal/ui/markdown"
	"github.com/revie-dev/revie/internal/ui/styles"
)

// ChatPanelModel shows the conversation for the active session. The message
// list is append-only except for the trailing assistant message, which grows
// in place while its token stream runs.
type ChatPanelModel struct {
	messages  []domain.Message
	viewport  viewport.Model
	textarea  textarea.Model
	renderer  *markdown.Renderer
	width     int
	height    int
	active    bool
	streaming bool
}

func NewChatPanel() *ChatPanelModel {
	ta := textarea.New()
	ta.Placeholder = "Ask about this pull request..."
	ta.CharLimit = 10000
	ta.ShowLineNumbers = false
	ta.SetHeight(3)

	return &ChatPanelModel{
		viewport: viewport.New(0, 0),
		textarea: ta,
		renderer: markdown.NewRenderer(markdown.DefaultStyles()),
	}
}

func (m *ChatPanelModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width - 4
	m.viewport.Height = height - 12
	m.textarea.SetWidth(width - 8)
	m.renderer.SetWidth(width - 8)
	m.updateViewport()
}

func (m *ChatPanelModel) Activate() {
	m.active = true
	if !m.streaming {
		m.textarea.Focus()
	}
}

func (m *ChatPanelModel) Deactivate() {
	m.active = false
	m.textarea.Blur()
}

func (m *ChatPanelModel) IsActive() bool {
	return m.active
}

// SetStreaming disables the input while a reply is in flight.
func (m *ChatPanelModel) SetStreaming(streaming bool) {
	m.streaming = streaming
	if streaming {
		m.textarea.Blur()
	} else if m.active {
		m.textarea.Focus()
	}
}

func (m *ChatPanelModel) IsStreaming() bool {
	return m.streaming
}

func (m *ChatPanelModel) Input() string {
	return strings.TrimSpace(m.textarea.Value())
}

func (m *ChatPanelModel) SetInput(value string) {
	m.textarea.SetValue(value)
}

func (m *ChatPanelModel) ClearInput() {
	m.textarea.SetValue("")
}

func (m *ChatPanelModel) SetMessages(messages []domain.Message) {
	m.messages = messages
	m.updateViewport()
	m.viewport.GotoBottom()
}

func (m *ChatPanelModel) Messages() []domain.Message {
	return m.messages
}

func (m *ChatPanelModel) AppendMessage(msg domain.Message) {
	m.messages = append(m.messages, msg)
	m.updateViewport()
	m.viewport.GotoBottom()
}

// AppendToLast grows the trailing message iff it is an assistant turn. Chunks
// arriving against a non-assistant tail are dropped, which defends against
// any interleaving with history replacement.
func (m *ChatPanelModel) AppendToLast(chunk string) {
	if len(m.messages) == 0 {
		return
	}
	last := &m.messages[len(m.messages)-1]
	if last.Role != domain.RoleAssistant {
		return
	}
	last.Content += chunk
	m.updateViewport()
	m.viewport.GotoBottom()
}

func (m *ChatPanelModel) Clear() {
	m.messages = nil
	m.updateViewport()
}

func (m *ChatPanelModel) Update(msg tea.Msg) tea.Cmd {
	if m.streaming {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return cmd
}

func (m *ChatPanelModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Padding(1, 0).Render("Chat"))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n\n")

	if m.streaming {
		thinkingStyle := lipgloss.NewStyle().
			Foreground(styles.Warning).
			Italic(true)
		b.WriteString(thinkingStyle.Render("Assistant is responding..."))
	} else {
		b.WriteString(m.textarea.View())
	}
	b.WriteString("\n\n")

	help := "Ctrl+S: Send | Esc: Back to diff"
	if m.streaming {
		help = "Esc: Back to diff"
	}
	b.WriteString(styles.Help.Render(help))

	boxStyle := styles.Box.
		Padding(0, 1).
		Width(m.width - 4)

	return boxStyle.Render(b.String())
}

func (m *ChatPanelModel) updateViewport() {
	userStyle := lipgloss.NewStyle().
		Foreground(styles.Warning).
		Bold(true)
	assistantStyle := styles.Title

	var b strings.Builder
	for i, msg := range m.messages {
		if i > 0 {
			b.WriteString("\n\n")
		}

		if msg.Role == domain.RoleUser {
			b.WriteString(userStyle.Render("You"))
			b.WriteString("\n")
			b.WriteString(msg.Content)
		} else {
			b.WriteString(assistantStyle.Render("Assistant"))
			b.WriteString("\n")
			b.WriteString(m.renderer.Render(msg.Content))
		}
	}

	m.viewport.SetContent(b.String())
}
