package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/revie-dev/revie/internal/ui/styles"
)

type TopBarModel struct {
	width        int
	sessionTitle string
	prURL        string
	prAuthor     string
	diffCount    int
	messageCount int
	currentView  string
	phase        string
	shortcuts    []string
}

var (
	titleStyle        = lipgloss.NewStyle().Padding(1, 2)
	titlePurpleStyle  = styles.Title
	labelOrangeStyle  = lipgloss.NewStyle().Foreground(styles.Warning).Bold(true)
	valueWhiteStyle   = lipgloss.NewStyle().Foreground(styles.Foreground)
	shortcutBlueStyle = lipgloss.NewStyle().Foreground(styles.Info).Bold(true)
	descGrayStyle     = lipgloss.NewStyle().Foreground(styles.Muted)
)

func NewTopBar() *TopBarModel {
	return &TopBarModel{}
}

func (m *TopBarModel) SetWidth(width int) {
	m.width = width
}

func (m *TopBarModel) SetSession(title, prURL string) {
	m.sessionTitle = title
	m.prURL = prURL
}

func (m *TopBarModel) SetPRAuthor(author string) {
	m.prAuthor = author
}

func (m *TopBarModel) SetCounts(diffs, messages int) {
	m.diffCount = diffs
	m.messageCount = messages
}

func (m *TopBarModel) SetView(view string) {
	m.currentView = view
}

func (m *TopBarModel) SetPhase(phase string) {
	m.phase = phase
}

func (m *TopBarModel) SetShortcuts(shortcuts []string) {
	m.shortcuts = shortcuts
}

func (m *TopBarModel) View() string {
	titleLine := titlePurpleStyle.Render("Revie")
	if m.phase != "" {
		titleLine += "  " + descGrayStyle.Render(m.phase)
	}

	contextLines := m.buildContextInfo()
	shortcutLines := m.buildShortcutsDisplay()

	var topSection []string
	topSection = append(topSection, titleLine)
	topSection = append(topSection, "")

	const fixedRows = 4
	const contextColWidth = 50

	for i := 0; i < fixedRows; i++ {
		var contextCol, shortcutCol string
		if i < len(contextLines) {
			contextCol = contextLines[i]
		}
		if i < len(shortcutLines) {
			shortcutCol = shortcutLines[i]
		}

		padding := contextColWidth - lipgloss.Width(contextCol)
		if padding < 1 {
			padding = 1
		}
		topSection = append(topSection, contextCol+strings.Repeat(" ", padding)+shortcutCol)
	}

	content := strings.Join(topSection, "\n")
	return titleStyle.Width(m.width).Render(content)
}

func (m *TopBarModel) buildContextInfo() []string {
	var lines []string

	title := m.sessionTitle
	if title == "" {
		title = "none"
	}
	if len(title) > 40 {
		title = title[:37] + "..."
	}
	lines = append(lines, "📋 "+labelOrangeStyle.Render("Review: ")+valueWhiteStyle.Render(title))

	if m.prURL != "" {
		pr := m.prURL
		if m.prAuthor != "" {
			pr += " by " + m.prAuthor
		}
		if len(pr) > 44 {
			pr = pr[:41] + "..."
		}
		lines = append(lines, "🔗 "+labelOrangeStyle.Render("PR: ")+valueWhiteStyle.Render(pr))
	} else {
		lines = append(lines, "")
	}

	counts := fmt.Sprintf("%d files, %d messages", m.diffCount, m.messageCount)
	lines = append(lines, "📁 "+labelOrangeStyle.Render("Loaded: ")+valueWhiteStyle.Render(counts))

	viewName := m.currentView
	if viewName == "" {
		viewName = "Start"
	}
	lines = append(lines, "🎯 "+labelOrangeStyle.Render("View: ")+valueWhiteStyle.Render(viewName))

	return lines
}

func (m *TopBarModel) buildShortcutsDisplay() []string {
	var formatted []string
	for _, shortcut := range m.shortcuts {
		parts := strings.SplitN(shortcut, ">", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimPrefix(parts[0], "<")
		desc := strings.TrimSpace(parts[1])
		formatted = append(formatted, shortcutBlueStyle.Render("<"+key+">")+" "+descGrayStyle.Render(desc))
	}
	return formatted
}
