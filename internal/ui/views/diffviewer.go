package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/revie-dev/revie/internal/diff"
	"github.com/revie-dev/revie/internal/domain"
	"github.com/revie-dev/revie/internal/ui/styles"
)

// DiffViewerModel renders one file's unified diff with a tab strip across the
// top. Items arrive incrementally while streaming; selection is a projection
// by id, so selecting an id that is not present simply renders nothing.
type DiffViewerModel struct {
	items      []domain.DiffItem
	selectedID string
	viewport   viewport.Model
	width      int
	height     int
}

func NewDiffViewer() *DiffViewerModel {
	return &DiffViewerModel{
		viewport: viewport.New(0, 0),
	}
}

func (m *DiffViewerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height - 6
	m.updateViewport()
}

// SetItems replaces the item set wholesale (session switch, REST fallback).
func (m *DiffViewerModel) SetItems(items []domain.DiffItem) {
	m.items = items
	if m.selectedItem() == nil && len(items) > 0 {
		m.selectedID = items[0].ID
	}
	m.updateViewport()
}

func (m *DiffViewerModel) AddItem(item domain.DiffItem) {
	m.items = append(m.items, item)
	m.updateViewport()
}

func (m *DiffViewerModel) Items() []domain.DiffItem {
	return m.items
}

func (m *DiffViewerModel) Clear() {
	m.items = nil
	m.selectedID = ""
	m.updateViewport()
}

func (m *DiffViewerModel) Select(id string) {
	m.selectedID = id
	m.viewport.GotoTop()
	m.updateViewport()
}

func (m *DiffViewerModel) SelectedID() string {
	return m.selectedID
}

func (m *DiffViewerModel) selectedItem() *domain.DiffItem {
	for i := range m.items {
		if m.items[i].ID == m.selectedID {
			return &m.items[i]
		}
	}
	return nil
}

func (m *DiffViewerModel) selectedIndex() int {
	for i := range m.items {
		if m.items[i].ID == m.selectedID {
			return i
		}
	}
	return -1
}

func (m *DiffViewerModel) NextFile() {
	idx := m.selectedIndex()
	if idx >= 0 && idx < len(m.items)-1 {
		m.Select(m.items[idx+1].ID)
	}
}

func (m *DiffViewerModel) PrevFile() {
	idx := m.selectedIndex()
	if idx > 0 {
		m.Select(m.items[idx-1].ID)
	}
}

func (m *DiffViewerModel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "n":
			m.NextFile()
			return nil
		case "p":
			m.PrevFile()
			return nil
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

func (m *DiffViewerModel) View() string {
	tabs := m.renderTabs()
	content := m.viewport.View()

	help := styles.Help.Render("\nn/p: Next/Prev File | j/k: Scroll | i: Chat | :: Command")

	return tabs + "\n" + content + "\n" + help
}

func (m *DiffViewerModel) renderTabs() string {
	if len(m.items) == 0 {
		return styles.Help.Render("Waiting for diffs...")
	}

	activeStyle := lipgloss.NewStyle().
		Foreground(styles.Foreground).
		Background(styles.Primary).
		Bold(true).
		Padding(0, 1)
	inactiveStyle := lipgloss.NewStyle().
		Foreground(styles.Subtle).
		Background(styles.Surface).
		Padding(0, 1)
	addedStyle := lipgloss.NewStyle().Foreground(styles.Secondary)
	removedStyle := lipgloss.NewStyle().Foreground(styles.Error)

	var tabs []string
	for _, item := range m.items {
		added, removed := diff.Stats(item.DiffContent)
		badge := addedStyle.Render(fmt.Sprintf("+%d", added)) + " " +
			removedStyle.Render(fmt.Sprintf("-%d", removed))

		name := item.FileName
		if name == "" {
			name = item.FilePath
		}
		label := extensionIcon(item.FileExtension) + " " + name

		if item.ID == m.selectedID {
			tabs = append(tabs, activeStyle.Render(label)+" "+badge)
		} else {
			tabs = append(tabs, inactiveStyle.Render(label)+" "+badge)
		}
	}

	return wrapTabs(tabs, m.width)
}

// wrapTabs lays tab cells out left to right, breaking to a new line when the
// next cell would overflow the width.
func wrapTabs(tabs []string, width int) string {
	if width <= 0 {
		return strings.Join(tabs, " ")
	}

	var lines []string
	var current string
	for _, tab := range tabs {
		if current == "" {
			current = tab
			continue
		}
		if lipgloss.Width(current)+1+lipgloss.Width(tab) > width {
			lines = append(lines, current)
			current = tab
		} else {
			current += " " + tab
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return strings.Join(lines, "\n")
}

func (m *DiffViewerModel) updateViewport() {
	item := m.selectedItem()
	if item == nil {
		m.viewport.SetContent("")
		return
	}
	m.viewport.SetContent(m.renderDiff(item))
}

func (m *DiffViewerModel) renderDiff(item *domain.DiffItem) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render(item.FilePath))
	b.WriteString("\n\n")

	for _, line := range diff.ParseLines(item.DiffContent) {
		b.WriteString(renderDiffLine(line))
		b.WriteString("\n")
	}
	return b.String()
}

func renderDiffLine(line diff.Line) string {
	gutterStyle := lipgloss.NewStyle().Foreground(styles.Gutter)

	var gutter string
	var style lipgloss.Style
	switch line.Kind {
	case diff.LineHeader:
		gutter = "      ...  "
		style = lipgloss.NewStyle().Foreground(styles.Info)
	case diff.LineAdded:
		gutter = fmt.Sprintf("      %4d ", line.NewLine)
		style = lipgloss.NewStyle().Foreground(styles.Secondary)
	case diff.LineRemoved:
		gutter = fmt.Sprintf("%4d       ", line.OldLine)
		style = lipgloss.NewStyle().Foreground(styles.Error)
	default:
		gutter = fmt.Sprintf("%4d  %4d ", line.OldLine, line.NewLine)
		style = lipgloss.NewStyle().Foreground(styles.Subtle)
	}

	return gutterStyle.Render(gutter) + style.Render(line.Content)
}

func extensionIcon(ext string) string {
	switch strings.TrimPrefix(strings.ToLower(ext), ".") {
	case "go":
		return "🐹"
	case "ts", "tsx", "js", "jsx", "mjs":
		return "📜"
	case "py":
		return "🐍"
	case "rb":
		return "💎"
	case "rs":
		return "🦀"
	case "java", "kt":
		return "☕"
	case "md", "txt", "rst":
		return "📝"
	case "json", "yaml", "yml", "toml":
		return "⚙️"
	case "css", "scss", "html":
		return "🎨"
	case "sql":
		return "🗃️"
	default:
		return "📄"
	}
}
