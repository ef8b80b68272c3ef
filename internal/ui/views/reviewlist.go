package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/revie-dev/revie/internal/domain"
	"github.com/revie-dev/revie/internal/ui/styles"
)

// ReviewListViewModel is the session picker: past reviews with their message
// counts and a preview of the last chat turn.
type ReviewListViewModel struct {
	table   table.Model
	reviews []domain.ReviewSummary
	width   int
	height  int
}

func NewReviewListView() *ReviewListViewModel {
	columns := []table.Column{
		{Title: "Title", Width: 40},
		{Title: "Status", Width: 10},
		{Title: "Msgs", Width: 6},
		{Title: "Last message", Width: 40},
		{Title: "Updated", Width: 16},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.HiddenBorder()).
		Bold(false).
		Foreground(styles.Muted)
	s.Selected = s.Selected.
		Foreground(styles.Warning).
		Background(styles.Surface).
		Bold(true)
	t.SetStyles(s)

	return &ReviewListViewModel{table: t}
}

func (m *ReviewListViewModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetHeight(maxInt(1, height-7))
	m.updateColumnWidths()
}

func (m *ReviewListViewModel) updateColumnWidths() {
	const (
		statusWidth  = 10
		msgsWidth    = 6
		updatedWidth = 16
		minTitle     = 20
		maxTitle     = 60
	)

	fixed := statusWidth + msgsWidth + updatedWidth
	available := maxInt(0, m.width-fixed)
	titleWidth := clampInt(available/2, minTitle, maxTitle)
	previewWidth := maxInt(minTitle, available-titleWidth)

	m.table.SetColumns([]table.Column{
		{Title: "Title", Width: titleWidth},
		{Title: "Status", Width: statusWidth},
		{Title: "Msgs", Width: msgsWidth},
		{Title: "Last message", Width: previewWidth},
		{Title: "Updated", Width: updatedWidth},
	})
}

func (m *ReviewListViewModel) SetReviews(reviews []domain.ReviewSummary) {
	m.reviews = append([]domain.ReviewSummary(nil), reviews...)
	m.table.SetRows(m.reviewsToRows(m.reviews))
}

func (m *ReviewListViewModel) reviewsToRows(reviews []domain.ReviewSummary) []table.Row {
	rows := make([]table.Row, len(reviews))
	titleWidth := m.table.Columns()[0].Width
	previewWidth := m.table.Columns()[3].Width

	for i, review := range reviews {
		title := review.Title
		if title == "" {
			title = review.PullRequestURL
		}

		preview := strings.ReplaceAll(review.LastMessage, "\n", " ")

		rows[i] = table.Row{
			truncate(title, titleWidth),
			review.Status,
			fmt.Sprintf("%d", review.MessageCount),
			truncate(preview, previewWidth),
			formatRelativeTime(review.UpdatedAt),
		}
	}
	return rows
}

func (m *ReviewListViewModel) SelectedReview() *domain.ReviewSummary {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.reviews) {
		return nil
	}
	return &m.reviews[idx]
}

func (m *ReviewListViewModel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return cmd
}

func (m *ReviewListViewModel) View() string {
	help := styles.Help.Render("\nEnter: Open review | Esc: Back | q: Quit")

	if len(m.reviews) == 0 {
		empty := styles.Help.Render("No reviews yet. Submit a PR URL to start one.")
		return empty + "\n" + help
	}

	return m.table.View() + "\n" + help
}

// formatRelativeTime renders a backend timestamp as an age. Timestamps come
// over the wire as strings with no guaranteed layout, so unparseable input
// falls back to the raw value truncated.
func formatRelativeTime(ts string) string {
	if ts == "" {
		return ""
	}

	var t time.Time
	var err error
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		t, err = time.Parse(layout, ts)
		if err == nil {
			break
		}
	}
	if err != nil {
		return truncate(ts, 16)
	}

	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

func truncate(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
