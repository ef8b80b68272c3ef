package views

import (
	"strings"
	"testing"
	"time"

	"github.com/revie-dev/revie/internal/domain"
)

func TestReviewListSelection(t *testing.T) {
	v := NewReviewListView()
	v.SetSize(120, 40)
	v.SetReviews([]domain.ReviewSummary{
		{SessionID: "s1", Title: "Fix bug", MessageCount: 4, LastMessage: "looks good"},
		{SessionID: "s2", Title: "Add feature", MessageCount: 0},
	})

	selected := v.SelectedReview()
	if selected == nil || selected.SessionID != "s1" {
		t.Fatalf("selected = %+v, want first row", selected)
	}
}

func TestReviewListEmptyState(t *testing.T) {
	v := NewReviewListView()
	v.SetSize(120, 40)
	v.SetReviews(nil)

	if v.SelectedReview() != nil {
		t.Error("selection on empty list")
	}
	if !strings.Contains(v.View(), "No reviews yet") {
		t.Error("empty state hint missing")
	}
}

func TestFormatRelativeTime(t *testing.T) {
	recent := time.Now().Add(-2 * time.Hour).Format(time.RFC3339)
	if got := formatRelativeTime(recent); got != "2h ago" {
		t.Errorf("formatRelativeTime(recent) = %q, want %q", got, "2h ago")
	}

	if got := formatRelativeTime(""); got != "" {
		t.Errorf("empty timestamp = %q, want empty", got)
	}

	// Unknown layouts degrade to the raw value rather than failing.
	if got := formatRelativeTime("yesterday-ish"); got != "yesterday-ish" {
		t.Errorf("unparseable timestamp = %q, want raw value", got)
	}
}
