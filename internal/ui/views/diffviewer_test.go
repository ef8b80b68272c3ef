package views

import (
	"strings"
	"testing"

	"github.com/revie-dev/revie/internal/domain"
)

func sampleItems() []domain.DiffItem {
	return []domain.DiffItem{
		{ID: "d1", FilePath: "main.go", FileName: "main.go", FileExtension: "go", DiffContent: "@@ -1,2 +1,3 @@\n context\n+added\n-removed"},
		{ID: "d2", FilePath: "util.py", FileName: "util.py", FileExtension: "py", DiffContent: "@@ -5,1 +5,2 @@\n+new line"},
	}
}

func TestSelectMissingIDRendersNothing(t *testing.T) {
	v := NewDiffViewer()
	v.SetSize(100, 40)
	v.SetItems(sampleItems())

	v.Select("does-not-exist")

	// Selection is a pure projection: a missing id means no content, not a
	// crash or a fallback file.
	if v.selectedItem() != nil {
		t.Error("expected no resolved item for unknown id")
	}
	view := v.View()
	if strings.Contains(view, "main.go\n") {
		t.Error("viewport still rendering a file body for an unselected id")
	}
}

func TestNextPrevFileNavigation(t *testing.T) {
	v := NewDiffViewer()
	v.SetSize(100, 40)
	v.SetItems(sampleItems())

	if v.SelectedID() != "d1" {
		t.Fatalf("initial selection = %q, want d1", v.SelectedID())
	}

	v.NextFile()
	if v.SelectedID() != "d2" {
		t.Errorf("after next: %q, want d2", v.SelectedID())
	}

	// At the end, next is a no-op.
	v.NextFile()
	if v.SelectedID() != "d2" {
		t.Errorf("next past end moved selection to %q", v.SelectedID())
	}

	v.PrevFile()
	if v.SelectedID() != "d1" {
		t.Errorf("after prev: %q, want d1", v.SelectedID())
	}

	v.PrevFile()
	if v.SelectedID() != "d1" {
		t.Errorf("prev past start moved selection to %q", v.SelectedID())
	}
}

func TestTabsShowBadgeCounts(t *testing.T) {
	v := NewDiffViewer()
	v.SetSize(200, 40)
	v.SetItems(sampleItems())

	tabs := v.renderTabs()
	if !strings.Contains(tabs, "+1") || !strings.Contains(tabs, "-1") {
		t.Errorf("tabs missing +1/-1 badges for main.go: %q", tabs)
	}
	if !strings.Contains(tabs, "util.py") {
		t.Errorf("tabs missing file name: %q", tabs)
	}
}

func TestClearResetsSelection(t *testing.T) {
	v := NewDiffViewer()
	v.SetSize(100, 40)
	v.SetItems(sampleItems())

	v.Clear()
	if v.SelectedID() != "" || len(v.Items()) != 0 {
		t.Errorf("clear left state behind: selected=%q items=%d", v.SelectedID(), len(v.Items()))
	}
}

func TestExtensionIcons(t *testing.T) {
	if extensionIcon("go") == extensionIcon("py") {
		t.Error("expected distinct icons for go and py")
	}
	if extensionIcon(".go") != extensionIcon("go") {
		t.Error("leading dot should not change the icon")
	}
	if extensionIcon("weird") != extensionIcon("") {
		t.Error("unknown extensions should share the default icon")
	}
}
