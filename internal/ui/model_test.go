package ui

import (
	"testing"

	"github.com/atomicstack/math-helper/internal/menu"
	"github.com/atomicstack/math-helper/internal/nav"
	tea "github.com/charmbracelet/bubbletea"
)

func testCategories() []nav.Category {
	return []nav.Category{
		{Name: "Basic", SubFeatures: []string{"Simple"}},
		{Name: "Advanced", SubFeatures: []string{"Algebra", "Geometry"}},
	}
}

func newTestModel() *Model {
	return NewModel(testCategories(), 0, 0, false, false, "")
}

func TestNewModelListsCategories(t *testing.T) {
	m := newTestModel()
	if len(m.stack) != 1 {
		t.Fatalf("expected a single level, got %d", len(m.stack))
	}
	root := m.currentLevel()
	if root.ID != menu.RootID {
		t.Fatalf("expected root level, got %s", root.ID)
	}
	if len(root.Items) != 2 || root.Items[0].Label != "Basic" || root.Items[1].Label != "Advanced" {
		t.Fatalf("unexpected root items %#v", root.Items)
	}
	if root.Cursor != 0 {
		t.Fatalf("expected cursor on first category, got %d", root.Cursor)
	}
	if m.Focus() != FocusMenu {
		t.Fatalf("expected menu focus, got %s", m.Focus())
	}
	if _, ok := m.Nav().CurrentCategory(); ok {
		t.Fatalf("expected no category selected")
	}
}

func TestMenuHeaderRootLevel(t *testing.T) {
	m := newTestModel()
	if got := m.menuHeader(); got != defaultRootTitle {
		t.Fatalf("expected %q, got %q", defaultRootTitle, got)
	}
}

func TestMenuHeaderFollowsOpenCategory(t *testing.T) {
	m := newTestModel()
	m.openCategory(menu.Item{ID: "1", Label: "Advanced"})
	if got, want := m.menuHeader(), "categories→Advanced"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestInitialCategoryOpensSubFeatures(t *testing.T) {
	m := NewModel(testCategories(), 0, 0, false, false, " advanced ")
	if len(m.stack) != 2 {
		t.Fatalf("expected sub-feature level to be open, got %d levels", len(m.stack))
	}
	idx, ok := m.Nav().CurrentCategory()
	if !ok || idx != 1 {
		t.Fatalf("expected Advanced to be current, got %d (%v)", idx, ok)
	}
	features := m.currentLevel()
	if features.ID != menu.CategoryLevelID(1) {
		t.Fatalf("unexpected level id %s", features.ID)
	}
	if len(features.Items) != 2 || features.Items[0].Label != "Algebra" {
		t.Fatalf("unexpected sub-features %#v", features.Items)
	}
	if m.stack[0].Cursor != 1 {
		t.Fatalf("expected root cursor on Advanced, got %d", m.stack[0].Cursor)
	}
}

func TestUnknownInitialCategorySetsError(t *testing.T) {
	m := NewModel(testCategories(), 0, 0, false, false, "Statistics")
	if len(m.stack) != 1 {
		t.Fatalf("expected only the root level, got %d", len(m.stack))
	}
	if m.errMsg != `Unknown category "Statistics"` {
		t.Fatalf("unexpected error message %q", m.errMsg)
	}
}

func TestWindowSizeRespectsFixedDimensions(t *testing.T) {
	m := NewModel(testCategories(), 90, 0, false, false, "")
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.width != 90 {
		t.Fatalf("expected fixed width 90, got %d", m.width)
	}
	if m.height != 40 {
		t.Fatalf("expected height from terminal, got %d", m.height)
	}
}

func TestUpdateIgnoresUnknownMessages(t *testing.T) {
	m := newTestModel()
	type unknownMsg struct{}
	if _, cmd := m.Update(unknownMsg{}); cmd != nil {
		t.Fatalf("expected no command for unknown message")
	}
}
