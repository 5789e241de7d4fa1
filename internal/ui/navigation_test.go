package ui

import (
	"testing"

	"github.com/atomicstack/math-helper/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

func TestHandleEscapeKeyFromRootQuits(t *testing.T) {
	m := newTestModel()
	cmd := m.handleEscapeKey()
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestEnterOnCategoryOpensSubFeatures(t *testing.T) {
	h := NewHarness(newTestModel())
	h.Keys("down", "enter")
	m := h.Model()
	idx, ok := m.Nav().CurrentCategory()
	if !ok || idx != 1 {
		t.Fatalf("expected Advanced selected, got %d (%v)", idx, ok)
	}
	if got := m.Nav().CurrentSubFeatures(); len(got) != 2 {
		t.Fatalf("unexpected sub-features %v", got)
	}
	if len(m.stack) != 2 || m.currentLevel().Title != "Advanced" {
		t.Fatalf("expected Advanced level on top, got %#v", m.currentLevel())
	}
	if !m.stack[0].IsMarked("1") {
		t.Fatalf("expected Advanced marked on the root level")
	}
}

func TestEscapePopsLevelAndRestoresCursor(t *testing.T) {
	h := NewHarness(newTestModel())
	h.Keys("down", "enter")
	h.Model().errMsg = "previous error"
	h.Keys("esc")
	m := h.Model()
	if len(m.stack) != 1 {
		t.Fatalf("expected stack to shrink to 1, got %d", len(m.stack))
	}
	if m.stack[0].Cursor != 1 {
		t.Fatalf("expected cursor back on Advanced, got %d", m.stack[0].Cursor)
	}
	if m.stack[0].LastCursor != -1 {
		t.Fatalf("expected LastCursor reset, got %d", m.stack[0].LastCursor)
	}
	if m.errMsg != "" {
		t.Fatalf("expected error cleared, got %q", m.errMsg)
	}
	if idx, _ := m.Nav().CurrentCategory(); idx != 1 {
		t.Fatalf("popping the level must not change the category, got %d", idx)
	}
}

func TestSelectingSimpleFocusesCalculator(t *testing.T) {
	h := NewHarness(newTestModel())
	h.Keys("enter", "enter")
	m := h.Model()
	feature, ok := m.Nav().SelectedFeature()
	if !ok || feature != "Simple" {
		t.Fatalf("expected Simple selected, got %q (%v)", feature, ok)
	}
	if m.Focus() != FocusCalculator {
		t.Fatalf("expected calculator focus")
	}
	if !m.currentLevel().IsMarked("Simple") {
		t.Fatalf("expected Simple marked")
	}
}

func TestSelectingUnknownFeatureKeepsMenuFocus(t *testing.T) {
	h := NewHarness(newTestModel())
	h.Keys("down", "enter", "down", "enter")
	m := h.Model()
	feature, _ := m.Nav().SelectedFeature()
	if feature != "Geometry" {
		t.Fatalf("expected Geometry selected, got %q", feature)
	}
	if m.Focus() != FocusMenu {
		t.Fatalf("expected menu focus for a feature without a panel")
	}
	h.Keys("tab")
	if h.Model().Focus() != FocusMenu {
		t.Fatalf("tab must not focus a missing calculator")
	}
}

func TestSelectedFeatureSurvivesCategorySwitch(t *testing.T) {
	h := NewHarness(newTestModel())
	h.Keys("enter", "enter", "esc", "esc", "down", "enter")
	m := h.Model()
	if idx, _ := m.Nav().CurrentCategory(); idx != 1 {
		t.Fatalf("expected Advanced current, got %d", idx)
	}
	feature, ok := m.Nav().SelectedFeature()
	if !ok || feature != "Simple" {
		t.Fatalf("expected Simple to stay selected, got %q (%v)", feature, ok)
	}
	if m.currentLevel().MarkedIndex() != -1 {
		t.Fatalf("Advanced lists no Simple entry to mark")
	}
	h.Keys("esc", "up", "enter")
	basic := h.Model().currentLevel()
	if basic.Cursor != basic.MarkedIndex() || basic.Cursor != 0 {
		t.Fatalf("expected cursor on the marked Simple entry, got %d", basic.Cursor)
	}
}

func TestFilterThenEnterSelectsMatch(t *testing.T) {
	h := NewHarness(newTestModel())
	h.Keys("adv")
	root := h.Model().currentLevel()
	if len(root.Items) != 1 || root.Items[0].Label != "Advanced" {
		t.Fatalf("expected filter to keep Advanced only, got %#v", root.Items)
	}
	h.Keys("enter")
	m := h.Model()
	if idx, _ := m.Nav().CurrentCategory(); idx != 1 {
		t.Fatalf("expected Advanced current, got %d", idx)
	}
	if m.stack[0].Filter != "" || len(m.stack[0].Items) != 2 {
		t.Fatalf("expected root filter cleared, got %q", m.stack[0].Filter)
	}
	if m.stack[0].Cursor != 1 {
		t.Fatalf("expected root cursor on Advanced, got %d", m.stack[0].Cursor)
	}
}

func TestOpenCategoryRejectsUnknownItem(t *testing.T) {
	m := newTestModel()
	m.openCategory(menu.Item{ID: "7", Label: "Ghost"})
	if m.errMsg != `Unknown category "Ghost"` {
		t.Fatalf("unexpected error %q", m.errMsg)
	}
	if len(m.stack) != 1 {
		t.Fatalf("expected no level pushed")
	}
}

func TestCursorWrapsInMenu(t *testing.T) {
	h := NewHarness(newTestModel())
	h.Keys("up")
	if got := h.Model().currentLevel().Cursor; got != 1 {
		t.Fatalf("expected wrap to last category, got %d", got)
	}
	h.Keys("down")
	if got := h.Model().currentLevel().Cursor; got != 0 {
		t.Fatalf("expected wrap to first category, got %d", got)
	}
}
