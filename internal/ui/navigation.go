package ui

import (
	"fmt"

	"github.com/atomicstack/math-helper/internal/logging/events"
	"github.com/atomicstack/math-helper/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleEscapeKey() tea.Cmd {
	current := m.currentLevel()
	if current == nil {
		return tea.Quit
	}
	if len(m.stack) <= 1 {
		return tea.Quit
	}
	parent := m.stack[len(m.stack)-2]
	m.stack = m.stack[:len(m.stack)-1]
	if parent != nil {
		if parent.LastCursor >= 0 && parent.LastCursor < len(parent.Items) {
			parent.Cursor = parent.LastCursor
		} else if idx := parent.MarkedIndex(); idx >= 0 {
			parent.Cursor = idx
		}
		parent.LastCursor = -1
		m.syncViewport(parent)
	}
	m.errMsg = ""
	m.forceClearInfo()
	return nil
}

func (m *Model) handleEnterKey() tea.Cmd {
	current := m.currentLevel()
	if current == nil || len(current.Items) == 0 {
		return nil
	}
	item, ok := current.CurrentItem()
	if !ok {
		return nil
	}
	events.UI.MenuEnter(current.ID, item.ID, item.Label, current.Filter)
	beforeCursor := current.FilterCursorPos()
	current.SetFilter("", 0)
	m.noteFilterCursorChange(current, beforeCursor)
	if idx := current.IndexOf(item.ID); idx >= 0 {
		current.Cursor = idx
	}
	m.syncViewport(current)
	m.errMsg = ""
	switch {
	case current.ID == menu.RootID:
		m.openCategory(item)
		return nil
	case menu.IsCategoryLevel(current.ID):
		return m.selectFeature(current, item)
	}
	return nil
}

// openCategory makes the category behind item current and replaces any
// open sub-feature level with its sub-features.
func (m *Model) openCategory(item menu.Item) {
	idx, ok := menu.CategoryIndex(item)
	if !ok || !m.nav.SelectCategory(idx) {
		m.errMsg = fmt.Sprintf("Unknown category %q", item.Label)
		return
	}
	events.Nav.Category(idx, item.Label)
	root := m.stack[0]
	root.Mark(item.ID)
	root.LastCursor = root.Cursor

	features := newLevel(menu.CategoryLevelID(idx), item.Label, menu.FeatureItems(m.nav.CurrentSubFeatures()))
	if feature, ok := m.nav.SelectedFeature(); ok {
		features.Mark(feature)
		features.CursorToMarked()
	}
	m.syncViewport(features)
	m.stack = append(m.stack[:1], features)
	m.forceClearInfo()
}

func (m *Model) selectFeature(current *level, item menu.Item) tea.Cmd {
	m.nav.SelectFeature(item.Label)
	current.Mark(item.ID)
	events.Nav.Feature(current.Title, item.Label)
	if m.hasCalculator() {
		return m.focusCalculator()
	}
	return nil
}

// hasCalculator reports whether the selected feature is drawn as the
// calculator panel.
func (m *Model) hasCalculator() bool {
	feature, ok := m.nav.SelectedFeature()
	if !ok {
		return false
	}
	panel, ok := m.registry.Find(feature)
	return ok && panel == menu.PanelCalculator
}

func (m *Model) moveCursorUp() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorUp(); moved {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorDown() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorDown(); moved {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorPageUp() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorPageUp(m.maxVisibleItems()); moved {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorPageDown() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorPageDown(m.maxVisibleItems()); moved {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorHome() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorHome(); moved {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorEnd() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorEnd(); moved {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	l.EnsureCursorVisible(m.maxVisibleItems())
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.focus == FocusCalculator {
		return m.handleCalculatorKey(keyMsg)
	}
	if keyMsg.Type == tea.KeyTab {
		if m.hasCalculator() {
			return m.focusCalculator()
		}
		return nil
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c", "q":
		return tea.Quit
	case "esc":
		return m.handleEscapeKey()
	case "enter":
		return m.handleEnterKey()
	case "up":
		m.moveCursorUp()
	case "down":
		m.moveCursorDown()
	case "pgup":
		m.moveCursorPageUp()
	case "pgdown":
		m.moveCursorPageDown()
	case "home":
		m.moveCursorHome()
	case "end":
		m.moveCursorEnd()
	}
	return nil
}
