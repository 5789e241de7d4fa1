package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestHandleTextInputAppendsRunes(t *testing.T) {
	m := newTestModel()
	current := m.currentLevel()
	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("bas")}) {
		t.Fatalf("expected key press to be handled")
	}
	if current.Filter != "bas" {
		t.Fatalf("expected filter 'bas', got %q", current.Filter)
	}
	if pos := current.FilterCursorPos(); pos != 3 {
		t.Fatalf("expected cursor at end, got %d", pos)
	}
}

func TestHandleTextInputCursorMovement(t *testing.T) {
	m := newTestModel()
	current := m.currentLevel()
	current.SetFilter("abc", 3)

	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyLeft}) {
		t.Fatalf("expected left arrow to be handled")
	}
	if pos := current.FilterCursorPos(); pos != 2 {
		t.Fatalf("expected cursor at 2 after left, got %d", pos)
	}
	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyRight}) {
		t.Fatalf("expected right arrow to be handled")
	}
	if pos := current.FilterCursorPos(); pos != 3 {
		t.Fatalf("expected cursor back at 3, got %d", pos)
	}
	if m.handleTextInput(tea.KeyMsg{Type: tea.KeyRight}) {
		t.Fatalf("expected right arrow at the end to fall through")
	}
}

func TestHandleTextInputClearAndBackspace(t *testing.T) {
	m := newTestModel()
	current := m.currentLevel()
	m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("adv")})
	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyBackspace}) {
		t.Fatalf("expected backspace to be handled")
	}
	if current.Filter != "ad" {
		t.Fatalf("expected filter 'ad', got %q", current.Filter)
	}
	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyCtrlU}) {
		t.Fatalf("expected ctrl+u to be handled")
	}
	if current.Filter != "" || len(current.Items) != 2 {
		t.Fatalf("expected filter cleared, got %q with %d items", current.Filter, len(current.Items))
	}
	if m.handleTextInput(tea.KeyMsg{Type: tea.KeyCtrlU}) {
		t.Fatalf("expected ctrl+u on an empty filter to fall through")
	}
}

func TestFilterPromptPlaceholder(t *testing.T) {
	m := newTestModel()
	prompt := m.filterPrompt()
	if !strings.Contains(prompt, "type to search") {
		t.Fatalf("expected placeholder in prompt, got %q", prompt)
	}
}

func TestFilterPromptWhileCalculatorFocused(t *testing.T) {
	h := NewHarness(newTestModel())
	h.Keys("enter", "enter")
	if prompt := h.Model().filterPrompt(); !strings.Contains(prompt, "esc returns to the menu") {
		t.Fatalf("expected calculator hint in prompt, got %q", prompt)
	}
}
