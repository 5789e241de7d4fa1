package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/math-helper/internal/calc"
	"github.com/atomicstack/math-helper/internal/logging/events"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type widgetKind int

const (
	widgetMode widgetKind = iota
	widgetInput
	widgetEvaluate
	widgetInsertResult
	widgetConstant
	widgetInsertConstant
)

// widget is one focusable control of the calculator panel.
type widget struct {
	kind     widgetKind
	mode     calc.Mode
	slot     calc.Slot
	constant calc.Constant
}

func (w widget) label() string {
	switch w.kind {
	case widgetMode:
		return w.mode.String()
	case widgetInput:
		return fmt.Sprintf("Box %d", int(w.slot)+1)
	case widgetEvaluate:
		return "Get Result"
	case widgetInsertResult:
		return fmt.Sprintf("Insert result into box %d", int(w.slot)+1)
	case widgetConstant:
		return w.constant.String()
	case widgetInsertConstant:
		return fmt.Sprintf("Insert Number to input box %d", int(w.slot)+1)
	}
	return ""
}

func (w widget) id() string {
	switch w.kind {
	case widgetMode:
		return "calc:mode:" + strings.ToLower(w.mode.String())
	case widgetInput:
		return fmt.Sprintf("calc:input:%d", int(w.slot)+1)
	case widgetEvaluate:
		return "calc:evaluate"
	case widgetInsertResult:
		return fmt.Sprintf("calc:insert-result:%d", int(w.slot)+1)
	case widgetConstant:
		return "calc:constant:" + strings.ToLower(w.constant.String())
	case widgetInsertConstant:
		return fmt.Sprintf("calc:insert-constant:%d", int(w.slot)+1)
	}
	return ""
}

// calculatorPanel holds the widget-side state of the calculator: the focus
// ring and the two text boxes. Values live in calc.Engine.
type calculatorPanel struct {
	widgets []widget
	focus   int
	inputs  [2]textinput.Model
	focused bool
}

func newCalculatorPanel() *calculatorPanel {
	widgets := make([]widget, 0, 16)
	for _, mode := range calc.Modes() {
		widgets = append(widgets, widget{kind: widgetMode, mode: mode})
	}
	for _, slot := range calc.Slots() {
		widgets = append(widgets, widget{kind: widgetInput, slot: slot})
	}
	widgets = append(widgets, widget{kind: widgetEvaluate})
	for _, slot := range calc.Slots() {
		widgets = append(widgets, widget{kind: widgetInsertResult, slot: slot})
	}
	for _, c := range calc.Constants() {
		widgets = append(widgets, widget{kind: widgetConstant, constant: c})
	}
	for _, slot := range calc.Slots() {
		widgets = append(widgets, widget{kind: widgetInsertConstant, slot: slot})
	}
	p := &calculatorPanel{widgets: widgets}
	for i := range p.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = "0"
		ti.CharLimit = 0
		ti.Width = 24
		ti.Cursor.SetMode(cursor.CursorStatic)
		if styles.Input != nil {
			ti.TextStyle = styles.Input.Copy()
		}
		p.inputs[i] = ti
	}
	return p
}

func (p *calculatorPanel) current() widget {
	return p.widgets[p.focus]
}

// focusOn moves the focus ring to index i, wrapping at both ends.
func (p *calculatorPanel) focusOn(i int) {
	n := len(p.widgets)
	p.focus = ((i % n) + n) % n
	p.applyFocus()
}

func (p *calculatorPanel) applyFocus() {
	for i := range p.inputs {
		p.inputs[i].Blur()
		if styles.Input != nil {
			p.inputs[i].TextStyle = styles.Input.Copy()
		}
	}
	if !p.focused {
		return
	}
	if w := p.current(); w.kind == widgetInput {
		p.inputs[w.slot].Focus()
		if styles.InputFocused != nil {
			p.inputs[w.slot].TextStyle = styles.InputFocused.Copy()
		}
	}
}

// sync copies the engine's input texts into the text boxes.
func (p *calculatorPanel) sync(values [2]string) {
	for i, value := range values {
		if p.inputs[i].Value() == value {
			continue
		}
		p.inputs[i].SetValue(value)
		p.inputs[i].CursorEnd()
	}
}

// calcResultMsg reports the outcome of a calculator action.
type calcResultMsg struct {
	ID   string
	Info string
}

func (m *Model) focusCalculator() tea.Cmd {
	m.focus = FocusCalculator
	m.panel.focused = true
	m.panel.sync(m.engine.Inputs())
	m.panel.applyFocus()
	events.UI.Focus(m.focus.String(), m.panel.current().label())
	return nil
}

func (m *Model) focusMenu() tea.Cmd {
	m.focus = FocusMenu
	m.panel.focused = false
	m.panel.applyFocus()
	id := ""
	if current := m.currentLevel(); current != nil {
		id = current.ID
	}
	events.UI.Focus(m.focus.String(), id)
	return nil
}

func (m *Model) moveCalculatorFocus(delta int) {
	m.panel.focusOn(m.panel.focus + delta)
	events.UI.Focus(m.focus.String(), m.panel.current().label())
}

func (m *Model) handleCalculatorKey(msg tea.KeyMsg) tea.Cmd {
	w := m.panel.current()
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		return m.focusMenu()
	case "tab", "down":
		m.moveCalculatorFocus(1)
		return nil
	case "shift+tab", "up":
		m.moveCalculatorFocus(-1)
		return nil
	case "enter":
		if w.kind == widgetInput {
			m.moveCalculatorFocus(1)
			return nil
		}
		return m.activateWidget(w)
	case "left":
		if w.kind != widgetInput {
			m.moveCalculatorFocus(-1)
			return nil
		}
	case "right":
		if w.kind != widgetInput {
			m.moveCalculatorFocus(1)
			return nil
		}
	}
	if w.kind != widgetInput {
		return nil
	}
	return m.editInput(w.slot, msg)
}

// editInput applies a key press to a text box and relays the new text to the
// engine.
func (m *Model) editInput(slot calc.Slot, msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	before := m.panel.inputs[slot].Value()
	m.panel.inputs[slot], cmd = m.panel.inputs[slot].Update(msg)
	if value := m.panel.inputs[slot].Value(); value != before {
		m.engine.SetInput(slot, value)
		events.Calc.Input(int(slot), value)
	}
	return cmd
}

func (m *Model) activateWidget(w widget) tea.Cmd {
	return m.bus.Dispatch(commandRequest(w, m.calculatorAction(w)))
}

// calculatorAction returns the engine call behind a panel button.
func (m *Model) calculatorAction(w widget) func() tea.Msg {
	switch w.kind {
	case widgetMode:
		return func() tea.Msg {
			m.engine.SetMode(w.mode)
			events.Calc.Mode(w.mode.String())
			return calcResultMsg{ID: w.id(), Info: "Mode: " + w.mode.String()}
		}
	case widgetEvaluate:
		return func() tea.Msg {
			result := m.engine.Evaluate()
			events.Calc.Evaluate(m.engine.Mode().String(), m.engine.Inputs(), result)
			return calcResultMsg{ID: w.id(), Info: result}
		}
	case widgetInsertResult:
		return func() tea.Msg {
			if !m.engine.InsertResultInto(w.slot) {
				return nil
			}
			text := m.engine.Input(w.slot)
			events.Calc.InsertResult(int(w.slot), text)
			m.panel.sync(m.engine.Inputs())
			return calcResultMsg{ID: w.id(), Info: fmt.Sprintf("Box %d: %s", int(w.slot)+1, text)}
		}
	case widgetConstant:
		return func() tea.Msg {
			m.engine.SelectConstant(w.constant)
			events.Calc.Constant(w.constant.String())
			return calcResultMsg{ID: w.id(), Info: "Selected: " + w.constant.String()}
		}
	case widgetInsertConstant:
		return func() tea.Msg {
			if !m.engine.InsertConstantInto(w.slot) {
				return nil
			}
			text := m.engine.Input(w.slot)
			events.Calc.InsertConstant(int(w.slot), m.engine.Constant().String(), text)
			m.panel.sync(m.engine.Inputs())
			return calcResultMsg{ID: w.id(), Info: fmt.Sprintf("Box %d: %s", int(w.slot)+1, text)}
		}
	}
	return nil
}
