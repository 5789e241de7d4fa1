package ui

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/math-helper/internal/calc"
	"github.com/atomicstack/math-helper/internal/menu"
	"github.com/atomicstack/math-helper/internal/nav"
	"github.com/atomicstack/math-helper/internal/theme"
	"github.com/atomicstack/math-helper/internal/ui/command"
	uistate "github.com/atomicstack/math-helper/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

type level = uistate.Level

// Focus names the area receiving key presses.
type Focus int

const (
	FocusMenu Focus = iota
	FocusCalculator
)

func (f Focus) String() string {
	if f == FocusCalculator {
		return "calculator"
	}
	return "menu"
}

const (
	menuHeaderSeparator = "→"
	defaultRootTitle    = "categories"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

func newLevel(id, title string, items []menu.Item) *level {
	l := uistate.NewLevel(id, title, items)
	if len(l.Items) > 0 {
		l.Cursor = 0
	}
	return l
}

// Model implements the Bubble Tea model for the math helper.
type Model struct {
	stack             []*level
	errMsg            string
	infoMsg           string
	infoExpire        time.Time
	width             int
	height            int
	fixedWidth        bool
	fixedHeight       bool
	showFooter        bool
	verbose           bool
	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler

	registry *menu.Registry
	bus      *command.Bus
	focus    Focus
	nav      *nav.State
	engine   *calc.Engine
	panel    *calculatorPanel
}

// NewModel initialises the UI with the category list as its root level.
// initialCategory, when set, opens that category straight away.
func NewModel(categories []nav.Category, width, height int, showFooter, verbose bool, initialCategory string) *Model {
	state := nav.NewState(categories)
	root := newLevel(menu.RootID, defaultRootTitle, menu.CategoryItems(state.Categories()))
	m := &Model{
		stack:      []*level{root},
		registry:   menu.BuildRegistry(),
		bus:        command.New(),
		showFooter: showFooter,
		verbose:    verbose,
		focus:      FocusMenu,
		nav:        state,
		engine:     calc.NewEngine(),
		panel:      newCalculatorPanel(),
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.syncViewport(root)
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.applyInitialCategory(initialCategory)
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.filterCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(calcResultMsg{}):     m.handleCalcResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Focus reports which area currently receives key presses.
func (m *Model) Focus() Focus {
	return m.focus
}

// Nav exposes the navigation state driven by the menu.
func (m *Model) Nav() *nav.State {
	return m.nav
}

// Engine exposes the calculator engine driven by the panel.
func (m *Model) Engine() *calc.Engine {
	return m.engine
}

func (m *Model) applyInitialCategory(requested string) {
	trimmed := strings.TrimSpace(requested)
	if trimmed == "" {
		return
	}
	root := m.stack[0]
	pos := root.IndexOf(strconv.Itoa(m.nav.IndexOf(trimmed)))
	if pos < 0 {
		m.errMsg = fmt.Sprintf("Unknown category %q", trimmed)
		return
	}
	root.Cursor = pos
	m.openCategory(root.Items[pos])
}

func (m *Model) currentLevel() *level {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}
