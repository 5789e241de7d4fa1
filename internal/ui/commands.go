package ui

import (
	"github.com/atomicstack/math-helper/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

func commandRequest(w widget, handler command.Handler) command.Request {
	return command.Request{ID: w.id(), Label: w.label(), Handler: handler}
}

func (m *Model) handleCalcResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(calcResultMsg)
	if !ok {
		return nil
	}
	m.errMsg = ""
	if result.Info != "" && m.verbose {
		m.setInfo(result.Info)
	} else {
		m.forceClearInfo()
	}
	return nil
}
