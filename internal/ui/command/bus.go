package command

import (
	"fmt"

	"github.com/atomicstack/math-helper/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Handler performs an action and returns the message reporting its outcome.
type Handler func() tea.Msg

// Request encapsulates an action invocation.
type Request struct {
	ID      string
	Label   string
	Handler Handler
}

// Bus coordinates the execution of calculator actions.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Dispatch runs the handler before returning, so any state it touches is
// changed within the caller's Update. The outcome message is delivered
// through the returned command.
func (b *Bus) Dispatch(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	if req.Handler == nil {
		events.Command.Skip(req.ID, req.Label)
		return nil
	}
	msg := req.Handler()
	if msg == nil {
		events.Command.NoOp(req.ID, req.Label)
		return nil
	}
	events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
	return func() tea.Msg {
		return msg
	}
}
