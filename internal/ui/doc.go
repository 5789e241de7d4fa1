// Package ui contains the Bubble Tea program for the math helper: a category
// menu on the left and the panel of the selected feature on the right.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Key presses go to the menu (navigation.go, input.go) or, once the
//     calculator has focus, to the calculator panel (calculator.go).
//   - Calculator buttons run through the command bus in internal/ui/command.
//     The engine call happens inside Dispatch; the returned message only
//     updates the info line.
//
// State ownership:
//   - Menu level state lives in internal/ui/state.Level (items, filter,
//     cursor, marked entry, viewport).
//   - The selected category and sub-feature live in nav.State, and operands,
//     mode, result and constant live in calc.Engine. The text boxes mirror
//     the engine and are re-synced after every insert action.
package ui
