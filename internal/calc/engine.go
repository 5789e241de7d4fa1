// Package calc holds the two-operand calculator state machine. It performs no
// I/O and never returns errors: malformed operands read as zero, a missing
// mode yields a sentinel result and floating-point edge cases flow through as
// inf/NaN.
package calc

import "strings"

const (
	// ResultPrefix precedes every computed value in Result.
	ResultPrefix = "Result: "
	// ResultUnknownMode is reported when Evaluate runs before a mode is chosen.
	ResultUnknownMode = "Unknown Mode"
	// ResultUnhandled is reported for a mode the dispatcher does not cover.
	ResultUnhandled = "Wut?"
)

// Engine owns the inputs, parsed operands, selected mode and constant, and
// the last result string.
type Engine struct {
	mode     Mode
	inputs   [2]string
	numbers  [2]float64
	result   string
	constant Constant
}

// NewEngine returns an engine with empty inputs and no mode or constant.
func NewEngine() *Engine {
	return &Engine{}
}

// SetMode replaces the operation mode. The mode persists across evaluations.
func (e *Engine) SetMode(m Mode) {
	e.mode = m
}

// Mode reports the selected operation mode.
func (e *Engine) Mode() Mode {
	return e.mode
}

// SetInput stores text verbatim in the given slot.
func (e *Engine) SetInput(slot Slot, text string) bool {
	if !slot.valid() {
		return false
	}
	e.inputs[slot] = text
	return true
}

// Input returns the text held in slot.
func (e *Engine) Input(slot Slot) string {
	if !slot.valid() {
		return ""
	}
	return e.inputs[slot]
}

// Inputs returns both input texts.
func (e *Engine) Inputs() [2]string {
	return e.inputs
}

// Numbers returns the operands as last parsed.
func (e *Engine) Numbers() [2]float64 {
	return e.numbers
}

// Result returns the last result string, empty before the first evaluation.
func (e *Engine) Result() string {
	return e.result
}

// ParseInputs refreshes the operands from the input texts.
func (e *Engine) ParseInputs() {
	for i, text := range e.inputs {
		e.numbers[i] = ParseNumber(text)
	}
}

// Evaluate applies the selected mode to the operands and stores the result.
func (e *Engine) Evaluate() string {
	if e.mode == ModeUnset {
		e.result = ResultUnknownMode
		return e.result
	}
	e.ParseInputs()
	value, ok := apply(e.mode, e.numbers[0], e.numbers[1])
	if !ok {
		e.result = ResultPrefix + ResultUnhandled
		return e.result
	}
	e.result = ResultPrefix + FormatNumber(value)
	return e.result
}

// InsertResultInto copies the result into slot without its "Result: " prefix.
func (e *Engine) InsertResultInto(slot Slot) bool {
	return e.SetInput(slot, strings.Replace(e.result, ResultPrefix, "", 1))
}

// SelectConstant chooses the constant written by InsertConstantInto.
func (e *Engine) SelectConstant(c Constant) {
	e.constant = c
}

// Constant reports the selected constant.
func (e *Engine) Constant() Constant {
	return e.constant
}

// InsertConstantInto writes the selected constant, or "0" when none is
// selected, into slot.
func (e *Engine) InsertConstantInto(slot Slot) bool {
	text := "0"
	if value, ok := e.constant.Value(); ok {
		text = FormatNumber(value)
	}
	return e.SetInput(slot, text)
}
