package calc

import "math"

// Mode selects the arithmetic applied by Evaluate.
type Mode int

const (
	ModeUnset Mode = iota
	ModeAdd
	ModeSubtract
	ModeMultiply
	ModeDivide
	ModePow
	ModeRoot
)

// unknownLabel is shown for a mode or constant that has not been chosen yet.
const unknownLabel = "Unknown"

var modeOrder = []Mode{ModeAdd, ModeSubtract, ModeMultiply, ModeDivide, ModePow, ModeRoot}

var modeLabels = map[Mode]string{
	ModeAdd:      "Add",
	ModeSubtract: "Subtract",
	ModeMultiply: "Multiply",
	ModeDivide:   "Divide",
	ModePow:      "Pow",
	ModeRoot:     "Root",
}

// Modes lists the selectable modes in display order.
func Modes() []Mode {
	dup := make([]Mode, len(modeOrder))
	copy(dup, modeOrder)
	return dup
}

func (m Mode) String() string {
	if label, ok := modeLabels[m]; ok {
		return label
	}
	return unknownLabel
}

// Constant names a well-known value that can be written into an input.
type Constant int

const (
	ConstantNone Constant = iota
	ConstantPi
	ConstantE
)

var constantOrder = []Constant{ConstantPi, ConstantE}

// Constants lists the selectable constants in display order.
func Constants() []Constant {
	dup := make([]Constant, len(constantOrder))
	copy(dup, constantOrder)
	return dup
}

func (c Constant) String() string {
	switch c {
	case ConstantPi:
		return "PI"
	case ConstantE:
		return "e"
	default:
		return unknownLabel
	}
}

// Value returns the double-precision value of the constant.
func (c Constant) Value() (float64, bool) {
	switch c {
	case ConstantPi:
		return math.Pi, true
	case ConstantE:
		return math.E, true
	default:
		return 0, false
	}
}

// Slot addresses one of the two operand inputs.
type Slot int

const (
	SlotFirst Slot = iota
	SlotSecond
)

// Slots lists both operand slots in order.
func Slots() []Slot {
	return []Slot{SlotFirst, SlotSecond}
}

func (s Slot) valid() bool {
	return s == SlotFirst || s == SlotSecond
}
