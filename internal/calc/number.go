package calc

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

func apply(mode Mode, a, b float64) (float64, bool) {
	switch mode {
	case ModeAdd:
		return a + b, true
	case ModeSubtract:
		return a - b, true
	case ModeMultiply:
		return a * b, true
	case ModeDivide:
		return a / b, true
	case ModePow:
		return math.Pow(a, b), true
	case ModeRoot:
		return math.Pow(a, 1/b), true
	default:
		return 0, false
	}
}

// ParseNumber reads a decimal float literal, or a signed inf/infinity/nan,
// and returns 0 for anything else. Literals beyond float64 range read as ±inf.
func ParseNumber(text string) float64 {
	// strconv also accepts hexadecimal mantissas and digit separators.
	if text == "" || strings.ContainsAny(text, "xX_") {
		return 0
	}
	if unsigned := text[1:]; (text[0] == '+' || text[0] == '-') && strings.EqualFold(unsigned, "nan") {
		return math.NaN()
	}
	value, err := strconv.ParseFloat(text, 64)
	if err == nil {
		return value
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
		return value
	}
	return 0
}

// FormatNumber renders v as the shortest decimal that round-trips, without
// an exponent. Non-finite values render as inf, -inf and NaN.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
