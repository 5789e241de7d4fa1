package events

import "github.com/atomicstack/math-helper/internal/logging"

type CalcTracer struct{}

var Calc = CalcTracer{}

func (CalcTracer) Mode(mode string) {
	logging.Trace("calc.mode", map[string]interface{}{"mode": mode})
}

func (CalcTracer) Input(slot int, text string) {
	logging.Trace("calc.input", map[string]interface{}{"slot": slot, "text": text})
}

func (CalcTracer) Evaluate(mode string, inputs [2]string, result string) {
	logging.Trace("calc.evaluate", map[string]interface{}{
		"mode":   mode,
		"inputs": inputs,
		"result": result,
	})
}

func (CalcTracer) InsertResult(slot int, text string) {
	logging.Trace("calc.insert-result", map[string]interface{}{"slot": slot, "text": text})
}

func (CalcTracer) Constant(name string) {
	logging.Trace("calc.constant", map[string]interface{}{"constant": name})
}

func (CalcTracer) InsertConstant(slot int, name, text string) {
	logging.Trace("calc.insert-constant", map[string]interface{}{"slot": slot, "constant": name, "text": text})
}
