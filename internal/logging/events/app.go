package events

import "github.com/atomicstack/math-helper/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Catalog(source string, categories int) {
	logging.Trace("app.catalog", map[string]interface{}{"source": source, "categories": categories})
}
