package events

import "github.com/atomicstack/math-helper/internal/logging"

type NavTracer struct{}

var Nav = NavTracer{}

func (NavTracer) Category(index int, name string) {
	logging.Trace("nav.category", map[string]interface{}{"index": index, "name": name})
}

// Feature records a sub-feature pick. category is the category current at
// the time, which may not own the feature once the user moves on.
func (NavTracer) Feature(category, feature string) {
	logging.Trace("nav.feature", map[string]interface{}{"category": category, "feature": feature})
}
