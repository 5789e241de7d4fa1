package menu

// Panel identifies the content drawn for a selected sub-feature.
type Panel int

const (
	PanelNone Panel = iota
	PanelCalculator
)

// Registry maps sub-feature labels to the panel that implements them.
type Registry struct {
	panels map[string]Panel
}

// BuildRegistry constructs the registry of implemented sub-features.
// Features missing from it render as unknown.
func BuildRegistry() *Registry {
	return &Registry{panels: map[string]Panel{
		"Simple": PanelCalculator,
	}}
}

// Find returns the panel registered for feature.
func (r *Registry) Find(feature string) (Panel, bool) {
	if r == nil {
		return PanelNone, false
	}
	panel, ok := r.panels[feature]
	return panel, ok
}
