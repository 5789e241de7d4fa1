// Package nav tracks which category and sub-feature the user has picked.
package nav

import "strings"

// Category is a named group of sub-features.
type Category struct {
	Name        string
	SubFeatures []string
}

func (c Category) clone() Category {
	subs := make([]string, len(c.SubFeatures))
	copy(subs, c.SubFeatures)
	return Category{Name: c.Name, SubFeatures: subs}
}

// State holds the fixed category catalog plus the current selections.
//
// The selected feature is not tied to the current category: it stays set
// when another category is chosen, until SelectFeature replaces it.
type State struct {
	categories []Category
	current    int
	feature    string
	hasFeature bool
}

// NewState copies the catalog into a state with nothing selected.
func NewState(categories []Category) *State {
	cats := make([]Category, len(categories))
	for i, cat := range categories {
		cats[i] = cat.clone()
	}
	return &State{categories: cats, current: -1}
}

// Categories returns a copy of the catalog in its original order.
func (s *State) Categories() []Category {
	out := make([]Category, len(s.categories))
	for i, cat := range s.categories {
		out[i] = cat.clone()
	}
	return out
}

// SelectCategory makes index i current. Out-of-range indices are ignored.
func (s *State) SelectCategory(i int) bool {
	if i < 0 || i >= len(s.categories) {
		return false
	}
	s.current = i
	return true
}

// CurrentCategory reports the index of the current category.
func (s *State) CurrentCategory() (int, bool) {
	if s.current < 0 {
		return -1, false
	}
	return s.current, true
}

// SelectFeature records label as the selected sub-feature.
func (s *State) SelectFeature(label string) {
	s.feature = label
	s.hasFeature = true
}

// SelectedFeature reports the selected sub-feature label.
func (s *State) SelectedFeature() (string, bool) {
	return s.feature, s.hasFeature
}

// CurrentSubFeatures lists the sub-features of the current category, or
// nothing when no category is selected.
func (s *State) CurrentSubFeatures() []string {
	idx, ok := s.CurrentCategory()
	if !ok {
		return []string{}
	}
	return s.categories[idx].clone().SubFeatures
}

// IndexOf returns the catalog index of the category named name, ignoring
// case, or -1.
func (s *State) IndexOf(name string) int {
	for i, cat := range s.categories {
		if strings.EqualFold(cat.Name, name) {
			return i
		}
	}
	return -1
}
