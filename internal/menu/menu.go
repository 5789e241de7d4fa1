package menu

import (
	"strconv"
	"strings"

	"github.com/atomicstack/math-helper/internal/nav"
)

// Item represents a selectable menu entry.
type Item struct {
	ID    string
	Label string
}

const (
	// RootID identifies the category list.
	RootID = "root"

	categoryPrefix = "category:"
)

// CategoryItems lists the catalog as root menu entries. Item IDs carry the
// catalog index so filtered levels still resolve to the right category.
func CategoryItems(categories []nav.Category) []Item {
	items := make([]Item, len(categories))
	for i, cat := range categories {
		items[i] = Item{ID: strconv.Itoa(i), Label: cat.Name}
	}
	return items
}

// CategoryIndex resolves a root item ID back to its catalog index.
func CategoryIndex(item Item) (int, bool) {
	idx, err := strconv.Atoi(item.ID)
	if err != nil || idx < 0 {
		return -1, false
	}
	return idx, true
}

// FeatureItems lists sub-feature labels as menu entries.
func FeatureItems(subFeatures []string) []Item {
	items := make([]Item, len(subFeatures))
	for i, sub := range subFeatures {
		items[i] = Item{ID: sub, Label: sub}
	}
	return items
}

// CategoryLevelID names the sub-feature level opened for a category.
func CategoryLevelID(index int) string {
	return categoryPrefix + strconv.Itoa(index)
}

// IsCategoryLevel reports whether id names a sub-feature level.
func IsCategoryLevel(id string) bool {
	return strings.HasPrefix(id, categoryPrefix)
}
