package app

import (
	"errors"
	"fmt"

	"github.com/atomicstack/math-helper/internal/catalog"
	"github.com/atomicstack/math-helper/internal/logging/events"
	"github.com/atomicstack/math-helper/internal/nav"
	"github.com/atomicstack/math-helper/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

const builtinSource = "builtin"

// Config describes user-provided application options.
type Config struct {
	Width       int
	Height      int
	ShowFooter  bool
	Verbose     bool
	CatalogPath string
	Category    string
}

// Catalog is a loaded category list and where it came from.
type Catalog struct {
	Source     string
	Categories []nav.Category
}

// Names lists the category names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, len(c.Categories))
	for i, cat := range c.Categories {
		names[i] = cat.Name
	}
	return names
}

// LoadCatalog reads the catalog named by cfg, falling back to the built-in one.
func LoadCatalog(cfg Config) (Catalog, error) {
	categories, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return Catalog{}, fmt.Errorf("load catalog: %w", err)
	}
	source := cfg.CatalogPath
	if source == "" {
		source = builtinSource
	}
	events.App.Catalog(source, len(categories))
	return Catalog{Source: source, Categories: categories}, nil
}

// Run bootstraps and executes the Bubble Tea program over cat.
func Run(cfg Config, cat Catalog) error {
	program := tea.NewProgram(NewModel(cfg, cat), tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// NewModel builds the UI model for cfg without starting a program.
func NewModel(cfg Config, cat Catalog) *ui.Model {
	return ui.NewModel(cat.Categories, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose, cfg.Category)
}
