// Package catalog loads the category list shown in the side menu. The
// built-in catalog is embedded; a YAML file with the same shape can replace
// it at startup.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atomicstack/math-helper/internal/nav"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultDocument []byte

// Document is the YAML representation of a catalog.
type Document struct {
	Categories []Entry `yaml:"categories" validate:"required,min=1,unique=Name,dive"`
}

// Entry describes one category and its sub-features.
type Entry struct {
	Name        string   `yaml:"name" validate:"required"`
	SubFeatures []string `yaml:"sub_features" validate:"required,min=1,unique,dive,required"`
}

var validate = validator.New()

// Default returns the embedded catalog.
func Default() ([]nav.Category, error) {
	return Parse(defaultDocument)
}

// Load reads the catalog at path, or the embedded one when path is empty.
func Load(path string) ([]nav.Category, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	cats, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cats, nil
}

// Parse decodes and validates a YAML catalog document.
func Parse(data []byte) ([]nav.Category, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	doc.normalize()
	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	cats := make([]nav.Category, len(doc.Categories))
	for i, entry := range doc.Categories {
		cats[i] = nav.Category{Name: entry.Name, SubFeatures: entry.SubFeatures}
	}
	return cats, nil
}

func (d *Document) normalize() {
	for i := range d.Categories {
		entry := &d.Categories[i]
		entry.Name = strings.TrimSpace(entry.Name)
		for j, sub := range entry.SubFeatures {
			entry.SubFeatures[j] = strings.TrimSpace(sub)
		}
	}
}
